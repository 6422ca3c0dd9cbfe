package sprig

// Renderer is the drawing backend a scene is rendered through. Points are
// given in the local frame of the node being drawn; frame maps them to world
// space. The view set by SetView maps world space to the target surface.
type Renderer interface {
	SetView(view Affine)
	FillPolygon(frame Affine, points []Vec2, c Color)
	StrokePolygon(frame Affine, points []Vec2, c Color)
	StrokeLine(frame Affine, a, b Vec2, c Color)
}

// --- Traversal ---

// Update calls the node's OnUpdate hook, then updates each child. Children
// are iterated from a snapshot, so hooks may add or dispose nodes freely.
// Hidden nodes are updated like any other.
func (n *Node) Update(dt float64) {
	if n.disposed {
		return
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	if len(n.children) == 0 {
		return
	}
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	for _, child := range children {
		child.Update(dt)
	}
}

// Draw draws the node and its descendants. frame is the parent's accumulated
// frame; the node's own frame is frame * T * R * S. Hidden nodes skip their
// whole subtree. Later children draw on top of earlier ones.
//
// The tree must not be mutated while Draw runs.
func (n *Node) Draw(r Renderer, frame Affine) {
	if globalDebug {
		debugCheckDisposed(n, "Draw")
	}
	if !n.showing || n.disposed {
		return
	}
	own := frame.Multiply(localTransform(n))
	n.drawSelf(r, own)
	if n.OnDraw != nil {
		n.OnDraw(r, own)
	}
	for _, child := range n.children {
		child.Draw(r, own)
	}
}

// --- Recording ---

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandFillPolygon   CommandType = iota // filled polygon
	CommandStrokePolygon                    // closed polygon outline
	CommandStrokeLine                       // single segment
)

// RenderCommand is a single draw instruction captured by a RecordingRenderer.
type RenderCommand struct {
	Type   CommandType
	Frame  Affine
	Points []Vec2
	Color  Color
}

// RecordingRenderer is a Renderer that stores every call instead of drawing.
// It is useful for tests and for inspecting what a scene would draw.
type RecordingRenderer struct {
	View     Affine
	Commands []RenderCommand
}

// SetView records the view matrix.
func (r *RecordingRenderer) SetView(view Affine) {
	r.View = view
}

// FillPolygon records a fill command.
func (r *RecordingRenderer) FillPolygon(frame Affine, points []Vec2, c Color) {
	r.record(CommandFillPolygon, frame, points, c)
}

// StrokePolygon records an outline command.
func (r *RecordingRenderer) StrokePolygon(frame Affine, points []Vec2, c Color) {
	r.record(CommandStrokePolygon, frame, points, c)
}

// StrokeLine records a line command.
func (r *RecordingRenderer) StrokeLine(frame Affine, a, b Vec2, c Color) {
	r.record(CommandStrokeLine, frame, []Vec2{a, b}, c)
}

// Reset drops all recorded commands.
func (r *RecordingRenderer) Reset() {
	r.Commands = r.Commands[:0]
}

func (r *RecordingRenderer) record(typ CommandType, frame Affine, points []Vec2, c Color) {
	pts := make([]Vec2, len(points))
	copy(pts, points)
	r.Commands = append(r.Commands, RenderCommand{Type: typ, Frame: frame, Points: pts, Color: c})
}
