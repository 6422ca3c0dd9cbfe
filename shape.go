package sprig

import "math"

const (
	// circleSegments is the number of sides of the polygon a circle is drawn as.
	circleSegments = 32

	// lineTolerance is how far (in world units) a point may sit from a line
	// node's segment and still collide with it.
	lineTolerance = 1e-3
)

// NewPolygon creates a polygon node under parent. points are in the node's
// local frame and are copied. fill and line may be nil, in which case that
// part is not drawn.
func NewPolygon(parent *Node, name string, points []Vec2, fill, line *Color) *Node {
	n := attach(parent, name, NodeTypePolygon)
	n.SetPoints(points)
	n.fill = copyColor(fill)
	n.line = copyColor(line)
	return n
}

// NewCircle creates a circle node centered on its local origin.
func NewCircle(parent *Node, name string, radius float64, fill, line *Color) *Node {
	n := attach(parent, name, NodeTypeCircle)
	n.radius = radius
	n.fill = copyColor(fill)
	n.line = copyColor(line)
	return n
}

// NewLine creates a line node from a to b in local coordinates. Lines have
// no fill; a nil line color draws nothing.
func NewLine(parent *Node, name string, a, b Vec2, line *Color) *Node {
	n := attach(parent, name, NodeTypeLine)
	n.points = []Vec2{a, b}
	n.line = copyColor(line)
	return n
}

func copyColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	cc := *c
	return &cc
}

// --- Shape properties ---

// Points returns the polygon vertices, or the two endpoints of a line.
// The returned slice MUST NOT be mutated by the caller.
func (n *Node) Points() []Vec2 {
	return n.points
}

// SetPoints replaces the polygon vertices. The slice is copied.
func (n *Node) SetPoints(points []Vec2) {
	n.points = append(n.points[:0:0], points...)
}

// Endpoints returns a line node's endpoints in local coordinates.
func (n *Node) Endpoints() (a, b Vec2) {
	if len(n.points) < 2 {
		return Vec2{}, Vec2{}
	}
	return n.points[0], n.points[1]
}

// SetEndpoints replaces a line node's endpoints.
func (n *Node) SetEndpoints(a, b Vec2) {
	n.points = []Vec2{a, b}
}

// Center returns a circle node's local center.
func (n *Node) Center() Vec2 {
	return n.center
}

// SetCenter sets a circle node's local center.
func (n *Node) SetCenter(c Vec2) {
	n.center = c
}

// Radius returns a circle node's local radius.
func (n *Node) Radius() float64 {
	return n.radius
}

// SetRadius sets a circle node's local radius.
func (n *Node) SetRadius(r float64) {
	n.radius = r
}

// Fill returns the fill color, or nil when the shape is not filled.
func (n *Node) Fill() *Color {
	return n.fill
}

// SetFill sets the fill color. nil disables filling.
func (n *Node) SetFill(c *Color) {
	n.fill = copyColor(c)
}

// Line returns the outline color, or nil when no outline is drawn.
func (n *Node) Line() *Color {
	return n.line
}

// SetLine sets the outline color. nil disables the outline.
func (n *Node) SetLine(c *Color) {
	n.line = copyColor(c)
}

// circlePoints returns the regular polygon approximating a circle.
func circlePoints(center Vec2, radius float64) []Vec2 {
	pts := make([]Vec2, circleSegments)
	step := 2 * math.Pi / circleSegments
	for i := range pts {
		sin, cos := math.Sincos(float64(i) * step)
		pts[i] = Vec2{center.X + radius*cos, center.Y + radius*sin}
	}
	return pts
}

// drawSelf issues the draw calls for the node's own shape in frame.
func (n *Node) drawSelf(r Renderer, frame Affine) {
	switch n.Type {
	case NodeTypePolygon:
		drawOutlinedPolygon(r, frame, n.points, n.fill, n.line)
	case NodeTypeCircle:
		drawOutlinedPolygon(r, frame, circlePoints(n.center, n.radius), n.fill, n.line)
	case NodeTypeLine:
		if n.line != nil && len(n.points) == 2 {
			r.StrokeLine(frame, n.points[0], n.points[1], *n.line)
		}
	}
}

func drawOutlinedPolygon(r Renderer, frame Affine, pts []Vec2, fill, line *Color) {
	if len(pts) < 3 {
		return
	}
	if fill != nil {
		r.FillPolygon(frame, pts, *fill)
	}
	if line != nil {
		r.StrokePolygon(frame, pts, *line)
	}
}

// --- Collision ---

// Collision reports whether the world-space point p lies inside the node.
// A HitShape, if set, is tested in local space and takes precedence.
// Containers never collide. Nodes whose global scale is zero never collide.
func (n *Node) Collision(p Vec2) bool {
	if n.disposed {
		return false
	}
	if n.HitShape != nil {
		local, ok := n.WorldToLocal(p)
		return ok && n.HitShape.Contains(local.X, local.Y)
	}
	switch n.Type {
	case NodeTypePolygon:
		local, ok := n.WorldToLocal(p)
		return ok && pointInPolygon(n.points, local)
	case NodeTypeCircle:
		return n.circleContains(p)
	case NodeTypeLine:
		return n.lineContains(p)
	default:
		return false
	}
}

// pointInPolygon is an odd-even ray cast: a horizontal ray from p crosses the
// polygon's edges an odd number of times iff p is inside.
func pointInPolygon(pts []Vec2, p Vec2) bool {
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.Y >= p.Y) != (pj.Y >= p.Y) &&
			p.X <= (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

func (n *Node) circleContains(p Vec2) bool {
	scale := n.GlobalScale()
	if scale == 0 {
		return false
	}
	c := n.LocalToWorld(n.center)
	return p.Sub(c).Len() <= n.radius*math.Abs(scale)
}

func (n *Node) lineContains(p Vec2) bool {
	if len(n.points) != 2 || n.GlobalScale() == 0 {
		return false
	}
	a := n.LocalToWorld(n.points[0])
	b := n.LocalToWorld(n.points[1])
	return segmentContains(a, b, p, lineTolerance)
}

// segmentContains reports whether p lies within eps of the segment ab: close
// to the infinite line through a and b, and inside the segment's bounding box
// grown by eps. A zero-length segment contains only points within eps of it.
func segmentContains(a, b, p Vec2, eps float64) bool {
	if p.X < math.Min(a.X, b.X)-eps || p.X > math.Max(a.X, b.X)+eps ||
		p.Y < math.Min(a.Y, b.Y)-eps || p.Y > math.Max(a.Y, b.Y)+eps {
		return false
	}
	d := b.Sub(a)
	length := d.Len()
	if length == 0 {
		return p.Sub(a).Len() <= eps
	}
	cross := d.X*(p.Y-a.Y) - d.Y*(p.X-a.X)
	return math.Abs(cross)/length <= eps
}
