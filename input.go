package sprig

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a polygon hit area in local coordinates, tested with the
// odd-even rule. Concave polygons are supported.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside the polygon.
func (p HitPolygon) Contains(x, y float64) bool {
	if len(p.Points) < 3 {
		return false
	}
	return pointInPolygon(p.Points, Vec2{x, y})
}

// --- Pointer state ---

type pointerState struct {
	down    bool
	button  MouseButton
	downHit []*Node // nodes under the pointer at press time
}

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	scene *Scene
}

// Remove unregisters the callback. Safe to call more than once, including
// from inside the callback itself.
func (h CallbackHandle) Remove() {
	if h.scene == nil {
		return
	}
	handlers := h.scene.handlers
	for i, c := range handlers {
		if c.id == h.id {
			next := make([]clickHandler, 0, len(handlers)-1)
			next = append(next, handlers[:i]...)
			h.scene.handlers = append(next, handlers[i+1:]...)
			return
		}
	}
}

// OnClick registers a scene-level handler called once for every node a
// click lands on.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	s.nextHandler++
	s.handlers = append(s.handlers, clickHandler{id: s.nextHandler, fn: fn})
	return CallbackHandle{id: s.nextHandler, scene: s}
}

// --- Input processing ---

// HandleInput reads the mouse (or the next injected event) and fires click
// callbacks. Run calls it once per tick.
func (s *Scene) HandleInput() {
	if s.processInjectedInput() {
		return
	}
	x, y := ebiten.CursorPosition()
	pressed, button := false, MouseButtonLeft
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	s.processPointer(Vec2{float64(x), float64(y)}, pressed, button)
}

// processPointer converts a screen position to world space and detects
// press/release transitions. A click fires for every node that was under the
// pointer at both press and release.
func (s *Scene) processPointer(screen Vec2, pressed bool, button MouseButton) {
	world := s.camera.ScreenToWorld(screen)

	switch {
	case pressed && !s.pointer.down:
		s.pointer.down = true
		s.pointer.button = button
		s.pointer.downHit = s.Collision(world)
		for _, n := range s.pointer.downHit {
			s.emitInteractionEvent(EventPointerDown, n, world, button)
		}

	case !pressed && s.pointer.down:
		s.pointer.down = false
		upHit := s.Collision(world)
		for _, n := range upHit {
			s.emitInteractionEvent(EventPointerUp, n, world, s.pointer.button)
		}
		for _, n := range upHit {
			if containsNode(s.pointer.downHit, n) && !n.IsDisposed() {
				s.fireClick(n, world, s.pointer.button)
			}
		}
		s.pointer.downHit = nil
	}
}

func containsNode(nodes []*Node, n *Node) bool {
	for _, c := range nodes {
		if c == n {
			return true
		}
	}
	return false
}

func (s *Scene) fireClick(n *Node, world Vec2, button MouseButton) {
	local, _ := n.WorldToLocal(world)
	ctx := ClickContext{
		Node:    n,
		GlobalX: world.X,
		GlobalY: world.Y,
		LocalX:  local.X,
		LocalY:  local.Y,
		Button:  button,
	}
	if n.OnClick != nil {
		n.OnClick(ctx)
	}
	// Handlers may remove themselves, so dispatch over a snapshot.
	handlers := slices.Clone(s.handlers)
	for _, h := range handlers {
		h.fn(ctx)
	}
	s.emitInteractionEvent(EventClick, n, world, button)
}

func (s *Scene) emitInteractionEvent(typ EventType, n *Node, world Vec2, button MouseButton) {
	if s.store == nil {
		return
	}
	local, _ := n.WorldToLocal(world)
	s.store.EmitEvent(InteractionEvent{
		Type:    typ,
		NodeID:  n.ID,
		Name:    n.Name,
		GlobalX: world.X,
		GlobalY: world.Y,
		LocalX:  local.X,
		LocalY:  local.Y,
		Button:  button,
	})
}
