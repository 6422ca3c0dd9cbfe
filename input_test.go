package sprig

import "testing"

// --- HitShape ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: -1, Y: -1, Width: 2, Height: 2}
	if !r.Contains(0, 0) || !r.Contains(1, 1) {
		t.Error("points inside should be contained")
	}
	if r.Contains(1.1, 0) {
		t.Error("point outside should not be contained")
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 1, CenterY: 1, Radius: 0.5}
	if !c.Contains(1.5, 1) || c.Contains(1.6, 1) {
		t.Error("HitCircle boundary")
	}
}

func TestHitPolygonNeedsThreePoints(t *testing.T) {
	p := HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}
	if p.Contains(0.5, 0.5) {
		t.Error("degenerate polygon should contain nothing")
	}
}

// --- Click dispatch ---

func TestClickContextCoordinates(t *testing.T) {
	s := newClickScene()
	g := NewContainer(s.Root(), "g")
	g.SetPosition(0.2, 0)
	g.SetScale(2)
	box := NewPolygon(g, "box", []Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}, nil, nil)

	var ctx ClickContext
	box.OnClick = func(c ClickContext) { ctx = c }

	// Screen (60, 40) is world (0.2, 0.2): box-local (0, 0.1).
	s.InjectClick(60, 40)
	s.HandleInput()
	s.HandleInput()

	if ctx.Node != box {
		t.Fatal("box not clicked")
	}
	assertNear(t, "GlobalX", ctx.GlobalX, 0.2)
	assertNear(t, "GlobalY", ctx.GlobalY, 0.2)
	assertNear(t, "LocalX", ctx.LocalX, 0)
	assertNear(t, "LocalY", ctx.LocalY, 0.1)
	if ctx.Button != MouseButtonLeft {
		t.Errorf("Button = %v", ctx.Button)
	}
}

func TestClickFiresOnEveryHitNode(t *testing.T) {
	s := newClickScene()
	var got []string
	for _, name := range []string{"under", "over"} {
		n := NewCircle(s.Root(), name, 0.5, nil, nil)
		n.OnClick = func(c ClickContext) { got = append(got, c.Node.Name) }
	}
	s.InjectClick(50, 50)
	s.HandleInput()
	s.HandleInput()
	if len(got) != 2 || got[0] != "under" || got[1] != "over" {
		t.Errorf("clicked = %v", got)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	s := newClickScene()
	NewCircle(s.Root(), "ball", 0.5, nil, nil)
	calls := 0
	h := s.OnClick(func(ClickContext) { calls++ })
	h.Remove()
	h.Remove()

	s.InjectClick(50, 50)
	s.HandleInput()
	s.HandleInput()
	if calls != 0 {
		t.Errorf("removed handler called %d times", calls)
	}
}

func TestHandlerRemovingItselfDuringClick(t *testing.T) {
	s := newClickScene()
	NewCircle(s.Root(), "ball", 0.5, nil, nil)
	calls := map[string]int{}
	var ha CallbackHandle
	ha = s.OnClick(func(ClickContext) {
		calls["a"]++
		ha.Remove()
	})
	s.OnClick(func(ClickContext) { calls["b"]++ })
	s.OnClick(func(ClickContext) { calls["c"]++ })

	s.InjectClick(50, 50)
	s.HandleInput()
	s.HandleInput()
	if calls["a"] != 1 || calls["b"] != 1 || calls["c"] != 1 {
		t.Errorf("calls = %v, want one each", calls)
	}

	s.InjectClick(50, 50)
	s.HandleInput()
	s.HandleInput()
	if calls["a"] != 1 || calls["b"] != 2 || calls["c"] != 2 {
		t.Errorf("after second click calls = %v", calls)
	}
}

type recordingStore struct {
	events []InteractionEvent
}

func (r *recordingStore) EmitEvent(e InteractionEvent) { r.events = append(r.events, e) }

func TestEntityStoreReceivesEvents(t *testing.T) {
	s := newClickScene()
	ball := NewCircle(s.Root(), "ball", 0.5, nil, nil)
	store := &recordingStore{}
	s.SetEntityStore(store)

	s.InjectClick(50, 50)
	s.HandleInput()
	s.HandleInput()

	want := []EventType{EventPointerDown, EventPointerUp, EventClick}
	if len(store.events) != len(want) {
		t.Fatalf("events = %d, want %d", len(store.events), len(want))
	}
	for i, typ := range want {
		e := store.events[i]
		if e.Type != typ || e.NodeID != ball.ID || e.Name != "ball" {
			t.Errorf("event %d = %+v", i, e)
		}
	}
}

func TestClickOnDisposedDuringPressIsDropped(t *testing.T) {
	s := newClickScene()
	ball := NewCircle(s.Root(), "ball", 0.5, nil, nil)
	clicks := 0
	s.OnClick(func(ClickContext) { clicks++ })

	s.InjectClick(50, 50)
	s.HandleInput()
	ball.Dispose()
	s.HandleInput()
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}
