package sprig

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func newTestCamera(w, h int) (*Node, *Camera) {
	_, root := newTestRoot()
	cam := NewCamera(root)
	cam.Reshape(w, h)
	return root, cam
}

func TestCameraDefaults(t *testing.T) {
	_, cam := newTestCamera(800, 600)
	assertNear(t, "Extent", cam.Extent, 1)
	if cam.Node().Type != NodeTypeContainer {
		t.Error("camera node should be a container")
	}
	if cam.Viewport != (Rect{Width: 800, Height: 600}) {
		t.Errorf("Viewport = %v", cam.Viewport)
	}
}

func TestCameraWorldToScreenYUp(t *testing.T) {
	_, cam := newTestCamera(800, 600)
	assertVec(t, "origin", cam.WorldToScreen(Vec2{0, 0}), Vec2{400, 300})
	assertVec(t, "top", cam.WorldToScreen(Vec2{0, 1}), Vec2{400, 0})
	assertVec(t, "bottom", cam.WorldToScreen(Vec2{0, -1}), Vec2{400, 600})
	// Square pixels: one world unit is 300 px both ways.
	assertVec(t, "right", cam.WorldToScreen(Vec2{1, 0}), Vec2{700, 300})
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	_, cam := newTestCamera(640, 480)
	cam.Node().SetPosition(2, -1)
	cam.Node().SetRotation(30)
	cam.Node().SetScale(2)
	p := Vec2{0.7, 1.3}
	assertVec(t, "round trip", cam.ScreenToWorld(cam.WorldToScreen(p)), p)
}

func TestCameraTransformMovesView(t *testing.T) {
	_, cam := newTestCamera(200, 200)
	cam.Node().SetPosition(5, 5)
	assertVec(t, "camera position is screen center", cam.WorldToScreen(Vec2{5, 5}), Vec2{100, 100})

	// Scaling the camera up shows more of the world.
	cam.Node().SetScale(2)
	assertVec(t, "zoomed out", cam.WorldToScreen(Vec2{5, 7}), Vec2{100, 0})

	// Rotating the camera a quarter turn puts world +x at the bottom.
	cam.Node().SetScale(1)
	cam.Node().SetRotation(90)
	assertVec(t, "rolled", cam.WorldToScreen(Vec2{6, 5}), Vec2{100, 200})
}

func TestCameraExtent(t *testing.T) {
	_, cam := newTestCamera(100, 100)
	cam.Extent = 10
	assertVec(t, "top", cam.WorldToScreen(Vec2{0, 10}), Vec2{50, 0})
}

func TestCameraFollow(t *testing.T) {
	root, cam := newTestCamera(100, 100)
	target := NewContainer(root, "target")
	target.SetPosition(4, 2)

	cam.Follow(target, 1)
	cam.update(1.0 / 60)
	assertVec(t, "snap", cam.Node().GlobalPosition(), Vec2{4, 2})

	cam.Follow(target, 0.5)
	target.SetPosition(6, 2)
	cam.update(1.0 / 60)
	assertVec(t, "lerp", cam.Node().GlobalPosition(), Vec2{5, 2})

	target.Dispose()
	cam.update(1.0 / 60)
	assertVec(t, "stays after target disposed", cam.Node().GlobalPosition(), Vec2{5, 2})
}

func TestCameraFollowUnderTransformedParent(t *testing.T) {
	_, root := newTestRoot()
	rig := NewContainer(root, "rig")
	rig.SetPosition(1, 1)
	rig.SetRotation(45)
	rig.SetScale(2)
	cam := NewCamera(rig)
	target := NewContainer(root, "target")
	target.SetPosition(-3, 2)

	cam.Follow(target, 1)
	cam.update(0)
	assertVec(t, "global", cam.Node().GlobalPosition(), Vec2{-3, 2})
}

func TestCameraScrollTo(t *testing.T) {
	_, cam := newTestCamera(100, 100)
	cam.ScrollTo(10, -4, 1, ease.Linear)
	if !cam.IsScrolling() {
		t.Fatal("should be scrolling")
	}
	cam.update(0.5)
	p := cam.Node().GlobalPosition()
	if !approxEqual(p.X, 5, 1e-4) || !approxEqual(p.Y, -2, 1e-4) {
		t.Errorf("halfway = %v, want (5, -2)", p)
	}
	cam.update(0.6)
	if cam.IsScrolling() {
		t.Error("scroll should be finished")
	}
	p = cam.Node().GlobalPosition()
	if !approxEqual(p.X, 10, 1e-4) || !approxEqual(p.Y, -4, 1e-4) {
		t.Errorf("end = %v, want (10, -4)", p)
	}
}

func TestSceneDrivesCameraScroll(t *testing.T) {
	clock := newFakeClock()
	s := NewScene(WithClock(clock), WithViewport(100, 100))
	s.Camera().ScrollTo(2, 0, 1, ease.Linear)
	clock.advance(2 * time.Second)
	var rec RecordingRenderer
	if err := s.Draw(&rec); err != nil {
		t.Fatal(err)
	}
	if s.Camera().IsScrolling() {
		t.Error("scroll should finish after the frame's dt")
	}
	if !approxEqual(s.Camera().Node().GlobalPosition().X, 2, 1e-4) {
		t.Errorf("camera x = %v", s.Camera().Node().GlobalPosition().X)
	}
}
