package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the camera's world X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is a node in the scene tree that the view is computed from. The
// world is y-up: world (0, Extent) maps to the top-center of the viewport
// when the camera sits at the origin with no rotation or scale.
//
// Moving, rotating or scaling the camera node pans, rolls or zooms out the
// view.
type Camera struct {
	// Extent is half the visible world height, in world units.
	Extent float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	node *Node

	followTarget *Node
	followLerp   float64

	scrollTween *scrollAnim
}

// NewCamera creates a camera whose node is a child of parent.
func NewCamera(parent *Node) *Camera {
	return &Camera{
		Extent: 1,
		node:   NewContainer(parent, "camera"),
	}
}

// Node returns the camera's node in the scene tree.
func (c *Camera) Node() *Node {
	return c.node
}

// Reshape updates the viewport to a width x height surface anchored at the
// origin.
func (c *Camera) Reshape(width, height int) {
	c.Viewport = Rect{Width: float64(width), Height: float64(height)}
}

// pixelsPerUnit returns the world-to-screen scale factor.
func (c *Camera) pixelsPerUnit() float64 {
	if c.Viewport.Height <= 0 || c.Extent <= 0 {
		return 1
	}
	return c.Viewport.Height / (2 * c.Extent)
}

// ViewMatrix maps world coordinates to screen coordinates:
//
//	Translate(viewport center) * Scale(ppu, -ppu) * inverse(camera world transform)
func (c *Camera) ViewMatrix() Affine {
	inv, ok := c.node.inverseWorldTransform()
	if !ok {
		inv = Identity
	}
	ppu := c.pixelsPerUnit()
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	return translation(cx, cy).Scale(ppu, -ppu).Multiply(inv)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return c.ViewMatrix().Apply(p)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	inv, _ := c.ViewMatrix().Invert()
	return inv.Apply(p)
}

// Follow makes the camera track a target node. A lerp of 1.0 snaps
// immediately; lower values give smoother following.
func (c *Camera) Follow(node *Node, lerp float64) {
	c.followTarget = node
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	p := c.node.GlobalPosition()
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(p.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(p.Y), float32(y), duration, easeFn),
	}
}

// IsScrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) IsScrolling() bool {
	return c.scrollTween != nil
}

// update advances follow and scroll animation. Called once per frame by the
// scene before the tree is updated.
func (c *Camera) update(dt float64) {
	if c.followTarget != nil && !c.followTarget.IsDisposed() {
		cur := c.node.GlobalPosition()
		target := c.followTarget.GlobalPosition()
		c.setGlobalPosition(Vec2{
			X: cur.X + (target.X-cur.X)*c.followLerp,
			Y: cur.Y + (target.Y-cur.Y)*c.followLerp,
		})
	}

	if c.scrollTween != nil {
		p := c.node.GlobalPosition()
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(float32(dt))
			p.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(float32(dt))
			p.Y = float64(val)
			c.scrollTween.doneY = done
		}
		c.setGlobalPosition(p)
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}
}

// setGlobalPosition moves the camera node so that its origin lands on the
// world point p.
func (c *Camera) setGlobalPosition(p Vec2) {
	if c.node.parent == nil {
		c.node.position = p
		return
	}
	local, ok := c.node.parent.WorldToLocal(p)
	if !ok {
		return
	}
	c.node.position = local
}
