// Package ggraster renders sprig scenes into an in-memory image using the
// gogpu/gg software rasterizer. It needs no window and is used for headless
// snapshots.
package ggraster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/phanxgames/sprig"
)

// Renderer is a sprig.Renderer backed by a gg.Context. Points are
// transformed on the CPU, so the gg context itself stays at identity.
type Renderer struct {
	dc        *gg.Context
	view      sprig.Affine
	lineWidth float64
	err       error
}

// New creates a width x height renderer.
func New(width, height int) *Renderer {
	dc := gg.NewContext(width, height)
	dc.SetFillRule(gg.FillRuleEvenOdd)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Renderer{dc: dc, view: sprig.Identity, lineWidth: 1}
}

// SetLineWidth sets the stroke width in pixels.
func (r *Renderer) SetLineWidth(w float64) {
	r.lineWidth = w
}

// Clear fills the whole image with c.
func (r *Renderer) Clear(c sprig.Color) {
	r.dc.ClearWithColor(toGG(c))
}

// SetView sets the world-to-image transform.
func (r *Renderer) SetView(view sprig.Affine) {
	r.view = view
}

// FillPolygon fills a polygon with the even-odd rule.
func (r *Renderer) FillPolygon(frame sprig.Affine, points []sprig.Vec2, c sprig.Color) {
	if len(points) < 3 {
		return
	}
	r.path(r.view.Multiply(frame), points, true)
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)
	r.record(r.dc.Fill())
}

// StrokePolygon outlines a closed polygon.
func (r *Renderer) StrokePolygon(frame sprig.Affine, points []sprig.Vec2, c sprig.Color) {
	if len(points) < 2 {
		return
	}
	r.path(r.view.Multiply(frame), points, true)
	r.stroke(c)
}

// StrokeLine draws a single segment.
func (r *Renderer) StrokeLine(frame sprig.Affine, a, b sprig.Vec2, c sprig.Color) {
	r.path(r.view.Multiply(frame), []sprig.Vec2{a, b}, false)
	r.stroke(c)
}

func (r *Renderer) stroke(c sprig.Color) {
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)
	r.dc.SetLineWidth(r.lineWidth)
	r.record(r.dc.Stroke())
}

func (r *Renderer) path(m sprig.Affine, points []sprig.Vec2, closed bool) {
	r.dc.ClearPath()
	for i, p := range points {
		q := m.Apply(p)
		if i == 0 {
			r.dc.MoveTo(q.X, q.Y)
			continue
		}
		r.dc.LineTo(q.X, q.Y)
	}
	if closed {
		r.dc.ClosePath()
	}
}

// record keeps the first rasterization error; the Renderer interface has no
// error returns.
func (r *Renderer) record(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first error reported by the rasterizer, if any.
func (r *Renderer) Err() error {
	return r.err
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the rendered image to path.
func (r *Renderer) SavePNG(path string) error {
	if r.err != nil {
		return fmt.Errorf("ggraster: render: %w", r.err)
	}
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("ggraster: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the rendered image to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return fmt.Errorf("ggraster: render: %w", r.err)
	}
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("ggraster: encode: %w", err)
	}
	return nil
}

// Close releases the underlying gg context.
func (r *Renderer) Close() error {
	return r.dc.Close()
}

func toGG(c sprig.Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Snapshot draws one frame of scene into a new width x height image cleared
// to the scene's ClearColor. The caller owns the returned renderer.
func Snapshot(scene *sprig.Scene, width, height int) (*Renderer, error) {
	r := New(width, height)
	r.Clear(scene.ClearColor)
	scene.Reshape(width, height)
	if err := scene.Draw(r); err != nil {
		r.Close()
		return nil, fmt.Errorf("ggraster: draw: %w", err)
	}
	if r.err != nil {
		r.Close()
		return nil, fmt.Errorf("ggraster: render: %w", r.err)
	}
	return r, nil
}
