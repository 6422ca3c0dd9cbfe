package sprig

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// defaultLineWidth is the stroke width, in pixels, used when an
// EbitenRenderer has no LineWidth set.
const defaultLineWidth = 1

var whitePixelImage *ebiten.Image

// ensureWhitePixel lazily creates a 1x1 white image used as the source for
// solid-color triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// EbitenRenderer draws onto an ebiten image. Fills are fan-triangulated and
// submitted with the even-odd fill rule, so concave polygons fill correctly.
type EbitenRenderer struct {
	Target    *ebiten.Image
	LineWidth float32
	AntiAlias bool

	view  Affine
	verts []ebiten.Vertex
	inds  []uint16
}

// NewEbitenRenderer creates a renderer targeting dst.
func NewEbitenRenderer(dst *ebiten.Image) *EbitenRenderer {
	return &EbitenRenderer{Target: dst, LineWidth: defaultLineWidth, AntiAlias: true, view: Identity}
}

// SetView sets the world-to-screen transform.
func (r *EbitenRenderer) SetView(view Affine) {
	r.view = view
}

// FillPolygon fills a polygon given in frame's local coordinates.
func (r *EbitenRenderer) FillPolygon(frame Affine, points []Vec2, c Color) {
	if len(points) < 3 {
		return
	}
	r.buildPolygonFan(r.view.Multiply(frame), points, c)

	var triOp ebiten.DrawTrianglesOptions
	triOp.FillRule = ebiten.FillRuleEvenOdd
	triOp.AntiAlias = r.AntiAlias
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	r.Target.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &triOp)
}

// StrokePolygon outlines a closed polygon.
func (r *EbitenRenderer) StrokePolygon(frame Affine, points []Vec2, c Color) {
	if len(points) < 2 {
		return
	}
	m := r.view.Multiply(frame)
	prev := m.Apply(points[len(points)-1])
	for _, p := range points {
		cur := m.Apply(p)
		r.strokeScreen(prev, cur, c)
		prev = cur
	}
}

// StrokeLine draws a single segment.
func (r *EbitenRenderer) StrokeLine(frame Affine, a, b Vec2, c Color) {
	m := r.view.Multiply(frame)
	r.strokeScreen(m.Apply(a), m.Apply(b), c)
}

func (r *EbitenRenderer) strokeScreen(a, b Vec2, c Color) {
	w := r.LineWidth
	if w <= 0 {
		w = defaultLineWidth
	}
	vector.StrokeLine(r.Target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, c.toRGBA(), r.AntiAlias)
}

// buildPolygonFan fills r.verts and r.inds with a fan triangulation of the
// polygon transformed by m. N vertices, 3*(N-2) indices.
func (r *EbitenRenderer) buildPolygonFan(m Affine, points []Vec2, c Color) {
	n := len(points)
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	ca := float32(clamp01(c.A))
	cr := float32(clamp01(c.R)) * ca
	cg := float32(clamp01(c.G)) * ca
	cb := float32(clamp01(c.B)) * ca

	for _, p := range points {
		s := m.Apply(p)
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(s.X),
			DstY:   float32(s.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for i := 1; i < n-1; i++ {
		r.inds = append(r.inds, 0, uint16(i), uint16(i+1))
	}
}
