package ggraster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/phanxgames/sprig"
)

func TestSnapshotDrawsFilledPolygon(t *testing.T) {
	scene := sprig.NewScene()
	scene.ClearColor = sprig.ColorBlack
	sprig.NewPolygon(scene.Root(), "square", []sprig.Vec2{
		{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5},
	}, sprig.RGB(1, 0, 0).Ptr(), nil)

	r, err := Snapshot(scene, 64, 64)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	defer r.Close()

	img := r.Image()
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", img.Bounds())
	}
	// Center is inside the square, corner is background.
	cr, _, _, _ := img.At(32, 32).RGBA()
	if cr < 0x8000 {
		t.Errorf("center red = %#x, want bright", cr)
	}
	br, bg, bb, _ := img.At(1, 1).RGBA()
	if br != 0 || bg != 0 || bb != 0 {
		t.Errorf("corner = (%#x,%#x,%#x), want black", br, bg, bb)
	}
}

func TestEncodePNG(t *testing.T) {
	r := New(8, 8)
	defer r.Close()
	r.Clear(sprig.ColorWhite)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("width = %d, want 8", img.Bounds().Dx())
	}
}
