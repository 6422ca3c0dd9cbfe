package sprig

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// Capture is one frame grabbed by Screenshot. Image holds premultiplied
// RGBA pixels exactly as drawn.
type Capture struct {
	Label string
	Seq   int
	Image *image.RGBA
}

// FileName returns the name SaveCapture uses: the sanitized label followed by
// a zero-padded sequence number.
func (c Capture) FileName() string {
	return fmt.Sprintf("%s-%04d.png", captureLabel(c.Label), c.Seq)
}

// Screenshot asks Run to capture the next frame it draws. Each queued label
// produces one Capture, delivered to OnCapture or saved under ScreenshotDir.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots reads the finished frame back once and hands it to every
// pending request.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	s.deliverCaptures(img)
}

func (s *Scene) deliverCaptures(img *image.RGBA) {
	queue := s.screenshotQueue
	s.screenshotQueue = nil
	for _, label := range queue {
		s.captureSeq++
		c := Capture{Label: label, Seq: s.captureSeq, Image: img}
		if s.OnCapture != nil {
			s.OnCapture(c)
			continue
		}
		path, err := SaveCapture(s.ScreenshotDir, c)
		if err != nil {
			Logger().Error("screenshot failed", "label", label, "err", err)
			continue
		}
		Logger().Info("screenshot saved", "path", path)
	}
}

// SaveCapture writes c as a PNG under dir and returns the file path. The
// directory is created if needed.
func SaveCapture(dir string, c Capture) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("sprig: screenshot dir: %w", err)
	}
	path := filepath.Join(dir, c.FileName())
	dc := gg.NewContextForImage(c.Image)
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("sprig: save %s: %w", path, err)
	}
	return path, nil
}

func captureLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '_'
	}, label)
}
