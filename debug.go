package sprig

import (
	"fmt"
	"log/slog"
	"time"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugStats holds per-frame timing. Only populated when Scene.debug is true.
type debugStats struct {
	updateTime   time.Duration
	drawTime     time.Duration
	nodeCount    int
	commandCount int
}

// debugLog reports frame stats through the package logger.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	Logger().Debug("frame",
		slog.Duration("update", stats.updateTime),
		slog.Duration("draw", stats.drawTime),
		slog.Duration("total", stats.updateTime+stats.drawTime),
		slog.Int("nodes", stats.nodeCount),
		slog.Int("commands", stats.commandCount),
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sprig debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			slog.Int("depth", depth), slog.Int("threshold", debugMaxTreeDepth), slog.String("node", n.Name))
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("child count exceeds threshold",
			slog.Int("children", len(n.children)), slog.Int("threshold", debugMaxChildCount), slog.String("node", n.Name))
	}
}

// countingRenderer wraps a Renderer and counts draw calls for debug stats.
type countingRenderer struct {
	Renderer
	count int
}

func (c *countingRenderer) FillPolygon(frame Affine, points []Vec2, col Color) {
	c.count++
	c.Renderer.FillPolygon(frame, points, col)
}

func (c *countingRenderer) StrokePolygon(frame Affine, points []Vec2, col Color) {
	c.count++
	c.Renderer.StrokePolygon(frame, points, col)
}

func (c *countingRenderer) StrokeLine(frame Affine, a, b Vec2, col Color) {
	c.count++
	c.Renderer.StrokeLine(frame, a, b, col)
}
