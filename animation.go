package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenRotation, TweenFill) and call Update(dt) each frame, typically from
// the node's OnUpdate hook. If the target node is disposed, the group stops
// immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	// fill groups write through target.fill so SetFill mid-tween is overwritten.
	fill bool
	Done bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	var vals [4]float64
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.fill {
		if g.target.fill == nil {
			g.target.fill = &Color{}
		}
		*g.target.fill = Color{vals[0], vals[1], vals[2], vals[3]}
		return
	}
	for i := 0; i < g.count; i++ {
		*g.fields[i] = vals[i]
	}

	if g.target != nil {
		g.target.rotation = NormalizeAngle(g.target.rotation)
	}
}

// TweenPosition animates the node's local position to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.position.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.position.Y), float32(toY), duration, fn)
	g.fields[0] = &node.position.X
	g.fields[1] = &node.position.Y
	return g
}

// TweenScale animates the node's uniform local scale to the target value.
func TweenScale(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.scale), float32(to), duration, fn)
	g.fields[0] = &node.scale
	return g
}

// TweenRotation animates the node's local rotation by delta degrees. The
// delta is not wrapped, so a delta of 720 spins the node twice.
func TweenRotation(node *Node, delta float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.rotation), float32(node.rotation+delta), duration, fn)
	g.fields[0] = &node.rotation
	return g
}

// TweenFill animates all four components of the node's fill color. A node
// without a fill starts from the target color at zero alpha.
func TweenFill(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	if node.fill == nil {
		node.fill = &Color{to.R, to.G, to.B, 0}
	}
	from := *node.fill
	g := &TweenGroup{count: 4, target: node, fill: true}
	g.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	return g
}
