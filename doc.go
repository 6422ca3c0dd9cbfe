// Package sprig is a hierarchical 2D scene graph.
//
// Every element is a [Node]. Nodes form a tree under a root; each node has a
// local position, rotation (in degrees) and uniform scale relative to its
// parent, and drawing composes those transforms top-down. A node is one of
// four kinds: a container, a polygon, a circle or a line.
//
// # Quick start
//
//	scene := sprig.NewScene()
//	body := sprig.NewContainer(scene.Root(), "body")
//	sprig.NewCircle(body, "head", 0.2, sprig.RGB(1, 0.8, 0.6).Ptr(), sprig.ColorBlack.Ptr())
//	body.OnUpdate = func(dt float64) { body.Rotate(45 * dt) }
//	sprig.Run(scene, sprig.RunConfig{Title: "sprig", Width: 640, Height: 480})
//
// # Coordinates
//
// World space is y-up. The scene camera maps world (0, 0) to the center of
// the viewport and shows Camera.Extent world units above and below it.
//
// # Reparenting and disposal
//
// [Node.SetParent] moves a node without changing where it appears on screen.
// [Node.Dispose] removes a node and its whole subtree from the tree and from
// the [Registry] that collision queries search.
//
// # Rendering
//
// Drawing goes through the [Renderer] interface. [EbitenRenderer] draws to an
// ebiten image, [RecordingRenderer] captures commands, and the ggraster
// package rasterizes to PNG without a window.
package sprig
