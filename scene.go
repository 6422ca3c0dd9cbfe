package sprig

import (
	"time"
)

// Clock supplies the wall-clock time used to compute per-frame delta time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type    EventType
	NodeID  uint32
	Name    string
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
	Button  MouseButton
}

// SceneOption configures a Scene during creation.
type SceneOption func(*sceneOptions)

type sceneOptions struct {
	registry *Registry
	clock    Clock
	width    int
	height   int
}

// WithRegistry builds the scene on an existing registry instead of a fresh
// one. Scenes sharing a registry see each other's nodes in Collision.
func WithRegistry(reg *Registry) SceneOption {
	return func(o *sceneOptions) {
		o.registry = reg
	}
}

// WithClock replaces the wall clock used for frame delta time.
func WithClock(c Clock) SceneOption {
	return func(o *sceneOptions) {
		o.clock = c
	}
}

// WithViewport sets the initial camera viewport size.
func WithViewport(width, height int) SceneOption {
	return func(o *sceneOptions) {
		o.width = width
		o.height = height
	}
}

// Scene owns a node tree, the camera attached to it, and the clock that
// drives per-frame updates.
type Scene struct {
	// ClearColor is the background color used by Run.
	ClearColor Color
	// ScreenshotDir is where captured frames are saved when OnCapture is
	// nil. Empty means the working directory.
	ScreenshotDir string
	// OnCapture, if set, receives every captured frame instead of it being
	// written to ScreenshotDir.
	OnCapture func(Capture)

	registry *Registry
	root     *Node
	camera   *Camera
	clock    Clock
	lastTime time.Time

	store      EntityStore
	debug      bool
	updateFunc func() error

	// Input state
	handlers    []clickHandler
	nextHandler uint32
	pointer     pointerState
	injectQueue []syntheticPointerEvent

	screenshotQueue []string
	captureSeq      int
}

// NewScene creates a scene with a root node and a camera attached to it.
func NewScene(opts ...SceneOption) *Scene {
	o := sceneOptions{clock: systemClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = NewRegistry()
	}
	s := &Scene{
		ClearColor: ColorBlack,
		registry:   o.registry,
		root:       NewRoot(o.registry, "root"),
		clock:      o.clock,
	}
	s.camera = NewCamera(s.root)
	if o.width > 0 && o.height > 0 {
		s.camera.Reshape(o.width, o.height)
	}
	s.lastTime = s.clock.Now()
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Registry returns the registry the scene's nodes are tracked in.
func (s *Scene) Registry() *Registry {
	return s.registry
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetCamera replaces the scene's camera. The previous camera's node is
// disposed. A camera without a viewport inherits the previous one. Panics if
// cam is nil.
func (s *Scene) SetCamera(cam *Camera) {
	if cam == nil {
		panic("sprig: nil camera")
	}
	if s.camera == cam {
		return
	}
	if cam.Viewport == (Rect{}) {
		cam.Viewport = s.camera.Viewport
	}
	s.camera.node.Dispose()
	s.camera = cam
}

// Reshape tells the camera the drawing surface changed size.
func (s *Scene) Reshape(width, height int) {
	s.camera.Reshape(width, height)
}

// SetUpdateFunc registers a callback run once per frame, before the tree is
// updated. A non-nil error stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-frame timing stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Draw renders one frame: it sets the camera view on r, updates the tree
// with the wall-clock time elapsed since the previous frame (or since the
// scene was created), and draws the tree from the root with an identity
// frame.
func (s *Scene) Draw(r Renderer) error {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	r.SetView(s.camera.ViewMatrix())
	if err := s.update(); err != nil {
		return err
	}

	if s.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
		counter := &countingRenderer{Renderer: r}
		s.root.Draw(counter, Identity)
		stats.drawTime = time.Since(t0)
		stats.commandCount = counter.count
		stats.nodeCount = s.registry.Len()
		s.debugLog(stats)
		return nil
	}

	s.root.Draw(r, Identity)
	return nil
}

// update advances the clock, the camera and the node tree by one frame.
func (s *Scene) update() error {
	now := s.clock.Now()
	dt := now.Sub(s.lastTime).Seconds()
	s.lastTime = now

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.camera.update(dt)
	s.root.Update(dt)
	return nil
}

// Collision returns every live node in the scene's registry that contains
// the world-space point p, in registration order.
func (s *Scene) Collision(p Vec2) []*Node {
	return s.registry.Collision(p)
}
