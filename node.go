package sprig

import "errors"

// HitShape is a custom collision region in the node's local coordinates.
// When set on a node it replaces the node kind's own collision test.
type HitShape interface {
	Contains(x, y float64) bool
}

// ClickContext carries click event data.
type ClickContext struct {
	Node    *Node
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
	Button  MouseButton
}

// Errors returned by SetParent. The tree is left unchanged when any of them
// is returned.
var (
	ErrDisposed        = errors.New("sprig: node is disposed")
	ErrCycle           = errors.New("sprig: reparenting would create a cycle")
	ErrForeignRegistry = errors.New("sprig: parent belongs to a different registry")
	ErrSingularParent  = errors.New("sprig: parent has zero global scale")
)

// nodeIDCounter is a plain counter. Node creation is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the scene graph element. A single flat struct is used for every
// node kind; Type selects how the node draws itself and answers collision
// queries.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	parent   *Node
	children []*Node
	registry *Registry

	// Transform (local). rotation is in degrees, normalized to [-180, 180).
	position Vec2
	rotation float64
	scale    float64

	showing bool

	// Shape payload, in the node's own local frame.
	points []Vec2 // polygon vertices, or the two line endpoints
	center Vec2   // circle
	radius float64
	fill   *Color
	line   *Color

	// Hit testing
	HitShape HitShape

	// Metadata
	UserData any

	// Per-node hooks (nil by default).
	OnUpdate func(dt float64)
	OnDraw   func(r Renderer, frame Affine)
	OnClick  func(ClickContext)

	disposed bool
}

func newNode(reg *Registry, name string, typ NodeType) *Node {
	n := &Node{
		ID:       nextNodeID(),
		Name:     name,
		Type:     typ,
		registry: reg,
		scale:    1,
		showing:  true,
	}
	reg.add(n)
	return n
}

// attach creates a node and appends it to parent's children.
func attach(parent *Node, name string, typ NodeType) *Node {
	if parent == nil {
		panic("sprig: nil parent")
	}
	if globalDebug {
		debugCheckDisposed(parent, "attach")
	}
	n := newNode(parent.registry, name, typ)
	n.parent = parent
	parent.children = append(parent.children, n)
	if globalDebug {
		debugCheckTreeDepth(n)
		debugCheckChildCount(parent)
	}
	return n
}

// NewRoot creates a parentless node registered with reg. Every other node is
// created beneath a root.
func NewRoot(reg *Registry, name string) *Node {
	if reg == nil {
		panic("sprig: nil registry")
	}
	return newNode(reg, name, NodeTypeContainer)
}

// NewContainer creates a node with no visual output under parent. New nodes
// start at the parent's origin with rotation 0 and scale 1.
func NewContainer(parent *Node, name string) *Node {
	return attach(parent, name, NodeTypeContainer)
}

// --- Tree queries ---

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Registry returns the registry the node was created against.
func (n *Node) Registry() *Registry {
	return n.registry
}

// --- Visibility ---

// Show sets whether the node and its subtree are drawn. Hidden nodes are
// still updated.
func (n *Node) Show(showing bool) {
	n.showing = showing
}

// IsShowing reports the node's own visibility flag.
func (n *Node) IsShowing() bool {
	return n.showing
}

// --- Reparenting ---

// SetParent moves n under parent, appending it after parent's existing
// children. The node keeps its global position, rotation and scale: its
// local transform is rewritten relative to the new parent.
//
// Panics if parent is nil.
func (n *Node) SetParent(parent *Node) error {
	if parent == nil {
		panic("sprig: nil parent")
	}
	if n.disposed || parent.disposed {
		return ErrDisposed
	}
	if parent.registry != n.registry {
		return ErrForeignRegistry
	}
	if isAncestor(n, parent) {
		return ErrCycle
	}
	parentInv, ok := parent.inverseWorldTransform()
	if !ok {
		return ErrSingularParent
	}

	pos := n.GlobalPosition()
	rot := n.GlobalRotation()
	scale := n.GlobalScale()

	if n.parent != nil {
		n.parent.removeChildByPtr(n)
	}
	n.parent = parent
	parent.children = append(parent.children, n)

	n.position = parentInv.Apply(pos)
	n.rotation = NormalizeAngle(rot - parent.GlobalRotation())
	n.scale = scale / parent.GlobalScale()

	if globalDebug {
		debugCheckTreeDepth(n)
		debugCheckChildCount(parent)
	}
	return nil
}

// --- Disposal ---

// Dispose removes this node and all of its descendants from the tree and
// from the registry. Children are disposed first. Calling Dispose twice is a
// no-op.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	for _, child := range children {
		child.Dispose()
	}
	if n.parent != nil {
		n.parent.removeChildByPtr(n)
		n.parent = nil
	}
	n.registry.remove(n)
	n.disposed = true
	n.children = nil
	n.HitShape = nil
	n.UserData = nil
	n.OnUpdate = nil
	n.OnDraw = nil
	n.OnClick = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
