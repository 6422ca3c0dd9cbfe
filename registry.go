package sprig

// Registry tracks every live node created against it, in creation order.
// Collision queries walk the registry rather than a single tree, so every
// tree built on the same registry takes part in them.
//
// A Registry is not safe for concurrent use; sprig is single-threaded.
type Registry struct {
	nodes []*Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Len returns the number of live nodes.
func (r *Registry) Len() int {
	return len(r.nodes)
}

// Nodes returns the live nodes in registration order. The returned slice
// MUST NOT be mutated by the caller.
func (r *Registry) Nodes() []*Node {
	return r.nodes
}

// Contains reports whether n is registered.
func (r *Registry) Contains(n *Node) bool {
	for _, c := range r.nodes {
		if c == n {
			return true
		}
	}
	return false
}

// Collision returns every live node whose Collision reports that the
// world-space point p lies inside it, in registration order.
func (r *Registry) Collision(p Vec2) []*Node {
	var hits []*Node
	for _, n := range r.nodes {
		if n.Collision(p) {
			hits = append(hits, n)
		}
	}
	return hits
}

func (r *Registry) add(n *Node) {
	r.nodes = append(r.nodes, n)
}

// remove deletes n while preserving the order of the remaining nodes.
func (r *Registry) remove(n *Node) {
	for i, c := range r.nodes {
		if c == n {
			copy(r.nodes[i:], r.nodes[i+1:])
			r.nodes[len(r.nodes)-1] = nil
			r.nodes = r.nodes[:len(r.nodes)-1]
			return
		}
	}
}
