package sprig

import "math"

// NormalizeAngle maps an angle in degrees into the half-open range [-180, 180).
func NormalizeAngle(deg float64) float64 {
	if deg >= -180 && deg < 180 {
		return deg
	}
	a := math.Mod(deg+180, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a - 180
}

// Affine is a 2D affine matrix. Layout: [a, b, c, d, tx, ty]
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// Identity is the identity affine matrix.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Multiply returns m * o, the transform that applies o first and then m.
func (m Affine) Multiply(o Affine) Affine {
	return Affine{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Translate returns m * T(x, y).
func (m Affine) Translate(x, y float64) Affine {
	return m.Multiply(translation(x, y))
}

// Rotate returns m * R(deg). Positive angles rotate counter-clockwise in a
// y-up frame.
func (m Affine) Rotate(deg float64) Affine {
	return m.Multiply(rotation(deg))
}

// Scale returns m * S(sx, sy).
func (m Affine) Scale(sx, sy float64) Affine {
	return m.Multiply(scaling(sx, sy))
}

// Apply transforms a point.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// Invert returns the inverse matrix. ok is false when m is singular, in which
// case the identity is returned.
func (m Affine) Invert() (inv Affine, ok bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

func translation(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

func rotation(deg float64) Affine {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

func scaling(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// localTransform returns T(position) * R(rotation) * S(scale) for n.
func localTransform(n *Node) Affine {
	sin, cos := math.Sincos(n.rotation * math.Pi / 180)
	s := n.scale
	return Affine{cos * s, sin * s, -sin * s, cos * s, n.position.X, n.position.Y}
}

// inverseLocalTransform returns S(1/scale) * R(-rotation) * T(-position).
// ok is false when the scale is zero.
func inverseLocalTransform(n *Node) (Affine, bool) {
	if n.scale == 0 {
		return Identity, false
	}
	inv := 1 / n.scale
	return scaling(inv, inv).
		Rotate(-n.rotation).
		Translate(-n.position.X, -n.position.Y), true
}

// --- Transform properties ---

// Position returns the local translation.
func (n *Node) Position() Vec2 {
	return n.position
}

// SetPosition sets the local translation.
func (n *Node) SetPosition(x, y float64) {
	n.position = Vec2{x, y}
}

// Translate moves the node by (dx, dy) in its parent's coordinates.
func (n *Node) Translate(dx, dy float64) {
	n.position.X += dx
	n.position.Y += dy
}

// Rotation returns the local rotation in degrees, in [-180, 180).
func (n *Node) Rotation() float64 {
	return n.rotation
}

// SetRotation sets the local rotation in degrees.
func (n *Node) SetRotation(deg float64) {
	n.rotation = NormalizeAngle(deg)
}

// Rotate adds deg to the local rotation.
func (n *Node) Rotate(deg float64) {
	n.rotation = NormalizeAngle(n.rotation + deg)
}

// Scale returns the local uniform scale.
func (n *Node) Scale() float64 {
	return n.scale
}

// SetScale sets the local uniform scale. Negative scales are not supported.
func (n *Node) SetScale(s float64) {
	n.scale = s
}

// ScaleBy multiplies the local scale by factor.
func (n *Node) ScaleBy(factor float64) {
	n.scale *= factor
}

// LocalTransform returns the node's local affine matrix (translate, rotate,
// then scale).
func (n *Node) LocalTransform() Affine {
	return localTransform(n)
}

// --- Global queries ---
//
// All global queries walk from the node up to and including the root, so
// the root's own transform counts. They match the frame produced by a
// top-down Draw starting from Identity.

// GlobalPosition returns the node's origin in world coordinates.
func (n *Node) GlobalPosition() Vec2 {
	var p Vec2
	for cur := n; cur != nil; cur = cur.parent {
		p = localTransform(cur).Apply(p)
	}
	return p
}

// GlobalRotation returns the sum of all rotations from the root down to the
// node, normalized to [-180, 180).
func (n *Node) GlobalRotation() float64 {
	r := 0.0
	for cur := n; cur != nil; cur = cur.parent {
		r += cur.rotation
	}
	return NormalizeAngle(r)
}

// GlobalScale returns the product of all scales from the root down to the
// node.
func (n *Node) GlobalScale() float64 {
	s := 1.0
	for cur := n; cur != nil; cur = cur.parent {
		s *= cur.scale
	}
	return s
}

// WorldTransform returns the accumulated matrix from the root down to n.
func (n *Node) WorldTransform() Affine {
	m := Identity
	for cur := n; cur != nil; cur = cur.parent {
		m = localTransform(cur).Multiply(m)
	}
	return m
}

// inverseWorldTransform composes the per-ancestor inverses from n outward to
// the root. ok is false if any node on the chain has zero scale.
func (n *Node) inverseWorldTransform() (Affine, bool) {
	m := Identity
	for cur := n; cur != nil; cur = cur.parent {
		inv, ok := inverseLocalTransform(cur)
		if !ok {
			return Identity, false
		}
		m = m.Multiply(inv)
	}
	return m, true
}

// LocalToWorld converts a point in this node's local space to world space.
func (n *Node) LocalToWorld(p Vec2) Vec2 {
	for cur := n; cur != nil; cur = cur.parent {
		p = localTransform(cur).Apply(p)
	}
	return p
}

// WorldToLocal converts a world-space point to this node's local space.
// ok is false when the node or an ancestor has zero scale.
func (n *Node) WorldToLocal(p Vec2) (Vec2, bool) {
	inv, ok := n.inverseWorldTransform()
	if !ok {
		return Vec2{}, false
	}
	return inv.Apply(p), true
}
