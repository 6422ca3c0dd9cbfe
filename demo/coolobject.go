// Package demo builds a sample composite object out of sprig shapes.
package demo

import "github.com/phanxgames/sprig"

// Part names of the object built by NewCoolObject.
const (
	PartBody          = "body"
	PartHead          = "head"
	PartMouth         = "mouth"
	PartNose          = "nose"
	PartLeftEar       = "leftEar"
	PartRightEar      = "rightEar"
	PartLeftFrontLeg  = "leftFrontLeg"
	PartRightFrontLeg = "rightFrontLeg"
	PartLeftBackLeg   = "leftBackLeg"
	PartRightBackLeg  = "rightBackLeg"
	PartLeftFrontFoot = "leftFrontFoot"
	PartLeftBackFoot  = "leftBackFoot"
	PartTailBranch    = "tailBranch"
	PartTailTip       = "tailTip"
)

// NumParts is the number of nodes NewCoolObject creates, including the
// returned container.
const NumParts = 15

func pts(xy ...float64) []sprig.Vec2 {
	out := make([]sprig.Vec2, len(xy)/2)
	for i := range out {
		out[i] = sprig.Vec2{X: xy[2*i], Y: xy[2*i+1]}
	}
	return out
}

// NewCoolObject builds a dog facing left under parent and returns its
// container. The dog is black with white leg outlines, so it wants a light
// background.
func NewCoolObject(parent *sprig.Node) *sprig.Node {
	black := sprig.ColorBlack.Ptr()
	white := sprig.ColorWhite.Ptr()

	dog := sprig.NewContainer(parent, "coolObject")

	body := sprig.NewPolygon(dog, PartBody, pts(
		0.5, 0.3, 0.6, 0.2, 0.65, 0.1, 0.65, -0.05, 0.5, -0.2,
		-0.4, -0.2, -0.5, -0.15, -0.6, 0.1, -0.5, 0.325,
	), black, black)
	body.ScaleBy(0.75)

	// Right legs sit behind the left ones.
	leg := pts(0, 0, -0.25, 0, -0.25, -0.4, 0, -0.4)
	newLeg := func(name string, x, y, scale float64) *sprig.Node {
		n := sprig.NewPolygon(body, name, leg, black, white)
		n.Translate(x, y)
		n.ScaleBy(scale)
		return n
	}
	newLeg(PartRightFrontLeg, -0.1, -0.2, 0.55)
	leftFront := newLeg(PartLeftFrontLeg, -0.2, -0.2, 0.6)
	newLeg(PartRightBackLeg, 0.4, -0.2, 0.55)
	leftBack := newLeg(PartLeftBackLeg, 0.3, -0.2, 0.6)

	foot := pts(0, 0, -0.05, 0, -0.15, -0.05, -0.25, -0.1, -0.25, -0.2, 0, -0.2)
	for _, f := range []struct {
		leg  *sprig.Node
		name string
	}{{leftFront, PartLeftFrontFoot}, {leftBack, PartLeftBackFoot}} {
		n := sprig.NewPolygon(f.leg, f.name, foot, black, black)
		n.ScaleBy(0.5)
		n.Translate(-0.25, -0.295)
	}

	tail := sprig.NewLine(body, PartTailBranch, sprig.Vec2{}, sprig.Vec2{X: 0.15, Y: 0.05}, black)
	tail.Translate(0.65, 0)
	tip := sprig.NewLine(tail, PartTailTip, sprig.Vec2{}, sprig.Vec2{X: 0.15, Y: 0.15}, black)
	tip.Translate(0.15, 0.05)

	head := sprig.NewPolygon(body, PartHead, pts(
		-0.1, 0.25, 0.2, 0.25, 0.4, 0, 0.2, -0.3, -0.2, -0.3, -0.25, 0,
	), black, black)
	head.Translate(-0.6, 0.3)
	head.ScaleBy(0.7)

	mouth := sprig.NewCircle(head, PartMouth, 0.15, black, black)
	mouth.Translate(-0.225, -0.15)
	nose := sprig.NewCircle(mouth, PartNose, 0.03, black, white)
	nose.Translate(-0.12286, 0.08604)

	ear := pts(0.075, 0, -0.075, 0, 0, 0.15)
	sprig.NewPolygon(head, PartLeftEar, ear, black, black).Translate(0, 0.25)
	sprig.NewPolygon(head, PartRightEar, ear, black, black).Translate(0.1, 0.25)

	return dog
}

// ApplyShowcaseTransform puts obj through a mix of translations, rotations
// and scales. The object should still look right afterwards.
func ApplyShowcaseTransform(obj *sprig.Node) {
	obj.Translate(-0.2, 0.2)
	obj.Rotate(45)
	obj.ScaleBy(0.25)
	obj.Rotate(-65)
	obj.ScaleBy(1.24)
	obj.Translate(0.6, 0.4)
	obj.Translate(-0.3, -0.1)
	obj.ScaleBy(1.1)
}

// Find returns the first node named name in the subtree rooted at n, in
// depth-first order, or nil.
func Find(n *sprig.Node, name string) *sprig.Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children() {
		if f := Find(c, name); f != nil {
			return f
		}
	}
	return nil
}
