// Package scenefile loads and saves sprig node trees as YAML.
//
// A file holds one node; containers list their children:
//
//	name: dog
//	type: container
//	position: [0.5, 0]
//	rotation: 30
//	children:
//	  - name: body
//	    type: polygon
//	    points: [[-0.5, -0.2], [0.5, -0.2], [0.5, 0.2], [-0.5, 0.2]]
//	    fill: "#8b5a2b"
//	    line: "#000"
//	  - name: nose
//	    type: circle
//	    radius: 0.03
//	    center: [0.6, 0.1]
//	    fill: "#000"
//	  - name: tail
//	    type: line
//	    from: [-0.5, 0]
//	    to: [-0.8, 0.3]
//	    line: "#000"
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/sprig"
)

// Node type names used in files.
const (
	TypeContainer = "container"
	TypePolygon   = "polygon"
	TypeCircle    = "circle"
	TypeLine      = "line"
)

var (
	ErrUnknownType = errors.New("scenefile: unknown node type")
	ErrBadColor    = errors.New("scenefile: malformed color")
	ErrBadShape    = errors.New("scenefile: malformed shape")
)

// Node is one node of a scene file.
type Node struct {
	Name     string       `yaml:"name"`
	Type     string       `yaml:"type"`
	Position [2]float64   `yaml:"position,flow,omitempty"`
	Rotation float64      `yaml:"rotation,omitempty"`
	Scale    *float64     `yaml:"scale,omitempty"`
	Hidden   bool         `yaml:"hidden,omitempty"`
	Points   [][2]float64 `yaml:"points,flow,omitempty"`
	Radius   float64      `yaml:"radius,omitempty"`
	Center   [2]float64   `yaml:"center,flow,omitempty"`
	From     [2]float64   `yaml:"from,flow,omitempty"`
	To       [2]float64   `yaml:"to,flow,omitempty"`
	Fill     string       `yaml:"fill,omitempty"`
	Line     string       `yaml:"line,omitempty"`
	Children []Node       `yaml:"children,omitempty"`
}

// Parse decodes a scene file. Unknown keys are rejected so a misspelled
// field fails instead of silently taking its default.
func Parse(data []byte) (Node, error) {
	var doc Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Node{}, fmt.Errorf("scenefile: parse: %w", err)
	}
	return doc, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Node{}, fmt.Errorf("scenefile: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Node{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Build creates the nodes described by doc under parent and returns the
// node created for doc itself. On error, nodes already created are disposed
// and parent is left as it was.
func Build(doc Node, parent *sprig.Node) (*sprig.Node, error) {
	n, err := build(doc, parent)
	if err != nil {
		if n != nil {
			n.Dispose()
		}
		return nil, err
	}
	return n, nil
}

func build(doc Node, parent *sprig.Node) (*sprig.Node, error) {
	fill, err := parseOptionalColor(doc.Fill)
	if err != nil {
		return nil, fmt.Errorf("%s: fill: %w", doc.Name, err)
	}
	line, err := parseOptionalColor(doc.Line)
	if err != nil {
		return nil, fmt.Errorf("%s: line: %w", doc.Name, err)
	}

	var n *sprig.Node
	switch strings.ToLower(doc.Type) {
	case TypeContainer, "":
		n = sprig.NewContainer(parent, doc.Name)
	case TypePolygon:
		if len(doc.Points) < 3 {
			return nil, fmt.Errorf("%s: polygon needs at least 3 points, has %d: %w", doc.Name, len(doc.Points), ErrBadShape)
		}
		n = sprig.NewPolygon(parent, doc.Name, toVecs(doc.Points), fill, line)
	case TypeCircle:
		if doc.Radius < 0 {
			return nil, fmt.Errorf("%s: negative radius %g: %w", doc.Name, doc.Radius, ErrBadShape)
		}
		n = sprig.NewCircle(parent, doc.Name, doc.Radius, fill, line)
		n.SetCenter(toVec(doc.Center))
	case TypeLine:
		n = sprig.NewLine(parent, doc.Name, toVec(doc.From), toVec(doc.To), line)
	default:
		return nil, fmt.Errorf("%s: %q: %w", doc.Name, doc.Type, ErrUnknownType)
	}

	n.SetPosition(doc.Position[0], doc.Position[1])
	n.SetRotation(doc.Rotation)
	if doc.Scale != nil {
		n.SetScale(*doc.Scale)
	}
	n.Show(!doc.Hidden)

	for _, child := range doc.Children {
		if _, err := build(child, n); err != nil {
			return n, fmt.Errorf("%s/%w", doc.Name, err)
		}
	}
	return n, nil
}

// FromNode captures n and its subtree as a scene file node.
func FromNode(n *sprig.Node) Node {
	doc := Node{
		Name:     n.Name,
		Rotation: n.Rotation(),
		Hidden:   !n.IsShowing(),
		Fill:     formatColor(n.Fill()),
		Line:     formatColor(n.Line()),
	}
	p := n.Position()
	doc.Position = [2]float64{p.X, p.Y}
	if s := n.Scale(); s != 1 {
		doc.Scale = &s
	}

	switch n.Type {
	case sprig.NodeTypeContainer:
		doc.Type = TypeContainer
	case sprig.NodeTypePolygon:
		doc.Type = TypePolygon
		for _, pt := range n.Points() {
			doc.Points = append(doc.Points, [2]float64{pt.X, pt.Y})
		}
	case sprig.NodeTypeCircle:
		doc.Type = TypeCircle
		doc.Radius = n.Radius()
		c := n.Center()
		doc.Center = [2]float64{c.X, c.Y}
	case sprig.NodeTypeLine:
		doc.Type = TypeLine
		a, b := n.Endpoints()
		doc.From = [2]float64{a.X, a.Y}
		doc.To = [2]float64{b.X, b.Y}
	}

	for _, child := range n.Children() {
		doc.Children = append(doc.Children, FromNode(child))
	}
	return doc
}

// FromScene captures the content of scene as a document that Build can load
// back under another scene's root. The camera is skipped. A single child
// under an untransformed root is exported on its own; otherwise the children
// are wrapped in a container carrying the root's name and transform.
func FromScene(scene *sprig.Scene) Node {
	root := scene.Root()
	cam := scene.Camera().Node()
	var content []*sprig.Node
	for _, child := range root.Children() {
		if child != cam {
			content = append(content, child)
		}
	}
	if len(content) == 1 && root.LocalTransform() == sprig.Identity && root.IsShowing() {
		return FromNode(content[0])
	}

	doc := FromNode(root)
	doc.Children = doc.Children[:0]
	for _, child := range content {
		doc.Children = append(doc.Children, FromNode(child))
	}
	return doc
}

// Marshal encodes doc as YAML.
func Marshal(doc Node) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("scenefile: marshal: %w", err)
	}
	return data, nil
}

// Save writes doc to path.
func Save(path string, doc Node) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scenefile: write %s: %w", path, err)
	}
	return nil
}

func toVec(p [2]float64) sprig.Vec2 {
	return sprig.Vec2{X: p[0], Y: p[1]}
}

func toVecs(pts [][2]float64) []sprig.Vec2 {
	out := make([]sprig.Vec2, len(pts))
	for i, p := range pts {
		out[i] = toVec(p)
	}
	return out
}

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (sprig.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return sprig.Color{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return sprig.Color{}, fmt.Errorf("%q: %w", s, ErrBadColor)
		}
	}
	c := gg.Hex(hex)
	return sprig.Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

func parseOptionalColor(s string) (*sprig.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func formatColor(c *sprig.Color) string {
	if c == nil {
		return ""
	}
	to8 := func(v float64) int {
		return int(min(max(v, 0), 1)*255 + 0.5)
	}
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}
