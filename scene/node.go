package scene

import (
	"image/color"
	"slices"

	"github.com/gogpu/richtext/engine"
)

// White is the neutral tint.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Node is an element of the scene tree.
type Node struct {
	id       string
	parent   *Node
	children []*Node

	position engine.Point
	anchor   engine.Point
	size     engine.Size
	scaleX   float64
	scaleY   float64
	visible  bool
	color    color.NRGBA
	opacity  uint8

	// owner is the specialized node embedding this one, if any.
	owner any
}

// NewNode returns an empty, visible container anchored at its bottom-left.
func NewNode() *Node {
	n := &Node{}
	n.init(nil)
	return n
}

func (n *Node) init(owner any) {
	n.scaleX, n.scaleY = 1, 1
	n.visible = true
	n.color = White
	n.opacity = 0xff
	n.owner = owner
}

// Owner returns the specialized node (*Sprite, *Label, ...) n belongs to,
// or nil for a plain container.
func (n *Node) Owner() any { return n.owner }

func (n *Node) ID() string { return n.id }

func (n *Node) SetID(id string) { n.id = id }

func (n *Node) Parent() *Node { return n.parent }

// Children returns the children in drawing order. The slice must not be
// modified.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends c, detaching it from its previous parent.
func (n *Node) AddChild(c *Node) {
	if c == nil || c == n {
		return
	}
	c.RemoveFromParent()
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild detaches c and reports whether it was a child of n.
func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.children, c)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
	return true
}

// RemoveFromParent detaches n from its parent, if any.
func (n *Node) RemoveFromParent() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// RemoveAllChildren detaches every child.
func (n *Node) RemoveAllChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// ChildByID returns the first child with the given ID.
func (n *Node) ChildByID(id string) *Node {
	for _, c := range n.children {
		if c.id == id {
			return c
		}
	}
	return nil
}

// FindByID searches the subtree rooted at n, depth first.
func (n *Node) FindByID(id string) *Node {
	if n.id == id {
		return n
	}
	for _, c := range n.children {
		if found := c.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) Position() engine.Point { return n.position }

func (n *Node) SetPosition(p engine.Point) { n.position = p }

// AnchorPoint is the normalized point of the node placed at Position.
func (n *Node) AnchorPoint() engine.Point { return n.anchor }

func (n *Node) SetAnchorPoint(p engine.Point) { n.anchor = p }

func (n *Node) ContentSize() engine.Size { return n.size }

func (n *Node) SetContentSize(s engine.Size) { n.size = s }

func (n *Node) Scale() (sx, sy float64) { return n.scaleX, n.scaleY }

// SetScale sets both scale factors to s.
func (n *Node) SetScale(s float64) { n.scaleX, n.scaleY = s, s }

func (n *Node) SetScaleXY(sx, sy float64) { n.scaleX, n.scaleY = sx, sy }

func (n *Node) Visible() bool { return n.visible }

func (n *Node) SetVisible(v bool) { n.visible = v }

// Color is the node tint. Alpha is always 0xff; see Opacity.
func (n *Node) Color() color.NRGBA { return n.color }

func (n *Node) SetColor(c color.NRGBA) {
	c.A = 0xff
	n.color = c
}

func (n *Node) Opacity() uint8 { return n.opacity }

func (n *Node) SetOpacity(o uint8) { n.opacity = o }

// LocalTransform maps n's space to its parent's space.
func (n *Node) LocalTransform() Matrix {
	return Translate(n.position.X, n.position.Y).
		Multiply(Scale(n.scaleX, n.scaleY)).
		Multiply(Translate(-n.anchor.X*n.size.Width, -n.anchor.Y*n.size.Height))
}

// WorldTransform maps n's space to world space.
func (n *Node) WorldTransform() Matrix {
	m := n.LocalTransform()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalTransform().Multiply(m)
	}
	return m
}

// ConvertToWorldSpace maps a point of n's space to world space.
func (n *Node) ConvertToWorldSpace(p engine.Point) engine.Point {
	return n.WorldTransform().TransformPoint(p)
}

// ConvertToNodeSpace maps a world point into n's space.
func (n *Node) ConvertToNodeSpace(p engine.Point) engine.Point {
	return n.WorldTransform().Invert().TransformPoint(p)
}

// WorldPosition returns Position converted by the parent to world space.
// A detached node's world position is its position.
func (n *Node) WorldPosition() engine.Point {
	if n.parent == nil {
		return n.position
	}
	return n.parent.ConvertToWorldSpace(n.position)
}

// WorldBounds returns the world-space bounding box of n's content.
func (n *Node) WorldBounds() (lo, hi engine.Point) {
	m := n.WorldTransform()
	corners := [4]engine.Point{
		m.TransformPoint(engine.Pt(0, 0)),
		m.TransformPoint(engine.Pt(n.size.Width, 0)),
		m.TransformPoint(engine.Pt(0, n.size.Height)),
		m.TransformPoint(engine.Pt(n.size.Width, n.size.Height)),
	}
	lo, hi = corners[0], corners[0]
	for _, c := range corners[1:] {
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return lo, hi
}

// IsVisibleInWorld reports whether n and all its ancestors are visible.
func (n *Node) IsVisibleInWorld() bool {
	for p := n; p != nil; p = p.parent {
		if !p.visible {
			return false
		}
	}
	return true
}

// AddSprite appends a sprite built from spec.
func (n *Node) AddSprite(spec engine.SpriteSpec) {
	n.AddChild(NewSprite(spec).Node)
}

// ShiftChildren moves every child by delta.
func (n *Node) ShiftChildren(delta engine.Point) {
	for _, c := range n.children {
		c.position = c.position.Add(delta)
	}
}

// Walk visits n and its descendants depth first, in drawing order. It
// skips the subtree of a node for which visit returns false.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(visit)
	}
}
