package scene

import (
	"image/color"

	"github.com/gogpu/richtext/engine"
)

// Polygon is a filled convex polygon in its DrawNode's space.
type Polygon struct {
	Verts       []engine.Point
	Fill        color.NRGBA
	BorderWidth float64
	Border      color.NRGBA
}

// DrawNode draws filled polygons. It implements engine.Layer.
type DrawNode struct {
	*Node
	polygons []Polygon
}

// NewDrawNode returns an empty draw node at the origin.
func NewDrawNode() *DrawNode {
	d := &DrawNode{Node: &Node{}}
	d.init(d)
	return d
}

// AddPolygon appends a polygon. The vertices are copied.
func (d *DrawNode) AddPolygon(verts []engine.Point, fill color.NRGBA, borderWidth float64, border color.NRGBA) {
	d.polygons = append(d.polygons, Polygon{
		Verts:       append([]engine.Point(nil), verts...),
		Fill:        fill,
		BorderWidth: borderWidth,
		Border:      border,
	})
}

// Polygons returns the polygons in drawing order.
func (d *DrawNode) Polygons() []Polygon { return d.polygons }

// Clear removes every polygon.
func (d *DrawNode) Clear() { d.polygons = nil }
