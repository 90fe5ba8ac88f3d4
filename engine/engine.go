// Package engine defines the interface between the rich-text core and the
// text-rendering engine that owns the scene.
//
// The core never owns any of the values it receives through these
// interfaces. Handles are valid for one pipeline pass: a Fragment removed
// from its TextBlock must not be used again.
//
// # Coordinates
//
// Y grows upward. A TextBlock's fragments are positioned in the block's
// local space; glyphs are positioned in their fragment's local space and
// report a world position through WorldPosition. TextBlock.ToNodeSpace maps
// world points back into block space.
//
// # Glyph order
//
// Span offsets are meaningful only against a fixed flattening of the block:
// fragments in the order returned by TextBlock.Fragments, then glyph slots in
// the order returned by Fragment.Glyphs. Each slot stands for exactly one
// character of the fragment's text, nil slots included. The walk over this
// order is implemented by Walk.
package engine

import "image/color"

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Variant selects one of the four mutually exclusive font resources a
// TextBlock can render with.
type Variant uint8

const (
	// VariantRegular is the upright, normal-weight resource.
	VariantRegular Variant = iota
	// VariantBold is the bold resource.
	VariantBold
	// VariantItalic is the italic resource.
	VariantItalic
	// VariantBoldItalic is the bold italic resource.
	VariantBoldItalic

	// NumVariants is the number of variants.
	NumVariants = 4
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantRegular:
		return "regular"
	case VariantBold:
		return "bold"
	case VariantItalic:
		return "italic"
	case VariantBoldItalic:
		return "bold-italic"
	default:
		return "unknown"
	}
}

// Texture identifies the image a glyph samples from.
type Texture interface {
	// ID is stable for equal textures.
	ID() string
}

// Glyph is the smallest positioned, colorable primitive of a fragment.
type Glyph interface {
	// Position is the glyph position in its fragment's space.
	Position() Point
	// ContentSize is the unscaled glyph size.
	ContentSize() Size
	// Scale returns the glyph's own scale factors.
	Scale() (sx, sy float64)
	// AnchorPoint is the normalized point of the glyph placed at Position.
	AnchorPoint() Point
	Color() color.NRGBA
	SetColor(c color.NRGBA)
	Opacity() uint8
	SetVisible(visible bool)
	Texture() Texture
	// WorldPosition converts Position through the glyph's ancestors.
	WorldPosition() Point
}

// Fragment is a contiguous run of characters already placed by the engine.
type Fragment interface {
	// String returns the characters of the fragment.
	String() string
	// Variant is the font resource the fragment is rendered with.
	Variant() Variant
	Position() Point
	ContentSize() Size
	// Glyphs returns one slot per character of String. A slot is nil when
	// the character has no drawable glyph.
	Glyphs() []Glyph
}

// Layer receives filled polygons.
type Layer interface {
	AddPolygon(verts []Point, fill color.NRGBA, borderWidth float64, border color.NRGBA)
}

// SpriteSpec describes a sprite to instantiate.
// A nil Texture yields an untextured quad of size Rect.
type SpriteSpec struct {
	Texture  Texture
	Rect     Size
	Anchor   Point
	ScaleX   float64
	ScaleY   float64
	Color    color.NRGBA
	Opacity  uint8
	Position Point
}

// LinkWrapper is a container collecting the visual content of one link.
type LinkWrapper interface {
	AddSprite(spec SpriteSpec)
	// ShiftChildren moves every child added so far by delta.
	ShiftChildren(delta Point)
	SetAnchorPoint(p Point)
	SetContentSize(s Size)
	SetPosition(p Point)
}

// Clickable is an activatable region carrying an opaque payload.
type Clickable interface {
	AnchorPoint() Point
	SetAnchorPoint(p Point)
	Position() Point
	SetPosition(p Point)
	ContentSize() Size
	Payload() string
	Activate()
}

// URLOpener opens a URL outside the application, for example in the system
// browser.
type URLOpener interface {
	OpenURL(url string) error
}

// URLOpenerFunc adapts a function to URLOpener.
type URLOpenerFunc func(url string) error

// OpenURL calls f(url).
func (f URLOpenerFunc) OpenURL(url string) error {
	return f(url)
}

// TextBlock is a multi-line block of rendered text owned by the engine.
type TextBlock interface {
	// Fragments returns the fragments in child order.
	Fragments() []Fragment
	// RemoveFragment destroys f and its glyphs.
	RemoveFragment(f Fragment)
	// AddFragment renders text with variant v, anchored at its bottom-left
	// corner at pos in block space, and appends it after the existing
	// fragments.
	AddFragment(text string, v Variant, pos Point) Fragment
	// ToNodeSpace converts a world point into block space.
	ToNodeSpace(world Point) Point
	// ResetLayer destroys the child layer with the given ID, if any, and
	// attaches a fresh empty one under the same ID.
	ResetLayer(id string) Layer
	// ResetLinks destroys every clickable region created by AddLink.
	ResetLinks()
	// NewLinkWrapper returns a detached container for link content.
	NewLinkWrapper() LinkWrapper
	// AddLink embeds w in a clickable region carrying url. Activating the
	// region passes url to the block's URLOpener.
	AddLink(w LinkWrapper, url string) Clickable
}
