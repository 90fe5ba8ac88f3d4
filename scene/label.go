package scene

import (
	"unicode"

	"github.com/gogpu/richtext/engine"
)

// Label is a single run of text drawn with one font. Each character gets a
// glyph sprite child, centered in a cell one advance wide and one line
// tall; whitespace and control characters get no sprite.
type Label struct {
	*Node
	text    string
	variant engine.Variant
	font    Font
	glyphs  []*Sprite
}

// NewLabel lays out text with font. The label is anchored at its center
// until told otherwise.
func NewLabel(text string, v engine.Variant, font Font) *Label {
	l := &Label{Node: &Node{}, variant: v, font: font}
	l.init(l)
	l.anchor = engine.Pt(0.5, 0.5)
	l.SetString(text)
	return l
}

// SetString replaces the text and rebuilds the glyphs.
func (l *Label) SetString(text string) {
	for _, g := range l.glyphs {
		if g != nil {
			l.RemoveChild(g.Node)
		}
	}
	l.text = text
	l.glyphs = l.glyphs[:0]

	height := l.font.LineHeight()
	x := 0.0
	for _, r := range text {
		adv := l.font.RuneAdvance(r)
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			l.glyphs = append(l.glyphs, nil)
			x += adv
			continue
		}
		g := NewSprite(engine.SpriteSpec{
			Texture:  GlyphTexture{Font: l.font, Rune: r},
			Rect:     engine.Size{Width: adv, Height: height},
			Anchor:   engine.Pt(0.5, 0.5),
			Position: engine.Pt(x+adv/2, height/2),
		})
		l.AddChild(g.Node)
		l.glyphs = append(l.glyphs, g)
		x += adv
	}
	l.size = engine.Size{Width: x, Height: height}
}

// String returns the label text.
func (l *Label) String() string { return l.text }

// Variant returns the font variant the label renders with.
func (l *Label) Variant() engine.Variant { return l.variant }

// Font returns the label font.
func (l *Label) Font() Font { return l.font }

// Glyphs returns one slot per character; whitespace slots are nil.
func (l *Label) Glyphs() []engine.Glyph {
	out := make([]engine.Glyph, len(l.glyphs))
	for i, g := range l.glyphs {
		if g != nil {
			out[i] = g
		}
	}
	return out
}

// Sprites is Glyphs with the concrete type.
func (l *Label) Sprites() []*Sprite { return l.glyphs }
