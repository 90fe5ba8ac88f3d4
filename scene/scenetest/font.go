// Package scenetest provides deterministic fonts for testing code built on
// package scene.
package scenetest

import (
	"unicode"

	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/scene"
)

// Line metrics of every font in this package.
const (
	LineHeight = 20
	Descent    = 4
)

// Mono is a monospaced font: every printable rune advances by Advance,
// control characters by 0.
type Mono struct {
	FontName string
	Advance  float64
}

func (m Mono) Name() string { return m.FontName }

func (m Mono) RuneAdvance(r rune) float64 {
	if unicode.IsControl(r) {
		return 0
	}
	return m.Advance
}

func (m Mono) LineHeight() float64 { return LineHeight }

func (m Mono) Descent() float64 { return Descent }

// Advances of the fonts returned by Fonts.
const (
	RegularAdvance = 8
	BoldAdvance    = 10
)

// Fonts returns a font set whose bold variants are wider than the others.
func Fonts() scene.FontSet {
	return scene.FontSet{
		engine.VariantRegular:    Mono{FontName: "mono", Advance: RegularAdvance},
		engine.VariantBold:       Mono{FontName: "mono-bold", Advance: BoldAdvance},
		engine.VariantItalic:     Mono{FontName: "mono-italic", Advance: RegularAdvance},
		engine.VariantBoldItalic: Mono{FontName: "mono-bold-italic", Advance: BoldAdvance},
	}
}

// Block returns a left-aligned block of text at the origin, anchored at its
// bottom-left corner.
func Block(text string, width float64, opts ...scene.BlockOption) *scene.TextBlock {
	b := scene.NewTextBlock(text, Fonts(), width, opts...)
	b.SetAnchorPoint(engine.Point{})
	return b
}
