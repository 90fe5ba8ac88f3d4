package markup

import (
	"image/color"
	"unicode/utf8"
)

// Span is a half-open range [Start, End) of rune offsets into plain text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered by s.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Contains reports whether offset i lies inside s.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Bounds returns s itself. It lets generic code reach the range of any
// span kind.
func (s Span) Bounds() Span {
	return s
}

// ColorSpan tints its range. Color.A is always 0xff.
type ColorSpan struct {
	Span
	Color color.NRGBA
}

// UnderlineSpan underlines its range.
type UnderlineSpan struct {
	Span
}

// BoldSpan renders its range in a bold variant.
type BoldSpan struct {
	Span
}

// ItalicSpan renders its range in an italic variant.
type ItalicSpan struct {
	Span
}

// StrikeSpan strikes its range through.
type StrikeSpan struct {
	Span
}

// LinkSpan makes its range a clickable link to URL.
type LinkSpan struct {
	Span
	URL string
}

// ParsedText is the result of Parse. It is not modified after Parse returns.
type ParsedText struct {
	// Text is the input with recognized tags removed.
	Text string

	Colors     []ColorSpan
	Underlines []UnderlineSpan
	Bold       []BoldSpan
	Italic     []ItalicSpan
	Strikes    []StrikeSpan
	Links      []LinkSpan

	// Warnings lists the malformations Parse absorbed, in input order.
	Warnings []Warning
}

// Len returns the rune length of Text.
func (p *ParsedText) Len() int {
	return utf8.RuneCountInString(p.Text)
}

// HasDecorations reports whether p carries any span at all.
func (p *ParsedText) HasDecorations() bool {
	return len(p.Colors)+len(p.Underlines)+len(p.Bold)+len(p.Italic)+
		len(p.Strikes)+len(p.Links) > 0
}
