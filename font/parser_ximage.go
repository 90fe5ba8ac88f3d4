package font

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser parses fonts with golang.org/x/image/font/opentype.
type ximageParser struct{}

func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &ParseError{Parser: ParserXImage, Err: err}
	}
	return &ximageFont{font: f}, nil
}

// ximageFont implements ParsedFont over an sfnt.Font.
// sfnt.Font is safe for concurrent use as long as each call gets its own
// sfnt.Buffer.
type ximageFont struct {
	font *opentype.Font
}

func (f *ximageFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

func (f *ximageFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

func (f *ximageFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

func (f *ximageFont) GlyphAdvance(gid uint16, ppem float64) float64 {
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), toFixed(ppem), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

func (f *ximageFont) GlyphBounds(gid uint16, ppem float64) Rect {
	var buf sfnt.Buffer
	b, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(gid), toFixed(ppem), xfont.HintingNone)
	if err != nil {
		return Rect{}
	}
	return Rect{
		MinX: fromFixed(b.Min.X),
		MinY: fromFixed(b.Min.Y),
		MaxX: fromFixed(b.Max.X),
		MaxY: fromFixed(b.Max.Y),
	}
}

func (f *ximageFont) Metrics(ppem float64) Metrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, toFixed(ppem), xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}
	ascent, descent := fromFixed(m.Ascent), fromFixed(m.Descent)
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   max(fromFixed(m.Height)-ascent-descent, 0),
		XHeight:   fromFixed(m.XHeight),
		CapHeight: fromFixed(m.CapHeight),
	}
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
