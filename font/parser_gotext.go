package font

import (
	"bytes"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
)

// gotextParser parses fonts with github.com/go-text/typesetting.
type gotextParser struct{}

func (gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Parser: ParserGoText, Err: err}
	}
	return &gotextFont{face: face, name: face.Describe().Family}, nil
}

// gotextFont implements ParsedFont over a go-text Face. Values come back
// in font units and are scaled by ppem / upem.
type gotextFont struct {
	// mu guards face, whose internal caches are not safe for concurrent use.
	mu   sync.Mutex
	face *gtfont.Face
	name string
}

func (f *gotextFont) Name() string {
	return f.name
}

func (f *gotextFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

func (f *gotextFont) scale(ppem float64) float64 {
	upem := f.face.Upem()
	if upem == 0 {
		return 0
	}
	return ppem / float64(upem)
}

func (f *gotextFont) GlyphIndex(r rune) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint16(gid)
}

func (f *gotextFont) GlyphAdvance(gid uint16, ppem float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return float64(f.face.HorizontalAdvance(gtfont.GID(gid))) * f.scale(ppem)
}

func (f *gotextFont) GlyphBounds(gid uint16, ppem float64) Rect {
	f.mu.Lock()
	defer f.mu.Unlock()
	ext, ok := f.face.GlyphExtents(gtfont.GID(gid))
	if !ok {
		return Rect{}
	}
	s := f.scale(ppem)
	// Extents grow up; Rect grows down.
	return Rect{
		MinX: float64(ext.XBearing) * s,
		MinY: -float64(ext.YBearing) * s,
		MaxX: float64(ext.XBearing+ext.Width) * s,
		MaxY: -float64(ext.YBearing+ext.Height) * s,
	}
}

func (f *gotextFont) Metrics(ppem float64) Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.scale(ppem)
	ext, ok := f.face.FontHExtents()
	if !ok {
		return Metrics{}
	}
	return Metrics{
		Ascent:    float64(ext.Ascender) * s,
		Descent:   -float64(ext.Descender) * s,
		LineGap:   float64(ext.LineGap) * s,
		XHeight:   float64(f.face.LineMetric(gtfont.XHeight)) * s,
		CapHeight: float64(f.face.LineMetric(gtfont.CapHeight)) * s,
	}
}
