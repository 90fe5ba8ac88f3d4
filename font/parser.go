package font

import "sync"

// Parser is a font parsing backend.
type Parser interface {
	// Parse parses font data (TTF or OTF).
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is a font file decoded by a Parser.
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the family name, or "" if the font has none.
	Name() string

	// UnitsPerEm returns the design units per em.
	UnitsPerEm() int

	// GlyphIndex returns the glyph for r, or 0 when the font has none.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width of a glyph at ppem pixels per em.
	GlyphAdvance(gid uint16, ppem float64) float64

	// GlyphBounds returns the ink bounds of a glyph at ppem, y growing down.
	GlyphBounds(gid uint16, ppem float64) Rect

	// Metrics returns the line metrics at ppem.
	Metrics(ppem float64) Metrics
}

// Rect is an axis-aligned box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Metrics holds line metrics at a given size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line
	// (positive).
	Descent float64

	LineGap   float64
	XHeight   float64
	CapHeight float64
}

// Height returns the line height, Ascent + Descent + LineGap.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Parser names accepted by WithParser.
const (
	ParserXImage = "ximage"
	ParserGoText = "gotext"
)

var (
	parsersMu sync.RWMutex
	parsers   = map[string]Parser{
		ParserXImage: ximageParser{},
		ParserGoText: gotextParser{},
	}
)

// RegisterParser registers a parser backend under name, replacing any
// backend already registered under it.
func RegisterParser(name string, p Parser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	parsers[name] = p
}

// lookupParser returns the parser registered under name, falling back to
// the default backend.
func lookupParser(name string) (string, Parser) {
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	if p, ok := parsers[name]; ok {
		return name, p
	}
	return ParserXImage, parsers[ParserXImage]
}
