package font

import (
	"sync"
	"unicode"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/richtext/internal/cache"
)

// Face is a Source at a fixed size. Face is safe for concurrent use.
type Face struct {
	source   *Source
	size     float64
	advances *cache.Cache[rune, float64]

	metricsOnce sync.Once
	metrics     Metrics

	drawOnce sync.Once
	draw     xfont.Face
	drawErr  error
}

func newFace(s *Source, size float64) *Face {
	return &Face{
		source:   s,
		size:     size,
		advances: cache.New[rune, float64](s.config.cacheLimit),
	}
}

// Source returns the Source f was created from.
func (f *Face) Source() *Source { return f.source }

// Size returns the size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Name returns the font name of the source.
func (f *Face) Name() string { return f.source.Name() }

// Metrics returns the line metrics of f.
func (f *Face) Metrics() Metrics {
	f.metricsOnce.Do(func() {
		f.metrics = f.source.parsed.Metrics(f.size)
	})
	return f.metrics
}

// LineHeight returns the distance between consecutive baselines.
func (f *Face) LineHeight() float64 {
	return f.Metrics().Height()
}

// Descent returns the distance from the baseline to the bottom of a line.
func (f *Face) Descent() float64 {
	return f.Metrics().Descent
}

// RuneAdvance returns the horizontal advance of r. Control characters
// advance by 0.
func (f *Face) RuneAdvance(r rune) float64 {
	if unicode.IsControl(r) {
		return 0
	}
	return f.advances.GetOrCreate(r, func() float64 {
		p := f.source.parsed
		return p.GlyphAdvance(p.GlyphIndex(r), f.size)
	})
}

// Advance returns the total advance of text.
func (f *Face) Advance(text string) float64 {
	total := 0.0
	for _, r := range text {
		total += f.RuneAdvance(r)
	}
	return total
}

// HasGlyph reports whether the font maps r to a glyph.
func (f *Face) HasGlyph(r rune) bool {
	return f.source.parsed.GlyphIndex(r) != 0
}

// Bounds returns the ink bounds of r relative to its origin, y growing down.
func (f *Face) Bounds(r rune) Rect {
	p := f.source.parsed
	return p.GlyphBounds(p.GlyphIndex(r), f.size)
}

// CacheStats returns the advance cache counters.
func (f *Face) CacheStats() cache.Stats {
	return f.advances.Stats()
}

// DrawFace returns an x/image face of f for drawing glyphs.
func (f *Face) DrawFace() (xfont.Face, error) {
	f.drawOnce.Do(func() {
		ot, err := f.source.drawFont()
		if err != nil {
			f.drawErr = err
			return
		}
		f.draw, f.drawErr = opentype.NewFace(ot, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     72,
			Hinting: xfont.HintingNone,
		})
	})
	return f.draw, f.drawErr
}
