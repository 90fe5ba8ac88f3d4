package scene

import "github.com/gogpu/richtext/engine"

// Font measures the text of a label. *font.Face implements it.
type Font interface {
	Name() string
	// RuneAdvance returns the horizontal advance of r.
	RuneAdvance(r rune) float64
	// LineHeight returns the distance between consecutive baselines.
	LineHeight() float64
	// Descent returns the distance from the baseline to the bottom of a line.
	Descent() float64
}

// FontSet holds the font of each variant.
type FontSet [engine.NumVariants]Font

// Get returns the font of v, falling back to the regular font.
func (fs FontSet) Get(v engine.Variant) Font {
	if int(v) < len(fs) && fs[v] != nil {
		return fs[v]
	}
	return fs[engine.VariantRegular]
}
