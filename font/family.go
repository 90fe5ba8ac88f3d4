package font

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/richtext/engine"
)

// DefaultSize is the face size DefaultFamily uses when given 0.
const DefaultSize = 16

// Family holds one face per variant.
type Family struct {
	name  string
	faces [engine.NumVariants]*Face
}

// NewFamily groups faces, indexed by engine.Variant.
func NewFamily(name string, faces [engine.NumVariants]*Face) (*Family, error) {
	for i, f := range faces {
		if f == nil {
			return nil, fmt.Errorf("%w: %v", ErrIncompleteFamily, engine.Variant(i))
		}
	}
	return &Family{name: name, faces: faces}, nil
}

// Name returns the family name.
func (fam *Family) Name() string { return fam.name }

// Face returns the face of v. It returns the regular face for variants
// outside the family.
func (fam *Family) Face(v engine.Variant) *Face {
	if int(v) >= len(fam.faces) {
		return fam.faces[engine.VariantRegular]
	}
	return fam.faces[v]
}

// Lookup is Face with an error for unknown variants.
func (fam *Family) Lookup(v engine.Variant) (*Face, error) {
	if int(v) >= len(fam.faces) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, v)
	}
	return fam.faces[v], nil
}

// Size returns the size of the regular face.
func (fam *Family) Size() float64 {
	return fam.faces[engine.VariantRegular].Size()
}

// WithSize returns a family built from the same sources at size.
func (fam *Family) WithSize(size float64) *Family {
	out := &Family{name: fam.name}
	for i, f := range fam.faces {
		out.faces[i] = f.Source().Face(size)
	}
	return out
}

// GoFontData returns the TrueType data of the Go fonts, in variant order.
func GoFontData() [engine.NumVariants][]byte {
	return [engine.NumVariants][]byte{
		engine.VariantRegular:    goregular.TTF,
		engine.VariantBold:       gobold.TTF,
		engine.VariantItalic:     goitalic.TTF,
		engine.VariantBoldItalic: gobolditalic.TTF,
	}
}

var goSources = sync.OnceValues(func() ([engine.NumVariants]*Source, error) {
	var srcs [engine.NumVariants]*Source
	for i, ttf := range GoFontData() {
		s, err := NewSource(ttf)
		if err != nil {
			return srcs, fmt.Errorf("font: load Go font %v: %w", engine.Variant(i), err)
		}
		srcs[i] = s
	}
	return srcs, nil
})

// DefaultFamily returns the Go fonts at size. A size of 0 means DefaultSize.
// The parsed sources are shared by every family it returns.
func DefaultFamily(size float64) (*Family, error) {
	if size <= 0 {
		size = DefaultSize
	}
	srcs, err := goSources()
	if err != nil {
		return nil, err
	}
	var faces [engine.NumVariants]*Face
	for i, s := range srcs {
		faces[i] = s.Face(size)
	}
	return NewFamily("Go", faces)
}

// LoadFamily parses four font files, in variant order.
func LoadFamily(name string, data [engine.NumVariants][]byte, size float64, opts ...SourceOption) (*Family, error) {
	var faces [engine.NumVariants]*Face
	for i, d := range data {
		s, err := NewSource(d, opts...)
		if err != nil {
			return nil, fmt.Errorf("font: load %v: %w", engine.Variant(i), err)
		}
		faces[i] = s.Face(size)
	}
	return NewFamily(name, faces)
}
