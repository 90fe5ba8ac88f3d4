// Package style resolves bold and italic spans into a per-character style
// map.
package style

import (
	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/markup"
)

// Class is the font style of one character.
type Class uint8

const (
	Normal Class = iota
	Bold
	Italic
	BoldItalic
)

// FromFlags returns the class for the given weight and slant.
func FromFlags(bold, italic bool) Class {
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	}
	return Normal
}

// Bold reports whether c has bold weight.
func (c Class) Bold() bool { return c == Bold || c == BoldItalic }

// Italic reports whether c is slanted.
func (c Class) Italic() bool { return c == Italic || c == BoldItalic }

// Variant returns the font variant that renders c.
func (c Class) Variant() engine.Variant {
	switch c {
	case Bold:
		return engine.VariantBold
	case Italic:
		return engine.VariantItalic
	case BoldItalic:
		return engine.VariantBoldItalic
	}
	return engine.VariantRegular
}

func (c Class) String() string {
	switch c {
	case Normal:
		return "normal"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold-italic"
	}
	return "unknown"
}

// BuildMap returns the class of each of textLen characters. Bold spans are
// applied first; italic spans then turn Normal into Italic and Bold into
// BoldItalic. Spans running past textLen are clipped.
func BuildMap(textLen int, bold []markup.BoldSpan, italic []markup.ItalicSpan) []Class {
	return Build(textLen, Spans(bold), Spans(italic))
}

// Build is BuildMap over plain spans.
func Build(textLen int, bold, italic []markup.Span) []Class {
	if textLen < 0 {
		textLen = 0
	}
	m := make([]Class, textLen)
	for _, s := range bold {
		start, end := bound(s, textLen, "bold")
		for i := start; i < end; i++ {
			m[i] = Bold
		}
	}
	for _, s := range italic {
		start, end := bound(s, textLen, "italic")
		for i := start; i < end; i++ {
			m[i] = FromFlags(m[i].Bold(), true)
		}
	}
	return m
}

// bound clamps s to [0, n).
func bound(s markup.Span, n int, kind string) (start, end int) {
	start, end = max(s.Start, 0), s.End
	if end > n {
		slogger().Warn("style: span clipped to text length",
			"kind", kind, "start", s.Start, "end", s.End, "len", n)
		end = n
	}
	return start, end
}

// Spans extracts the ranges of any span kind.
func Spans[S interface{ Bounds() markup.Span }](spans []S) []markup.Span {
	out := make([]markup.Span, len(spans))
	for i, s := range spans {
		out[i] = s.Bounds()
	}
	return out
}

// Clip intersects spans with [offset, offset+length) and shifts the result
// so offset becomes 0. Spans that do not overlap the window are dropped.
func Clip(spans []markup.Span, offset, length int) []markup.Span {
	var out []markup.Span
	limit := offset + length
	for _, s := range spans {
		if s.End <= offset || s.Start >= limit {
			continue
		}
		out = append(out, markup.Span{
			Start: max(s.Start, offset) - offset,
			End:   min(s.End, limit) - offset,
		})
	}
	return out
}

// Run is a maximal range of characters sharing one class.
type Run struct {
	markup.Span
	Class Class
}

// Runs splits m into maximal uniform runs, in order.
func Runs(m []Class) []Run {
	var runs []Run
	for i := 0; i < len(m); {
		j := i + 1
		for j < len(m) && m[j] == m[i] {
			j++
		}
		runs = append(runs, Run{Span: markup.Span{Start: i, End: j}, Class: m[i]})
		i = j
	}
	return runs
}
