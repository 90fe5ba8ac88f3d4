// Package layout rebuilds the fragments of a text block so that bold and
// italic runs are drawn with their own font variant.
package layout

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/style"
)

// Line is a group of fragments sharing a baseline.
type Line struct {
	// Y is the baseline of the fragment that opened the line.
	Y float64
	// Fragments are ordered by ascending X.
	Fragments []engine.Fragment
}

// Text returns the concatenated text of the line's fragments.
func (l Line) Text() string {
	var sb strings.Builder
	for _, f := range l.Fragments {
		sb.WriteString(f.String())
	}
	return sb.String()
}

// Indent returns the X of the leftmost fragment.
func (l Line) Indent() float64 {
	if len(l.Fragments) == 0 {
		return 0
	}
	return l.Fragments[0].Position().X
}

// baseline returns the Y a fragment had before Reflow raised it. Fragments
// in a variant other than regular are taken to carry the nudge.
func baseline(f engine.Fragment, nudge float64) float64 {
	y := f.Position().Y
	if f.Variant() != engine.VariantRegular {
		y -= nudge
	}
	return y
}

// GroupLines clusters fragments into lines by baseline. Lines are checked
// from the lowest baseline up, and a fragment joins the first one closer
// than the epsilon to its own baseline; otherwise it opens a new line.
// Lines are returned top first (descending Y).
func GroupLines(frags []engine.Fragment, opts ...Option) []Line {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return groupLines(frags, o)
}

func groupLines(frags []engine.Fragment, o options) []Line {
	// ascending Y while clustering
	var lines []Line
	for _, f := range frags {
		if f == nil {
			continue
		}
		y := baseline(f, o.nudge)
		i := slices.IndexFunc(lines, func(l Line) bool {
			return math.Abs(l.Y-y) < o.epsilon
		})
		if i < 0 {
			i, _ = slices.BinarySearchFunc(lines, y, func(l Line, y float64) int {
				return cmp.Compare(l.Y, y)
			})
			lines = slices.Insert(lines, i, Line{Y: y})
		}
		lines[i].Fragments = append(lines[i].Fragments, f)
	}

	slices.Reverse(lines)
	for _, l := range lines {
		slices.SortStableFunc(l.Fragments, func(a, b engine.Fragment) int {
			return cmp.Compare(a.Position().X, b.Position().X)
		})
	}
	return lines
}

// Result describes a reflow.
type Result struct {
	// Lines are the groups of original fragments, which have been removed
	// from the block.
	Lines []Line
	// Fragments are the fragments created, in creation order.
	Fragments []engine.Fragment
}

// Reflow replaces the fragments of block with one fragment per run of
// uniformly styled characters. bold and italic are ranges of the block
// text, in the order lines are read top to bottom.
//
// Each line is re-created left to right from the X of its first fragment,
// every run following the previous one by its measured width. Runs not in
// the normal style are raised by the nudge. Reflowing a block again with
// the same spans and options leaves it unchanged.
func Reflow(block engine.TextBlock, bold []markup.BoldSpan, italic []markup.ItalicSpan, opts ...Option) Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	originals := block.Fragments()
	lines := groupLines(originals, o)
	texts := make([]string, len(lines))
	indents := make([]float64, len(lines))
	for i, l := range lines {
		texts[i], indents[i] = l.Text(), l.Indent()
	}
	for _, f := range originals {
		if f != nil {
			block.RemoveFragment(f)
		}
	}

	boldSpans, italicSpans := style.Spans(bold), style.Spans(italic)
	res := Result{Lines: lines}
	offset := 0
	for i, line := range lines {
		text := texts[i]
		n := utf8.RuneCountInString(text)
		classes := style.Build(n,
			style.Clip(boldSpans, offset, n),
			style.Clip(italicSpans, offset, n))

		runes := []rune(text)
		indent := indents[i]
		x := 0.0
		for _, run := range style.Runs(classes) {
			y := line.Y
			if run.Class != style.Normal {
				y += o.nudge
			}
			seg := string(runes[run.Start:run.End])
			f := block.AddFragment(seg, run.Class.Variant(), engine.Pt(indent+x, y))
			x += f.ContentSize().Width
			res.Fragments = append(res.Fragments, f)
		}
		offset += n
	}

	slogger().Debug("layout: reflow",
		"fragments", len(originals), "lines", len(lines), "runs", len(res.Fragments))
	return res
}
