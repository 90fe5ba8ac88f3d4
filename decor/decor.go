// Package decor draws the decorations of rich text over an already laid
// out text block: glyph colors, underlines, strikethroughs and clickable
// links.
//
// Every pass locates characters through the glyph order of engine.Walk, so
// it must run after the last change to the block's fragments.
package decor

import (
	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/style"
)

// Layer IDs of the bar passes.
const (
	UnderlineLayerID = "underlineLayer"
	StrikeLayerID    = "strikelineLayer"
)

// Bar geometry.
const (
	BarThickness = 0.25
	BarPadding   = 1.0
	StrikeRaise  = 8.0
)

// Apply runs every pass in order: links, colors, underlines, strikes.
func Apply(block engine.TextBlock, p *markup.ParsedText, opts ...Option) {
	Links(block, p.Links, opts...)
	Colors(block, p.Colors)
	Underlines(block, p.Underlines)
	Strikes(block, p.Strikes)
}

// Colors tints the glyphs covered by each span and returns how many glyphs
// it tinted. Later spans win.
func Colors(block engine.TextBlock, spans []markup.ColorSpan) int {
	n := 0
	for _, s := range spans {
		engine.WalkRange(block, s.Start, s.End, func(_ int, g engine.Glyph, _ engine.Fragment) {
			if g != nil {
				g.SetColor(s.Color)
				n++
			}
		})
	}
	slogger().Debug("decor: colors", "spans", len(spans), "glyphs", n)
	return n
}

// Underlines recreates the underline layer and draws one bar per span at
// the bottom of the span's first fragment. It returns the number of bars.
func Underlines(block engine.TextBlock, spans []markup.UnderlineSpan) int {
	return bars(block, style.Spans(spans), UnderlineLayerID, 0)
}

// Strikes recreates the strike layer and draws one bar per span, StrikeRaise
// above the bottom of the span's first fragment. It returns the number of
// bars.
func Strikes(block engine.TextBlock, spans []markup.StrikeSpan) int {
	return bars(block, style.Spans(spans), StrikeLayerID, StrikeRaise)
}

// bars draws a thin quad under each span. The quad runs from the left edge
// of the span's first glyph to the right edge of its last one, padded by
// BarPadding, and takes the first glyph's color.
func bars(block engine.TextBlock, spans []markup.Span, id string, raise float64) int {
	layer := block.ResetLayer(id)
	n := 0
	for _, s := range spans {
		var (
			found       bool
			left, right engine.Point
			first       engine.Glyph
			owner       engine.Fragment
		)
		engine.WalkRange(block, s.Start, s.End, func(_ int, g engine.Glyph, f engine.Fragment) {
			if g == nil {
				return
			}
			world := g.WorldPosition()
			half := g.ContentSize().Width / 2
			if !found {
				found, first, owner = true, g, f
				left = engine.Pt(world.X-half, world.Y)
				right = engine.Pt(world.X+half, world.Y)
				return
			}
			right.X = world.X + half
		})
		if !found {
			continue
		}

		c := first.Color()
		c.A = 0xff
		l, r := block.ToNodeSpace(left), block.ToNodeSpace(right)
		y := owner.Position().Y + raise
		layer.AddPolygon([]engine.Point{
			{X: l.X - BarPadding, Y: y},
			{X: r.X + BarPadding, Y: y},
			{X: r.X + BarPadding, Y: y - BarThickness},
			{X: l.X - BarPadding, Y: y - BarThickness},
		}, c, 0, c)
		n++
	}
	slogger().Debug("decor: bars", "layer", id, "spans", len(spans), "bars", n)
	return n
}
