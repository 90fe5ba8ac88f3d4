package decor

import (
	"image/color"
	"math"

	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/markup"
)

// LinkColor tints link glyphs and their dots.
var LinkColor = color.NRGBA{R: 0, G: 255, B: 255, A: 255}

// Dotted underline of links.
const (
	DotSpacing = 4.0
	DotWidth   = 2.0
	DotHeight  = 1.0
	DotOpacity = 180
	// DotInset is subtracted from each dot's X and is also its Y.
	DotInset = 2.0
)

// Links turns each span into a clickable region carrying the span's URL.
//
// The glyphs of a span are hidden and replaced by link-colored copies
// collected in a wrapper sized to their world bounds. A dotted underline
// is added below the copies, and the wrapper is embedded in a clickable
// region centered on the same area. Links created by an earlier call are
// discarded first. Spans covering no glyph produce nothing.
func Links(block engine.TextBlock, spans []markup.LinkSpan, opts ...Option) []engine.Clickable {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	block.ResetLinks()
	var out []engine.Clickable
	for _, s := range spans {
		if c := link(block, s, o); c != nil {
			out = append(out, c)
		}
	}
	slogger().Debug("decor: links", "spans", len(spans), "regions", len(out))
	return out
}

func link(block engine.TextBlock, s markup.LinkSpan, o options) engine.Clickable {
	wrapper := block.NewLinkWrapper()
	wrapper.SetAnchorPoint(engine.Point{})

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	engine.WalkRange(block, s.Start, s.End, func(_ int, g engine.Glyph, _ engine.Fragment) {
		if g == nil {
			return
		}
		found = true
		world := g.WorldPosition()
		size := g.ContentSize()
		sx, sy := g.Scale()
		minX, minY = min(minX, world.X), min(minY, world.Y)
		maxX, maxY = max(maxX, world.X+size.Width*sx), max(maxY, world.Y+size.Height*sy)

		wrapper.AddSprite(engine.SpriteSpec{
			Texture:  g.Texture(),
			Rect:     size,
			Anchor:   g.AnchorPoint(),
			ScaleX:   sx,
			ScaleY:   sy,
			Color:    o.linkColor,
			Opacity:  g.Opacity(),
			Position: block.ToNodeSpace(world),
		})
		g.SetVisible(false)
	})
	if !found {
		return nil
	}

	lo := block.ToNodeSpace(engine.Pt(minX, minY+o.menuOffset))
	hi := block.ToNodeSpace(engine.Pt(maxX, maxY+o.menuOffset))
	size := engine.Size{Width: hi.X - lo.X, Height: hi.Y - lo.Y}
	wrapper.SetContentSize(size)
	wrapper.ShiftChildren(engine.Pt(-lo.X, -lo.Y+o.menuOffset))

	for x := 0.0; x < size.Width; x += o.dotSpacing {
		wrapper.AddSprite(engine.SpriteSpec{
			Rect:     engine.Size{Width: DotWidth, Height: DotHeight},
			Anchor:   engine.Pt(0, 1),
			Color:    o.linkColor,
			Opacity:  DotOpacity,
			Position: engine.Pt(x-DotInset, -DotInset),
		})
	}
	wrapper.SetPosition(engine.Point{})

	c := block.AddLink(wrapper, s.URL)
	c.SetAnchorPoint(engine.Point{})
	c.SetPosition(lo)
	c.SetAnchorPoint(engine.Pt(0.5, 0.5))
	c.SetPosition(c.Position().Add(engine.Pt(c.ContentSize().Width/2, c.ContentSize().Height/2)))
	return c
}
