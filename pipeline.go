package richtext

import (
	"github.com/gogpu/richtext/decor"
	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/layout"
	"github.com/gogpu/richtext/markup"
)

// Pipeline holds the options of the styling passes.
type Pipeline struct {
	Layout []layout.Option
	Decor  []decor.Option
}

// Apply styles block with p using default options.
func Apply(block engine.TextBlock, p *markup.ParsedText) []engine.Clickable {
	return Pipeline{}.Apply(block, p)
}

// Apply reflows block into bold, italic and bold-italic runs, then draws
// links, colors, underlines and strikethroughs over the result. It returns
// the link regions created. block must already hold p.Text.
func (pl Pipeline) Apply(block engine.TextBlock, p *markup.ParsedText) []engine.Clickable {
	if block == nil || p == nil {
		return nil
	}
	log := Logger()
	for _, w := range p.Warnings {
		log.Debug("richtext: markup", "issue", w.Issue.String(), "pos", w.Pos, "detail", w.Description)
	}

	res := layout.Reflow(block, p.Bold, p.Italic, pl.Layout...)
	log.Debug("richtext: reflow", "lines", len(res.Lines), "fragments", len(res.Fragments))

	links := decor.Links(block, p.Links, pl.Decor...)
	tinted := decor.Colors(block, p.Colors)
	under := decor.Underlines(block, p.Underlines)
	struck := decor.Strikes(block, p.Strikes)
	log.Debug("richtext: decorated",
		"links", len(links), "tinted", tinted, "underlines", under, "strikes", struck)
	return links
}
