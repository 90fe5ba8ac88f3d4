// Package richtext renders inline-markup text inside alert dialogs.
//
// # Overview
//
// Markup is plain text with a small tag language mixed in:
//
//	<col=#ff0000>red</col> <b>bold</b> <i>italic</i> <u>under</u>
//	<s>struck</s> <link=https://example.com>a link</link>
//
// The text is stripped of its tags, laid out by a text block, and then
// styled in two passes: the lines are re-segmented into bold, italic and
// bold-italic runs, and decorations (links, colors, underlines,
// strikethroughs) are drawn over the final fragments.
//
// # Quick Start
//
//	a, err := richtext.New("Notice",
//	    "Read the <link=https://example.com>docs</link> <b>first</b>.", "OK")
//	if err != nil {
//	    return err
//	}
//	a.Show(root)
//
// # Architecture
//
// The pipeline is split into packages, leaf first:
//   - markup: tag parsing into plain text and spans
//   - style: per-character font class map
//   - layout: line regrouping and per-style reflow
//   - decor: color, underline, strike and link passes
//   - engine: the text engine interfaces the passes work against
//   - scene, font: the text engine this module ships with
//   - raster: CPU rendering of a scene to an image
//
// Apply runs the passes against any engine.TextBlock. New builds a whole
// alert on top of a dialog base.
//
// # Logging
//
// Logging is silent by default. Call SetLogger to enable it for this
// package and every sub-package.
package richtext
