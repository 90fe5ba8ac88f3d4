// Package font loads TrueType and OpenType fonts and measures text with them.
//
// A Source is a parsed font file. It is heavyweight and should be shared.
// A Face is a Source at a given size; it answers the questions text layout
// asks (advances, bounds, line metrics) and caches per-rune advances.
//
// Parsing goes through a pluggable Parser backend. Two are registered:
//
//   - "ximage" (default): golang.org/x/image/font/opentype
//   - "gotext": github.com/go-text/typesetting/font
//
// A Family groups the four faces a rich text block renders with: regular,
// bold, italic and bold italic. DefaultFamily builds one from the Go fonts.
//
//	fam, err := font.DefaultFamily(16)
//	if err != nil {
//		return err
//	}
//	w := fam.Face(engine.VariantBold).Advance("Hello")
package font
