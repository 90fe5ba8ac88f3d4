// Package markup parses the inline tag language of rich text.
//
// The language wraps plain text in paired tags:
//
//	<col=#FF8800>orange</col>  color, RRGGBB with an optional '#'
//	<b>bold</b>                bold
//	<i>italic</i>              italic
//	<u>underline</u>           underline
//	<s>strike</s>              strikethrough
//	<link=https://x.com>x</link>
//
// Parse strips recognized tags and reports, per tag kind, the half-open
// ranges of the stripped text they covered. Offsets count runes of the
// stripped text, not bytes of the input.
//
// Parsing never fails. Malformed input degrades as follows:
//   - a '<' without a later '>' ends the text; everything after it is dropped
//   - an unknown tag is kept verbatim, brackets included
//   - a color tag whose value is not six characters long is dropped entirely
//   - a closing tag with nothing open is ignored
//   - an opening tag never closed produces no span
//
// Every such case is also recorded as a Warning on the result.
package markup
