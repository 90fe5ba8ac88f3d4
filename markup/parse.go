package markup

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	colorPrefix = "col="
	linkPrefix  = "link="
)

// opener is an open tag waiting for its closing tag.
type opener[T any] struct {
	offset int // rune offset in the output text
	pos    int // byte offset of the tag in the raw input
	value  T
}

// stack holds the open tags of one kind.
type stack[T any] []opener[T]

func (s *stack[T]) push(o opener[T]) {
	*s = append(*s, o)
}

func (s *stack[T]) pop() (opener[T], bool) {
	n := len(*s)
	if n == 0 {
		return opener[T]{}, false
	}
	o := (*s)[n-1]
	*s = (*s)[:n-1]
	return o, true
}

// parser is the state of one Parse call.
type parser struct {
	raw    string
	out    strings.Builder
	offset int // runes written to out
	result ParsedText

	colors     stack[color.NRGBA]
	underlines stack[struct{}]
	bold       stack[struct{}]
	italic     stack[struct{}]
	strikes    stack[struct{}]
	links      stack[string]
}

// Parse scans raw once, left to right, and returns its plain text and spans.
func Parse(raw string) *ParsedText {
	p := &parser{raw: raw}
	p.out.Grow(len(raw))

	pos := 0
	for pos < len(raw) {
		if raw[pos] != '<' {
			_, size := utf8.DecodeRuneInString(raw[pos:])
			p.out.WriteString(raw[pos : pos+size])
			p.offset++
			pos += size
			continue
		}

		end := strings.IndexByte(raw[pos:], '>')
		if end < 0 {
			p.warn(IssueUnterminatedTag, pos, "no closing '>'; %d trailing bytes dropped", len(raw)-pos)
			break
		}
		end += pos

		if !p.tag(raw[pos+1:end], pos) {
			literal := raw[pos : end+1]
			p.out.WriteString(literal)
			p.offset += utf8.RuneCountInString(literal)
		}
		pos = end + 1
	}

	p.unclosed()
	p.result.Text = p.out.String()
	return &p.result
}

// tag applies a tag body found at byte pos. It reports false when the body
// is not part of the tag set and must be emitted as text.
func (p *parser) tag(body string, pos int) bool {
	switch {
	case strings.HasPrefix(body, colorPrefix):
		p.openColor(strings.TrimPrefix(body, colorPrefix), pos)
	case body == "/col":
		if o, ok := p.colors.pop(); ok {
			p.result.Colors = append(p.result.Colors, ColorSpan{Span: p.span(o.offset), Color: o.value})
		} else {
			p.unmatched(body, pos)
		}
	case body == "u":
		p.underlines.push(opener[struct{}]{offset: p.offset, pos: pos})
	case body == "/u":
		if o, ok := p.underlines.pop(); ok {
			p.result.Underlines = append(p.result.Underlines, UnderlineSpan{p.span(o.offset)})
		} else {
			p.unmatched(body, pos)
		}
	case body == "b":
		p.bold.push(opener[struct{}]{offset: p.offset, pos: pos})
	case body == "/b":
		if o, ok := p.bold.pop(); ok {
			p.result.Bold = append(p.result.Bold, BoldSpan{p.span(o.offset)})
		} else {
			p.unmatched(body, pos)
		}
	case body == "i":
		p.italic.push(opener[struct{}]{offset: p.offset, pos: pos})
	case body == "/i":
		if o, ok := p.italic.pop(); ok {
			p.result.Italic = append(p.result.Italic, ItalicSpan{p.span(o.offset)})
		} else {
			p.unmatched(body, pos)
		}
	case body == "s":
		p.strikes.push(opener[struct{}]{offset: p.offset, pos: pos})
	case body == "/s":
		if o, ok := p.strikes.pop(); ok {
			p.result.Strikes = append(p.result.Strikes, StrikeSpan{p.span(o.offset)})
		} else {
			p.unmatched(body, pos)
		}
	case strings.HasPrefix(body, linkPrefix):
		p.links.push(opener[string]{offset: p.offset, pos: pos, value: strings.TrimPrefix(body, linkPrefix)})
	case body == "/link":
		if o, ok := p.links.pop(); ok {
			p.result.Links = append(p.result.Links, LinkSpan{Span: p.span(o.offset), URL: o.value})
		} else {
			p.unmatched(body, pos)
		}
	default:
		return false
	}
	return true
}

func (p *parser) openColor(value string, pos int) {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 6 {
		p.warn(IssueMalformedColor, pos, "color %q is not 6 hex characters; tag ignored", value)
		return
	}
	c, ok := DecodeColor(hex)
	if !ok {
		p.warn(IssueInvalidHexDigit, pos, "color %q has non-hex digits; decoded as %v", value, c)
	}
	p.colors.push(opener[color.NRGBA]{offset: p.offset, pos: pos, value: c})
}

// span closes a range opened at start.
func (p *parser) span(start int) Span {
	return Span{Start: start, End: p.offset}
}

func (p *parser) unmatched(body string, pos int) {
	p.warn(IssueUnmatchedClose, pos, "<%s> closes nothing", body)
}

// unclosed records a warning for every tag still open at end of input.
func (p *parser) unclosed() {
	var pending []int
	for _, o := range p.colors {
		pending = append(pending, o.pos)
	}
	for _, s := range []stack[struct{}]{p.underlines, p.bold, p.italic, p.strikes} {
		for _, o := range s {
			pending = append(pending, o.pos)
		}
	}
	for _, o := range p.links {
		pending = append(pending, o.pos)
	}
	slices.Sort(pending)
	for _, pos := range pending {
		end := strings.IndexByte(p.raw[pos:], '>')
		p.warn(IssueUnclosedTag, pos, "%s is never closed", p.raw[pos:pos+end+1])
	}
}

func (p *parser) warn(issue Issue, pos int, format string, args ...any) {
	p.result.Warnings = append(p.result.Warnings, Warning{
		Issue:       issue,
		Pos:         pos,
		Description: fmt.Sprintf(format, args...),
	})
}

// Strip returns the plain text of raw, without spans.
func Strip(raw string) string {
	return Parse(raw).Text
}
