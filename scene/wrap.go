package scene

import (
	"strings"
	"unicode"
)

// breakClass is a simplified UAX #14 line breaking class.
type breakClass uint8

const (
	breakOther breakClass = iota
	breakSpace
	breakZero
	breakOpen
	breakClose
	breakHyphen
	breakIdeographic
)

func classifyRune(r rune) breakClass {
	switch r {
	case ' ', '\t':
		return breakSpace
	case '\u200B':
		return breakZero
	case '(', '[', '{', '\u201C', '\u2018':
		return breakOpen
	case ')', ']', '}', '\u201D', '\u2019':
		return breakClose
	case '-', '\u2010', '\u2011', '\u2013', '\u2014':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x20000 && r <= 0x2A6DF) ||
		(r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF) ||
		(r >= 0xAC00 && r <= 0xD7AF) ||
		(r >= 0xFF00 && r <= 0xFFEF)
}

// canBreakBefore reports whether a line may start at runes[i].
func canBreakBefore(runes []rune, i int) bool {
	if i <= 0 || i >= len(runes) {
		return false
	}
	prev, curr := classifyRune(runes[i-1]), classifyRune(runes[i])
	switch {
	case curr == breakClose, prev == breakOpen:
		return false
	case prev == breakZero, prev == breakSpace && curr != breakSpace:
		return true
	case prev == breakHyphen && curr != breakHyphen && curr != breakSpace:
		return true
	case curr == breakIdeographic:
		return true
	case prev == breakIdeographic && curr != breakSpace:
		return true
	}
	return unicode.IsPunct(runes[i-1]) && runes[i-1] != '\'' && unicode.IsLetter(runes[i]) &&
		prev != breakClose
}

// wrapLines splits text into lines no wider than maxWidth, measured with
// advance. Lines keep their trailing spaces and their '\n', so joining the
// result gives back text. Words longer than a line are broken between
// characters. maxWidth <= 0 only splits at newlines.
func wrapLines(text string, maxWidth float64, advance func(rune) float64) []string {
	if text == "" {
		return nil
	}
	var lines []string
	paragraphs := strings.SplitAfter(text, "\n")
	for _, para := range paragraphs {
		if para == "" {
			continue
		}
		lines = append(lines, wrapParagraph(para, maxWidth, advance)...)
	}
	return lines
}

func wrapParagraph(para string, maxWidth float64, advance func(rune) float64) []string {
	if maxWidth <= 0 {
		return []string{para}
	}
	runes := []rune(para)
	var lines []string

	start := 0     // first rune of the current line
	lastBreak := 0 // latest break opportunity after start, 0 if none
	width := 0.0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if i > start && canBreakBefore(runes, i) {
			lastBreak = i
		}
		adv := advance(r)
		// Trailing white space may hang past the edge.
		if width+adv <= maxWidth || unicode.IsSpace(r) || i == start {
			width += adv
			continue
		}
		cut := i
		if lastBreak > start {
			cut = lastBreak
		}
		lines = append(lines, string(runes[start:cut]))
		start, lastBreak, width = cut, 0, 0
		for j := cut; j <= i; j++ {
			width += advance(runes[j])
			if j > cut && canBreakBefore(runes, j) {
				lastBreak = j
			}
		}
	}
	return append(lines, string(runes[start:]))
}
