package font

import (
	"errors"
	"fmt"
)

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrUnknownVariant is returned when a family is asked for a variant it
	// cannot hold.
	ErrUnknownVariant = errors.New("font: unknown variant")

	// ErrIncompleteFamily is returned when a family is built with a missing face.
	ErrIncompleteFamily = errors.New("font: family is missing a face")
)

// ParseError reports a font that a parser backend rejected.
type ParseError struct {
	Parser string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("font: %s parser: %v", e.Parser, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
