package richtext

import "errors"

// ErrBaseInit is returned by New when the dialog base fails to build. The
// base's own error is wrapped alongside it.
var ErrBaseInit = errors.New("richtext: dialog base failed to initialize")

// ErrInvalidSize is returned by the default dialog base for a non-positive
// width or height.
var ErrInvalidSize = errors.New("richtext: dialog size must be positive")

// ErrNoFont is returned by the default dialog base when the font set has
// no regular font.
var ErrNoFont = errors.New("richtext: no regular font")
