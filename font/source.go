package font

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/opentype"
)

// Source is a loaded font file. One Source can create faces at any size.
//
// Source is safe for concurrent use and must not be copied after creation.
type Source struct {
	addr *Source

	data   []byte
	parsed ParsedFont
	parser string
	name   string
	config sourceConfig

	// otOnce lazily parses data for drawing, whatever the parser backend.
	otOnce sync.Once
	ot     *opentype.Font
	otErr  error
}

// NewSource parses data (TTF or OTF). The data is copied.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	name, parser := lookupParser(config.parser)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	s := &Source{
		data:   append([]byte(nil), data...),
		parsed: parsed,
		parser: name,
		config: config,
	}
	s.addr = s

	s.name = config.name
	if s.name == "" {
		s.name = parsed.Name()
	}
	if s.name == "" {
		s.name = "Unknown Font"
	}
	return s, nil
}

// NewSourceFromFile loads a Source from a font file.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	// #nosec G304 -- font path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: read font file: %w", err)
	}
	return NewSource(data, opts...)
}

// Face returns a face of s at size pixels per em.
func (s *Source) Face(size float64) *Face {
	s.copyCheck()
	return newFace(s, size)
}

// Name returns the font name.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// Parser returns the name of the backend that parsed s.
func (s *Source) Parser() string {
	return s.parser
}

// Parsed returns the parsed font.
func (s *Source) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// drawFont returns s parsed by x/image, for rasterization.
func (s *Source) drawFont() (*opentype.Font, error) {
	s.otOnce.Do(func() {
		s.ot, s.otErr = opentype.Parse(s.data)
		if s.otErr != nil {
			s.otErr = &ParseError{Parser: ParserXImage, Err: s.otErr}
		}
	})
	return s.ot, s.otErr
}

func (s *Source) copyCheck() {
	if s.addr != s {
		panic("font: Source must not be copied by value")
	}
}
