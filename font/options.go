package font

// SourceOption configures Source creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	parser     string
	cacheLimit int
	name       string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parser:     ParserXImage,
		cacheLimit: 512,
	}
}

// WithParser selects the parser backend by name. Unknown names fall back
// to ParserXImage.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parser = name
	}
}

// WithCacheLimit sets how many rune advances each Face remembers.
// 0 means unlimited.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithName overrides the name read from the font file.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}
