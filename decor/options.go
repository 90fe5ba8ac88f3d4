package decor

import "image/color"

// Option configures the decoration passes.
type Option func(*options)

type options struct {
	menuOffset float64
	linkColor  color.NRGBA
	dotSpacing float64
}

func defaultOptions() options {
	return options{
		linkColor:  LinkColor,
		dotSpacing: DotSpacing,
	}
}

// WithMenuOffset shifts the link bounds by dy before they are converted to
// block space, and raises the link content back by dy afterwards. Hosts
// whose link menu is offset from the block use it to compensate.
func WithMenuOffset(dy float64) Option {
	return func(o *options) {
		o.menuOffset = dy
	}
}

// WithLinkColor sets the tint of link glyphs and dots.
func WithLinkColor(c color.NRGBA) Option {
	return func(o *options) {
		c.A = 0xff
		o.linkColor = c
	}
}

// WithDotSpacing sets the distance between link underline dots. Values
// <= 0 are ignored.
func WithDotSpacing(d float64) Option {
	return func(o *options) {
		if d > 0 {
			o.dotSpacing = d
		}
	}
}
