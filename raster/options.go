package raster

import "image/color"

// DefaultImageColor fills sprites with an image texture that has no color
// of its own.
var DefaultImageColor = color.NRGBA{R: 0x6b, G: 0x45, B: 0x2c, A: 0xff}

// Option configures Render.
type Option func(*options)

type options struct {
	scale      float64
	margin     float64
	background color.Color
	images     map[string]color.NRGBA
}

func defaultOptions() options {
	return options{
		scale:      1,
		margin:     4,
		background: color.Transparent,
	}
}

// WithScale sets the number of pixels per world unit. The default is 1.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithMargin sets the empty border around the scene, in world units.
func WithMargin(m float64) Option {
	return func(o *options) {
		o.margin = max(0, m)
	}
}

// WithBackground sets the color the image is cleared to. The default is
// transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithImageColor sets the flat color drawn for sprites with the image
// texture name.
func WithImageColor(name string, c color.NRGBA) Option {
	return func(o *options) {
		if o.images == nil {
			o.images = make(map[string]color.NRGBA)
		}
		o.images[name] = c
	}
}
