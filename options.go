package richtext

import (
	"github.com/gogpu/richtext/decor"
	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/font"
	"github.com/gogpu/richtext/layout"
)

// Default dialog dimensions.
const (
	DefaultWidth  = 300
	DefaultHeight = 140
)

// Option configures an Alert during creation.
//
// Example:
//
//	a, err := richtext.New("Update", text, "Later",
//	    richtext.WithSecondaryButton("Download"),
//	    richtext.WithWidth(360),
//	)
type Option func(*options)

// options holds the optional configuration of New.
type options struct {
	secondary string
	width     float64
	height    float64
	scroll    bool
	textScale float64
	family    *font.Family
	fontSize  float64
	opener    engine.URLOpener
	base      BaseFunc
	delegate  func(*Alert, ButtonID)
	pipeline  Pipeline
	normalize bool
}

// defaultOptions returns the default alert options.
func defaultOptions() options {
	return options{
		width:     DefaultWidth,
		height:    DefaultHeight,
		textScale: 1,
		fontSize:  font.DefaultSize,
		base:      DefaultBase,
		normalize: true,
	}
}

// WithSecondaryButton adds a second button with the given label.
func WithSecondaryButton(label string) Option {
	return func(o *options) {
		o.secondary = label
	}
}

// WithWidth sets the dialog width. The default is DefaultWidth.
func WithWidth(w float64) Option {
	return func(o *options) {
		o.width = w
	}
}

// WithHeight sets the dialog height. The default is DefaultHeight. Without
// scrolling the dialog still grows to fit its text.
func WithHeight(h float64) Option {
	return func(o *options) {
		o.height = h
	}
}

// WithScroll makes the text area scroll instead of growing the dialog.
func WithScroll(scroll bool) Option {
	return func(o *options) {
		o.scroll = scroll
	}
}

// WithTextScale scales the text block. The default is 1.
func WithTextScale(s float64) Option {
	return func(o *options) {
		o.textScale = s
	}
}

// WithFamily sets the font family of the dialog. By default the Go fonts
// are used at the font size.
func WithFamily(f *font.Family) Option {
	return func(o *options) {
		o.family = f
	}
}

// WithFontSize sets the size of the default font family. It is ignored
// when WithFamily is given.
func WithFontSize(size float64) Option {
	return func(o *options) {
		o.fontSize = size
	}
}

// WithURLOpener sets where activated links are sent. Without one, links
// are logged and otherwise ignored.
func WithURLOpener(op engine.URLOpener) Option {
	return func(o *options) {
		o.opener = op
	}
}

// WithNormalize sets whether New converts the markup to NFC before
// parsing. It is on by default; turn it off to keep span offsets aligned
// with markup.Parse of the raw text.
func WithNormalize(normalize bool) Option {
	return func(o *options) {
		o.normalize = normalize
	}
}

// WithBase replaces the dialog base constructor.
func WithBase(f BaseFunc) Option {
	return func(o *options) {
		if f != nil {
			o.base = f
		}
	}
}

// WithDelegate sets a function called when a dialog button is clicked,
// before the alert closes.
func WithDelegate(f func(*Alert, ButtonID)) Option {
	return func(o *options) {
		o.delegate = f
	}
}

// WithLayoutOptions passes options to the reflow pass.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(o *options) {
		o.pipeline.Layout = append(o.pipeline.Layout, opts...)
	}
}

// WithDecorOptions passes options to the decoration passes.
func WithDecorOptions(opts ...decor.Option) Option {
	return func(o *options) {
		o.pipeline.Decor = append(o.pipeline.Decor, opts...)
	}
}
