package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/scene"
)

// ErrEmptyScene is returned by Render when no visible node draws anything.
var ErrEmptyScene = errors.New("raster: scene has nothing to draw")

// drawFacer is a scene font that can provide an x/image face, such as
// *font.Face of this module.
type drawFacer interface {
	DrawFace() (font.Face, error)
}

// Render draws the visible subtree of root into a new image just large
// enough for it, plus the margin.
func Render(root *scene.Node, opts ...Option) (*image.RGBA, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lo, hi, ok := Bounds(root)
	if !ok {
		return nil, ErrEmptyScene
	}
	margin := engine.Pt(o.margin, o.margin)
	lo, hi = lo.Sub(margin), hi.Add(margin)

	w := int(math.Ceil((hi.X - lo.X) * o.scale))
	h := int(math.Ceil((hi.Y - lo.Y) * o.scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)

	r := &renderer{
		dst:    img,
		origin: engine.Pt(lo.X, hi.Y),
		scale:  o.scale,
		images: o.images,
		ras:    vector.NewRasterizer(w, h),
	}
	root.Walk(r.visit)
	return img, nil
}

// Bounds returns the world-space box of everything Render would draw
// under root. ok is false when nothing would be drawn.
func Bounds(root *scene.Node) (lo, hi engine.Point, ok bool) {
	add := func(p engine.Point) {
		if !ok {
			lo, hi, ok = p, p, true
			return
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	root.Walk(func(n *scene.Node) bool {
		if !n.Visible() {
			return false
		}
		switch owner := n.Owner().(type) {
		case *scene.Sprite:
			if s := n.ContentSize(); s.Width > 0 && s.Height > 0 {
				l, h := n.WorldBounds()
				add(l)
				add(h)
			}
		case *scene.DrawNode:
			m := n.WorldTransform()
			for _, p := range owner.Polygons() {
				for _, v := range p.Verts {
					add(m.TransformPoint(v))
				}
			}
		}
		return true
	})
	return lo, hi, ok
}

type renderer struct {
	dst    *image.RGBA
	origin engine.Point // world point of pixel (0, 0)
	scale  float64
	images map[string]color.NRGBA
	ras    *vector.Rasterizer
}

func (r *renderer) visit(n *scene.Node) bool {
	if !n.Visible() {
		return false
	}
	switch owner := n.Owner().(type) {
	case *scene.Sprite:
		r.sprite(owner)
	case *scene.DrawNode:
		r.polygons(owner)
	}
	return true
}

func (r *renderer) pixel(p engine.Point) engine.Point {
	return engine.Pt((p.X-r.origin.X)*r.scale, (r.origin.Y-p.Y)*r.scale)
}

func (r *renderer) sprite(s *scene.Sprite) {
	c := s.Color()
	c.A = s.Opacity()
	if c.A == 0 {
		return
	}
	switch t := s.Texture().(type) {
	case scene.GlyphTexture:
		if r.glyph(s, t, c) {
			return
		}
	case scene.ImageTexture:
		base, ok := r.images[string(t)]
		if !ok {
			base = DefaultImageColor
		}
		c = tint(base, c)
	}

	m := s.WorldTransform()
	size := s.ContentSize()
	r.fill([]engine.Point{
		m.TransformPoint(engine.Pt(0, 0)),
		m.TransformPoint(engine.Pt(size.Width, 0)),
		m.TransformPoint(engine.Pt(size.Width, size.Height)),
		m.TransformPoint(engine.Pt(0, size.Height)),
	}, c)
}

// glyph draws the rune of t with the font's x/image face. It reports false
// when the font has no face or the glyph would not be drawn at the face's
// own size; the caller then fills the glyph cell.
func (r *renderer) glyph(s *scene.Sprite, t scene.GlyphTexture, c color.NRGBA) bool {
	df, ok := t.Font.(drawFacer)
	if !ok {
		return false
	}
	m := s.WorldTransform()
	if math.Abs(m.A*r.scale-1) > 1e-9 || math.Abs(m.E*r.scale-1) > 1e-9 || m.B != 0 || m.D != 0 {
		return false
	}
	face, err := df.DrawFace()
	if err != nil {
		return false
	}

	// The cell is one line tall; the baseline sits Descent above its bottom.
	lo, _ := s.WorldBounds()
	dot := r.pixel(engine.Pt(lo.X, lo.Y+t.Font.Descent()))
	d := &font.Drawer{
		Dst:  r.dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(dot.X * 64), Y: fixed.Int26_6(dot.Y * 64)},
	}
	d.DrawString(string(t.Rune))
	return true
}

func (r *renderer) polygons(d *scene.DrawNode) {
	m := d.WorldTransform()
	for _, p := range d.Polygons() {
		c := p.Fill
		c.A = uint8(uint16(c.A) * uint16(d.Opacity()) / 0xff)
		verts := make([]engine.Point, len(p.Verts))
		for i, v := range p.Verts {
			verts[i] = m.TransformPoint(v)
		}
		r.fill(verts, c)
	}
}

// fill draws a closed polygon given in world space.
func (r *renderer) fill(verts []engine.Point, c color.NRGBA) {
	if len(verts) < 3 || c.A == 0 {
		return
	}
	b := r.dst.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	p := r.pixel(verts[0])
	r.ras.MoveTo(float32(p.X), float32(p.Y))
	for _, v := range verts[1:] {
		p = r.pixel(v)
		r.ras.LineTo(float32(p.X), float32(p.Y))
	}
	r.ras.ClosePath()
	r.ras.Draw(r.dst, b, image.NewUniform(c), image.Point{})
}

// tint multiplies base by c channel by channel.
func tint(base, c color.NRGBA) color.NRGBA {
	mul := func(a, b uint8) uint8 { return uint8(uint16(a) * uint16(b) / 0xff) }
	return color.NRGBA{R: mul(base.R, c.R), G: mul(base.G, c.G), B: mul(base.B, c.B), A: mul(base.A, c.A)}
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
