package raster_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/richtext/decor"
	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/font"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/raster"
	"github.com/gogpu/richtext/scene"
	"github.com/gogpu/richtext/scene/scenetest"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

func quad(c color.NRGBA, x, y, w, h float64) *scene.Sprite {
	return scene.NewSprite(engine.SpriteSpec{
		Rect:     engine.Size{Width: w, Height: h},
		Position: engine.Pt(x, y),
		Color:    c,
	})
}

func TestRenderEmpty(t *testing.T) {
	if _, err := raster.Render(scene.NewNode()); !errors.Is(err, raster.ErrEmptyScene) {
		t.Errorf("Render(empty) error = %v, want ErrEmptyScene", err)
	}
}

func TestRenderSize(t *testing.T) {
	root := scene.NewNode()
	root.AddChild(quad(red, 0, 0, 10, 20).Node)

	tests := []struct {
		opts []raster.Option
		w, h int
	}{
		{[]raster.Option{raster.WithMargin(0)}, 10, 20},
		{[]raster.Option{raster.WithMargin(0), raster.WithScale(2)}, 20, 40},
		{nil, 18, 28},
	}
	for _, tt := range tests {
		img, err := raster.Render(root, tt.opts...)
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
			t.Errorf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
		}
	}
}

func TestRenderFlipsY(t *testing.T) {
	root := scene.NewNode()
	root.AddChild(quad(red, 0, 0, 10, 10).Node)
	root.AddChild(quad(blue, 0, 10, 10, 10).Node)

	img, err := raster.Render(root, raster.WithMargin(0))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(5, 5); got != (color.RGBA{B: 0xff, A: 0xff}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(5, 15); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestRenderSkipsHidden(t *testing.T) {
	root := scene.NewNode()
	root.AddChild(quad(red, 0, 0, 10, 10).Node)
	hidden := quad(blue, 100, 100, 10, 10)
	hidden.SetVisible(false)
	root.AddChild(hidden.Node)

	img, err := raster.Render(root, raster.WithMargin(0))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("hidden node counted in bounds: %v", b)
	}
}

func TestRenderImageColors(t *testing.T) {
	root := scene.NewNode()
	bg := scene.NewSprite(engine.SpriteSpec{
		Texture: scene.ImageTexture("panel.png"),
		Rect:    engine.Size{Width: 10, Height: 10},
	})
	root.AddChild(bg.Node)

	img, err := raster.Render(root, raster.WithMargin(0))
	if err != nil {
		t.Fatal(err)
	}
	d := raster.DefaultImageColor
	if got := img.RGBAAt(5, 5); got != (color.RGBA{R: d.R, G: d.G, B: d.B, A: d.A}) {
		t.Errorf("default image pixel = %v", got)
	}

	img, err = raster.Render(root, raster.WithMargin(0), raster.WithImageColor("panel.png", blue))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(5, 5); got != (color.RGBA{B: 0xff, A: 0xff}) {
		t.Errorf("image pixel = %v, want blue", got)
	}
}

func TestRenderDecorations(t *testing.T) {
	p := markup.Parse("<col=#FF0000>ab</col> <u>cd</u>")
	b := scenetest.Block(p.Text, 0)
	decor.Apply(b, p)

	img, err := raster.Render(b.Node, raster.WithMargin(0), raster.WithBackground(black))
	if err != nil {
		t.Fatal(err)
	}
	// Glyph cells fill rows 0-19; the underline covers a quarter of row 20.
	if b := img.Bounds(); b.Dy() != 21 {
		t.Fatalf("image height = %d, want 21", b.Dy())
	}
	if got := img.RGBAAt(4, 10); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("tinted glyph pixel = %v, want red", got)
	}
	if got := img.RGBAAt(30, 20); got.R == 0 || got.R == 0xff {
		t.Errorf("underline pixel = %v, want partial coverage", got)
	}
	if got := img.RGBAAt(4, 20); got != black {
		t.Errorf("pixel under plain text = %v, want background", got)
	}
}

func TestRenderGlyphsWithFace(t *testing.T) {
	fam, err := font.DefaultFamily(16)
	if err != nil {
		t.Fatal(err)
	}
	face := fam.Face(engine.VariantRegular)
	l := scene.NewLabel("H", engine.VariantRegular, face)

	img, err := raster.Render(l.Node, raster.WithMargin(0), raster.WithBackground(black))
	if err != nil {
		t.Fatal(err)
	}
	lit, total := 0, 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			total++
			if img.RGBAAt(x, y) != black {
				lit++
			}
		}
	}
	if lit == 0 || lit == total {
		t.Errorf("%d of %d pixels lit, want the glyph shape", lit, total)
	}
}

func TestEncodePNG(t *testing.T) {
	root := scene.NewNode()
	root.AddChild(quad(red, 0, 0, 6, 4).Node)
	img, err := raster.Render(root, raster.WithMargin(0))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	back, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.Bounds() != image.Rect(0, 0, 6, 4) {
		t.Errorf("decoded bounds = %v", back.Bounds())
	}
}
