package scene

import (
	"fmt"
	"image/color"

	"github.com/gogpu/richtext/engine"
)

// Sprite is a textured, tinted quad. A sprite without a texture is drawn
// as a solid rectangle of its tint.
type Sprite struct {
	*Node
	texture engine.Texture
}

// NewSprite returns a sprite described by spec. Zero scale factors mean 1,
// a zero color means white and a zero opacity means opaque.
func NewSprite(spec engine.SpriteSpec) *Sprite {
	s := &Sprite{Node: &Node{}, texture: spec.Texture}
	s.init(s)
	s.anchor = spec.Anchor
	s.size = spec.Rect
	s.position = spec.Position
	if spec.ScaleX != 0 {
		s.scaleX = spec.ScaleX
	}
	if spec.ScaleY != 0 {
		s.scaleY = spec.ScaleY
	}
	if spec.Color != (color.NRGBA{}) {
		s.SetColor(spec.Color)
	}
	if spec.Opacity != 0 {
		s.opacity = spec.Opacity
	}
	return s
}

// Texture returns the sprite's texture, nil for a solid quad.
func (s *Sprite) Texture() engine.Texture { return s.texture }

func (s *Sprite) SetTexture(t engine.Texture) { s.texture = t }

// Spec returns a description from which NewSprite rebuilds s.
func (s *Sprite) Spec() engine.SpriteSpec {
	return engine.SpriteSpec{
		Texture:  s.texture,
		Rect:     s.size,
		Anchor:   s.anchor,
		ScaleX:   s.scaleX,
		ScaleY:   s.scaleY,
		Color:    s.color,
		Opacity:  s.opacity,
		Position: s.position,
	}
}

// ImageTexture is a texture identified by its image name.
type ImageTexture string

func (t ImageTexture) ID() string { return string(t) }

// GlyphTexture is the image of one rune in a font.
type GlyphTexture struct {
	Font Font
	Rune rune
}

func (t GlyphTexture) ID() string {
	return fmt.Sprintf("%s/%U", t.Font.Name(), t.Rune)
}
