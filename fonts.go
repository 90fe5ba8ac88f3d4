package richtext

import (
	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/font"
	"github.com/gogpu/richtext/scene"
)

// FontSet returns the faces of fam as a scene font set.
func FontSet(fam *font.Family) scene.FontSet {
	var fs scene.FontSet
	if fam == nil {
		return fs
	}
	for v := range engine.NumVariants {
		fs[v] = fam.Face(engine.Variant(v))
	}
	return fs
}
