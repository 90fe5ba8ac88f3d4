package scene

import (
	"fmt"
	"io"
	"strings"
)

// DumpOptions controls Dump.
type DumpOptions struct {
	// Glyphs includes the glyph sprites of labels.
	Glyphs bool
	// Hidden includes invisible nodes.
	Hidden bool
}

// Dump writes the subtree rooted at n, one node per line, indented by
// depth.
func Dump(w io.Writer, n *Node, opts DumpOptions) error {
	var err error
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		if err != nil || !n.visible && !opts.Hidden {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), Describe(n))
		if _, isLabel := n.owner.(*Label); isLabel && !opts.Glyphs {
			return
		}
		for _, c := range n.children {
			visit(c, depth+1)
		}
	}
	visit(n, 0)
	return err
}

// Describe returns a one-line description of n.
func Describe(n *Node) string {
	var sb strings.Builder
	switch o := n.owner.(type) {
	case *Label:
		fmt.Fprintf(&sb, "Label %q %s", o.text, o.variant)
	case *Sprite:
		sb.WriteString("Sprite")
		switch t := o.texture.(type) {
		case nil:
		case GlyphTexture:
			fmt.Fprintf(&sb, " %q", t.Rune)
		default:
			fmt.Fprintf(&sb, " %s", t.ID())
		}
	case *DrawNode:
		fmt.Fprintf(&sb, "DrawNode polygons=%d", len(o.polygons))
	case *MenuItem:
		sb.WriteString("MenuItem")
		if o.payload != "" {
			fmt.Fprintf(&sb, " %q", o.payload)
		}
	case *Menu:
		sb.WriteString("Menu")
	case *TextBlock:
		sb.WriteString("TextBlock")
	default:
		sb.WriteString("Node")
	}
	if n.id != "" {
		fmt.Fprintf(&sb, " #%s", n.id)
	}
	fmt.Fprintf(&sb, " pos=(%.4g,%.4g) size=(%.4gx%.4g)",
		n.position.X, n.position.Y, n.size.Width, n.size.Height)
	if n.anchor.X != 0 || n.anchor.Y != 0 {
		fmt.Fprintf(&sb, " anchor=(%.4g,%.4g)", n.anchor.X, n.anchor.Y)
	}
	if n.scaleX != 1 || n.scaleY != 1 {
		fmt.Fprintf(&sb, " scale=(%.4g,%.4g)", n.scaleX, n.scaleY)
	}
	if n.color != White {
		fmt.Fprintf(&sb, " color=#%02x%02x%02x", n.color.R, n.color.G, n.color.B)
	}
	if n.opacity != 0xff {
		fmt.Fprintf(&sb, " opacity=%d", n.opacity)
	}
	if !n.visible {
		sb.WriteString(" hidden")
	}
	return sb.String()
}
