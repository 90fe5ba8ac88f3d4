package scene

import (
	"strings"
	"unicode"

	"github.com/gogpu/richtext/engine"
)

// LinkMenuID is the ID of the menu holding a block's link regions.
const LinkMenuID = "link-menu"

// Alignment is the horizontal alignment of lines in a TextBlock.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// BlockOption configures a TextBlock.
type BlockOption func(*TextBlock)

// WithAlignment sets the line alignment. The default is AlignLeft.
func WithAlignment(a Alignment) BlockOption {
	return func(b *TextBlock) { b.align = a }
}

// WithLineSpacing adds extra space between lines.
func WithLineSpacing(s float64) BlockOption {
	return func(b *TextBlock) { b.lineSpacing = s }
}

// WithURLOpener sets the opener activated links are passed to.
func WithURLOpener(o engine.URLOpener) BlockOption {
	return func(b *TextBlock) { b.opener = o }
}

// TextBlock is multi-line text wrapped at a width, one Label per line.
// Each line keeps its trailing white space and newline, so the labels'
// characters, in child order, spell the block text exactly.
// TextBlock implements engine.TextBlock.
type TextBlock struct {
	*Node
	fonts       FontSet
	width       float64
	align       Alignment
	lineSpacing float64
	opener      engine.URLOpener
	links       *Menu
}

// NewTextBlock lays out text with the regular font of fonts, wrapping
// lines at width. A width <= 0 disables wrapping. The block is anchored at
// its center.
func NewTextBlock(text string, fonts FontSet, width float64, opts ...BlockOption) *TextBlock {
	b := &TextBlock{Node: &Node{}, fonts: fonts, width: width}
	b.init(b)
	b.anchor = engine.Pt(0.5, 0.5)
	for _, opt := range opts {
		opt(b)
	}
	b.SetText(text)
	return b
}

// SetText discards every child and lays out text again.
func (b *TextBlock) SetText(text string) {
	b.RemoveAllChildren()
	b.links = nil

	font := b.fonts.Get(engine.VariantRegular)
	lines := wrapLines(text, b.width, font.RuneAdvance)
	step := font.LineHeight() + b.lineSpacing

	labels := make([]*Label, len(lines))
	widest := 0.0
	for i, line := range lines {
		labels[i] = NewLabel(line, engine.VariantRegular, font)
		widest = max(widest, inkWidth(line, font))
	}
	blockWidth := b.width
	if blockWidth <= 0 {
		blockWidth = widest
	}

	n := len(lines)
	for i, l := range labels {
		x := 0.0
		switch b.align {
		case AlignCenter:
			x = (blockWidth - inkWidth(l.text, font)) / 2
		case AlignRight:
			x = blockWidth - inkWidth(l.text, font)
		}
		l.SetAnchorPoint(engine.Point{})
		l.SetPosition(engine.Pt(x, float64(n-1-i)*step))
		b.AddChild(l.Node)
	}
	height := 0.0
	if n > 0 {
		height = float64(n-1)*step + font.LineHeight()
	}
	b.size = engine.Size{Width: blockWidth, Height: height}
}

// inkWidth is the advance of line without trailing white space.
func inkWidth(line string, font Font) float64 {
	w := 0.0
	for _, r := range strings.TrimRightFunc(line, unicode.IsSpace) {
		w += font.RuneAdvance(r)
	}
	return w
}

// Text returns the characters of the fragments, in order.
func (b *TextBlock) Text() string {
	var sb strings.Builder
	for _, l := range b.Labels() {
		sb.WriteString(l.text)
	}
	return sb.String()
}

// Fonts returns the fonts of the block.
func (b *TextBlock) Fonts() FontSet { return b.fonts }

// Labels returns the line labels in child order.
func (b *TextBlock) Labels() []*Label {
	var out []*Label
	for _, c := range b.children {
		if l, ok := c.owner.(*Label); ok {
			out = append(out, l)
		}
	}
	return out
}

// Fragments implements engine.TextBlock.
func (b *TextBlock) Fragments() []engine.Fragment {
	labels := b.Labels()
	out := make([]engine.Fragment, len(labels))
	for i, l := range labels {
		out[i] = l
	}
	return out
}

// RemoveFragment implements engine.TextBlock.
func (b *TextBlock) RemoveFragment(f engine.Fragment) {
	if l, ok := f.(*Label); ok {
		b.RemoveChild(l.Node)
	}
}

// AddFragment implements engine.TextBlock.
func (b *TextBlock) AddFragment(text string, v engine.Variant, pos engine.Point) engine.Fragment {
	l := NewLabel(text, v, b.fonts.Get(v))
	l.SetAnchorPoint(engine.Point{})
	l.SetPosition(pos)
	b.AddChild(l.Node)
	return l
}

// ToNodeSpace implements engine.TextBlock.
func (b *TextBlock) ToNodeSpace(world engine.Point) engine.Point {
	return b.ConvertToNodeSpace(world)
}

// ResetLayer implements engine.TextBlock.
func (b *TextBlock) ResetLayer(id string) engine.Layer {
	if old := b.ChildByID(id); old != nil {
		b.RemoveChild(old)
	}
	d := NewDrawNode()
	d.SetID(id)
	b.AddChild(d.Node)
	return d
}

// Layer returns the draw node registered under id, or nil.
func (b *TextBlock) Layer(id string) *DrawNode {
	if c := b.ChildByID(id); c != nil {
		if d, ok := c.owner.(*DrawNode); ok {
			return d
		}
	}
	return nil
}

// LinkMenu returns the menu of link regions, nil before the first link.
func (b *TextBlock) LinkMenu() *Menu { return b.links }

// ResetLinks implements engine.TextBlock.
func (b *TextBlock) ResetLinks() {
	if b.links != nil {
		b.links.RemoveAllChildren()
	}
}

// NewLinkWrapper implements engine.TextBlock.
func (b *TextBlock) NewLinkWrapper() engine.LinkWrapper {
	return NewNode()
}

// AddLink implements engine.TextBlock.
func (b *TextBlock) AddLink(w engine.LinkWrapper, url string) engine.Clickable {
	content, ok := w.(*Node)
	if !ok {
		slogger().Warn("scene: link wrapper is not a scene node", "url", url)
		content = NewNode()
	}
	if b.links == nil {
		b.links = NewMenu()
		b.links.SetID(LinkMenuID)
		b.AddChild(b.links.Node)
	}
	it := NewMenuItem(content, b.openLink)
	it.SetPayload(url)
	b.links.AddItem(it)
	return it
}

// SetURLOpener sets the opener activated links are passed to.
func (b *TextBlock) SetURLOpener(o engine.URLOpener) { b.opener = o }

// Click activates the link under a world point.
func (b *TextBlock) Click(world engine.Point) bool {
	if b.links == nil {
		return false
	}
	return b.links.Click(world)
}

func (b *TextBlock) openLink(it *MenuItem) {
	url := it.Payload()
	if b.opener == nil {
		slogger().Debug("scene: no URL opener", "url", url)
		return
	}
	if err := b.opener.OpenURL(url); err != nil {
		slogger().Warn("scene: open URL failed", "url", url, "error", err)
	}
}
