package richtext

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/font"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/scene"
)

// ButtonColor is a button background.
type ButtonColor int

const (
	ButtonGreen ButtonColor = iota
	ButtonCyan
	ButtonPink
	ButtonGray
	ButtonDarkGray
	ButtonRed
)

// Image returns the background image of c. Unknown colors are green.
func (c ButtonColor) Image() string {
	switch c {
	case ButtonCyan:
		return "GJ_button_02.png"
	case ButtonPink:
		return "GJ_button_03.png"
	case ButtonGray:
		return "GJ_button_04.png"
	case ButtonDarkGray:
		return "GJ_button_05.png"
	case ButtonRed:
		return "GJ_button_06.png"
	default:
		return "GJ_button_01.png"
	}
}

// InfoPosition is the dialog corner an info button sits in.
type InfoPosition int

const (
	InfoTopLeft InfoPosition = iota
	InfoTopRight
	InfoBottomLeft
	InfoBottomRight
)

// Info button.
const (
	InfoButtonID = "info-button"
	InfoIcon     = "GJ_infoIcon_001.png"
	InfoIconSize = 30
	infoInset    = 25 // dialog edge to icon center
)

// Alert is a dialog showing styled markup text.
type Alert struct {
	base     Base
	parsed   *markup.ParsedText
	block    *scene.TextBlock
	links    []engine.Clickable
	opener   engine.URLOpener
	delegate func(*Alert, ButtonID)
	popup    *Alert
}

// New builds an alert titled title whose text is the markup text, with a
// primary button labeled primary.
//
// The markup is normalized to NFC, unless WithNormalize(false) is given,
// and then parsed; span offsets count runes of the normalized text, so a
// decomposed "e\u0301" is one character. Malformed markup never fails: see
// markup.Parse. New returns an error wrapping ErrBaseInit only when the
// fonts or the dialog base cannot be built. A base without a text area, or
// a text area without a text block, yields an alert whose text is plain.
func New(title, text, primary string, opts ...Option) (*Alert, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.normalize {
		text = norm.NFC.String(text)
	}
	parsed := markup.Parse(text)
	Logger().Debug("richtext: parsed",
		"runes", parsed.Len(), "warnings", len(parsed.Warnings), "decorated", parsed.HasDecorations())

	fam := o.family
	if fam == nil {
		var err error
		fam, err = font.DefaultFamily(o.fontSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBaseInit, err)
		}
	}

	a := &Alert{parsed: parsed, opener: o.opener, delegate: o.delegate}
	base, err := o.base(BaseConfig{
		Title:     title,
		Text:      parsed.Text,
		Primary:   primary,
		Secondary: o.secondary,
		Width:     o.width,
		Height:    o.height,
		Scroll:    o.scroll,
		TextScale: o.textScale,
		Fonts:     FontSet(fam),
		URLOpener: engine.URLOpenerFunc(a.OpenURL),
		OnButton:  a.onButton,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBaseInit, err)
	}
	if base == nil || base.Root() == nil {
		return nil, fmt.Errorf("%w: base has no root node", ErrBaseInit)
	}
	a.base = base

	area := base.TextArea()
	if area == nil {
		Logger().Debug("richtext: no text area, text left plain")
		return a, nil
	}
	a.block = textBlockIn(area)
	if a.block == nil {
		Logger().Debug("richtext: no text block in text area, text left plain")
		return a, nil
	}
	a.block.SetURLOpener(engine.URLOpenerFunc(a.OpenURL))
	a.links = o.pipeline.Apply(a.block, parsed)
	return a, nil
}

// textBlockIn returns the first TextBlock child of area.
func textBlockIn(area *scene.Node) *scene.TextBlock {
	for _, c := range area.Children() {
		if b, ok := c.Owner().(*scene.TextBlock); ok {
			return b
		}
	}
	return nil
}

// Base returns the dialog base.
func (a *Alert) Base() Base { return a.base }

// Root returns the node Show adds to the scene.
func (a *Alert) Root() *scene.Node { return a.base.Root() }

// Parsed returns the parsed markup.
func (a *Alert) Parsed() *markup.ParsedText { return a.parsed }

// TextBlock returns the styled text block, or nil when the text was left
// plain.
func (a *Alert) TextBlock() *scene.TextBlock { return a.block }

// Links returns the link regions, in link order.
func (a *Alert) Links() []engine.Clickable { return a.links }

// Show adds the alert to parent.
func (a *Alert) Show(parent *scene.Node) {
	if parent == nil {
		return
	}
	parent.AddChild(a.Root())
}

// Close removes the alert from its parent.
func (a *Alert) Close() {
	a.Root().RemoveFromParent()
}

// Shown reports whether the alert is in a scene.
func (a *Alert) Shown() bool {
	return a.Root().Parent() != nil
}

func (a *Alert) onButton(id ButtonID) {
	if a.delegate != nil {
		a.delegate(a, id)
	}
	a.Close()
}

// SetButtonColor sets the background of a button. It does nothing when
// the dialog has no such button.
func (a *Alert) SetButtonColor(id ButtonID, c ButtonColor) {
	b := a.base.Button(id)
	if b == nil {
		return
	}
	b.SetImage(c.Image())
}

// AddInfoButton puts an info icon in a corner of the dialog, moved by
// offset, and chains popup to it: clicking the icon shows popup. A second
// call replaces the first icon. A scale <= 0 means 1.
func (a *Alert) AddInfoButton(popup *Alert, pos InfoPosition, scale float64, offset engine.Point) *scene.MenuItem {
	a.SetPopup(popup)
	if scale <= 0 {
		scale = 1
	}

	menu := a.base.ButtonMenu()
	if old := menu.ChildByID(InfoButtonID); old != nil {
		menu.RemoveChild(old)
	}

	side := InfoIconSize * scale
	content := scene.NewNode()
	content.SetContentSize(engine.Size{Width: side, Height: side})
	icon := scene.NewSprite(engine.SpriteSpec{
		Texture:  scene.ImageTexture(InfoIcon),
		Rect:     engine.Size{Width: InfoIconSize, Height: InfoIconSize},
		Anchor:   engine.Pt(0.5, 0.5),
		ScaleX:   scale,
		ScaleY:   scale,
		Position: engine.Pt(side/2, side/2),
	})
	content.AddChild(icon.Node)

	it := scene.NewMenuItem(content, func(*scene.MenuItem) { a.OpenInfo() })
	it.SetID(InfoButtonID)
	it.SetAnchorPoint(engine.Pt(0.5, 0.5))

	size := a.base.Background().ContentSize()
	x := size.Width/2 - infoInset
	if pos == InfoTopLeft || pos == InfoBottomLeft {
		x = -x
	}
	// The menu sits buttonMenuY below the dialog center.
	y := size.Height/2 - buttonMenuY - infoInset
	if pos == InfoBottomLeft || pos == InfoBottomRight {
		y = -size.Height/2 - buttonMenuY + infoInset
	}
	it.SetPosition(engine.Pt(x+offset.X, y+offset.Y))
	menu.AddItem(it)
	return it
}

// SetPopup chains popup without adding an info button.
func (a *Alert) SetPopup(popup *Alert) { a.popup = popup }

// Popup returns the chained popup, or nil.
func (a *Alert) Popup() *Alert { return a.popup }

// OpenInfo shows the chained popup next to the alert. It does nothing
// without a popup or while the alert is not shown.
func (a *Alert) OpenInfo() {
	if a.popup == nil {
		return
	}
	parent := a.Root().Parent()
	if parent == nil {
		Logger().Debug("richtext: info requested on a hidden alert")
		return
	}
	a.popup.Show(parent)
}

// OpenURL passes url to the alert's URL opener.
func (a *Alert) OpenURL(url string) error {
	if a.opener == nil {
		Logger().Debug("richtext: no URL opener", "url", url)
		return nil
	}
	if err := a.opener.OpenURL(url); err != nil {
		return fmt.Errorf("richtext: open %q: %w", url, err)
	}
	return nil
}

// Click activates the link or button under a world point and reports
// whether there was one. Links are above the buttons.
func (a *Alert) Click(world engine.Point) bool {
	if a.block != nil && a.block.Click(world) {
		return true
	}
	return a.base.ButtonMenu().Click(world)
}
