package richtext

import (
	"fmt"

	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/scene"
)

// Node IDs of the default dialog.
const (
	MainLayerID  = "main-layer"
	BackgroundID = "background"
	TitleID      = "title"
	TextAreaID   = "content-text-area"
	TextBlockID  = "content-text"
	ButtonMenuID = "button-menu"
)

// DefaultBackground is the image of the dialog background.
const DefaultBackground = "GJ_square01.png"

// Dialog geometry.
const (
	chromeTop    = 45 // title band above the text area
	chromeBottom = 55 // button band below the text area
	textMargin   = 60 // horizontal space around the text area
	titleInset   = 22 // dialog top to title center
	buttonMenuY  = -40
	buttonInset  = 25 // dialog bottom to button center
	buttonHeight = 30
	buttonPad    = 12 // label to button edge
	buttonGap    = 15
)

// Base is the dialog an Alert decorates. TextArea may return nil, and
// Button returns nil for a button the dialog does not have.
type Base interface {
	// Root is the node added to the scene on Show.
	Root() *scene.Node
	// Background is the node whose size is the dialog size.
	Background() *scene.Node
	TextArea() *scene.Node
	ButtonMenu() *scene.Menu
	Button(id ButtonID) *Button
}

// BaseConfig is what New passes to a BaseFunc.
type BaseConfig struct {
	Title     string
	Text      string
	Primary   string
	Secondary string
	Width     float64
	Height    float64
	Scroll    bool
	TextScale float64
	Fonts     scene.FontSet
	URLOpener engine.URLOpener
	// OnButton is called when the primary or secondary button is clicked.
	OnButton func(ButtonID)
}

// BaseFunc builds the dialog base of an Alert.
type BaseFunc func(cfg BaseConfig) (Base, error)

// ButtonID identifies a dialog button.
type ButtonID int

const (
	Primary ButtonID = iota
	Secondary
)

// String returns the node ID of the button.
func (id ButtonID) String() string {
	switch id {
	case Primary:
		return "button-1"
	case Secondary:
		return "button-2"
	default:
		return fmt.Sprintf("button-%d", int(id)+1)
	}
}

// Button is a dialog button: a background image under a label.
type Button struct {
	*scene.MenuItem
	id    ButtonID
	bg    *scene.Sprite
	label *scene.Label
}

func newButton(id ButtonID, text string, font scene.Font, onClick func(ButtonID)) *Button {
	label := scene.NewLabel(text, engine.VariantBold, font)
	size := engine.Size{Width: label.ContentSize().Width + 2*buttonPad, Height: buttonHeight}

	content := scene.NewNode()
	content.SetContentSize(size)
	bg := scene.NewSprite(engine.SpriteSpec{
		Texture: scene.ImageTexture(ButtonGreen.Image()),
		Rect:    size,
	})
	content.AddChild(bg.Node)
	label.SetPosition(engine.Pt(size.Width/2, size.Height/2))
	content.AddChild(label.Node)

	b := &Button{id: id, bg: bg, label: label}
	b.MenuItem = scene.NewMenuItem(content, func(*scene.MenuItem) {
		if onClick != nil {
			onClick(id)
		}
	})
	b.SetID(id.String())
	b.SetAnchorPoint(engine.Pt(0.5, 0.5))
	return b
}

// ButtonID returns which button b is.
func (b *Button) ButtonID() ButtonID { return b.id }

// Label returns the button text.
func (b *Button) Label() *scene.Label { return b.label }

// Image returns the background image name.
func (b *Button) Image() string { return b.bg.Texture().ID() }

// SetImage replaces the background image.
func (b *Button) SetImage(name string) {
	b.bg.SetTexture(scene.ImageTexture(name))
}

// Dialog is the default Base: a background, a title, a text area holding
// a centered TextBlock, and a row of one or two buttons. The dialog is
// centered on its root node.
type Dialog struct {
	root    *scene.Node
	bg      *scene.Sprite
	title   *scene.Label
	area    *scene.Node
	block   *scene.TextBlock
	menu    *scene.Menu
	buttons [2]*Button

	height float64
	scroll bool
	offset float64
}

// NewDialog builds the default dialog. Without scrolling the dialog grows
// taller than cfg.Height when the text needs it; with scrolling the text
// area keeps its height and Scroll moves the text through it.
func NewDialog(cfg BaseConfig) (*Dialog, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if cfg.Fonts[engine.VariantRegular] == nil {
		return nil, ErrNoFont
	}
	scale := cfg.TextScale
	if scale <= 0 {
		scale = 1
	}

	d := &Dialog{root: scene.NewNode(), scroll: cfg.Scroll}
	d.root.SetID(MainLayerID)

	d.block = scene.NewTextBlock(cfg.Text, cfg.Fonts, cfg.Width-textMargin,
		scene.WithAlignment(scene.AlignCenter), scene.WithURLOpener(cfg.URLOpener))
	d.block.SetID(TextBlockID)
	d.block.SetScale(scale)
	textHeight := d.block.ContentSize().Height * scale

	d.height = cfg.Height
	if !cfg.Scroll {
		d.height = max(d.height, textHeight+chromeTop+chromeBottom)
	}

	d.bg = scene.NewSprite(engine.SpriteSpec{
		Texture: scene.ImageTexture(DefaultBackground),
		Rect:    engine.Size{Width: cfg.Width, Height: d.height},
		Anchor:  engine.Pt(0.5, 0.5),
	})
	d.bg.SetID(BackgroundID)
	d.root.AddChild(d.bg.Node)

	d.title = scene.NewLabel(cfg.Title, engine.VariantBold, cfg.Fonts.Get(engine.VariantBold))
	d.title.SetID(TitleID)
	d.title.SetPosition(engine.Pt(0, d.height/2-titleInset))
	d.root.AddChild(d.title.Node)

	d.area = scene.NewNode()
	d.area.SetID(TextAreaID)
	d.area.SetAnchorPoint(engine.Pt(0.5, 0.5))
	d.area.SetContentSize(engine.Size{
		Width:  cfg.Width - textMargin,
		Height: max(0, d.height-chromeTop-chromeBottom),
	})
	d.area.SetPosition(engine.Pt(0, (chromeBottom-chromeTop)/2))
	d.area.AddChild(d.block.Node)
	d.root.AddChild(d.area)
	d.placeText()

	d.menu = scene.NewMenu()
	d.menu.SetID(ButtonMenuID)
	d.menu.SetPosition(engine.Pt(0, buttonMenuY))
	d.root.AddChild(d.menu.Node)

	font := cfg.Fonts.Get(engine.VariantBold)
	d.buttons[Primary] = newButton(Primary, cfg.Primary, font, cfg.OnButton)
	if cfg.Secondary != "" {
		d.buttons[Secondary] = newButton(Secondary, cfg.Secondary, font, cfg.OnButton)
	}
	d.placeButtons(cfg.Width)
	return d, nil
}

// placeButtons centers the buttons in a row near the bottom edge.
func (d *Dialog) placeButtons(width float64) {
	y := -d.height/2 + buttonInset - buttonMenuY
	first, second := d.buttons[Primary], d.buttons[Secondary]
	if second == nil {
		first.SetPosition(engine.Pt(0, y))
		d.menu.AddItem(first.MenuItem)
		return
	}
	w1, w2 := first.ContentSize().Width, second.ContentSize().Width
	total := w1 + buttonGap + w2
	if total > width {
		Logger().Debug("richtext: buttons wider than dialog", "buttons", total, "width", width)
	}
	first.SetPosition(engine.Pt(-total/2+w1/2, y))
	second.SetPosition(engine.Pt(total/2-w2/2, y))
	d.menu.AddItem(first.MenuItem)
	d.menu.AddItem(second.MenuItem)
}

// placeText puts the top of the text at the top of the area, moved up by
// the scroll offset, or centers it when it fits.
func (d *Dialog) placeText() {
	area := d.area.ContentSize()
	_, sy := d.block.Scale()
	h := d.block.ContentSize().Height * sy
	y := area.Height / 2
	if h > area.Height {
		y = area.Height - h/2 + d.offset
	}
	d.block.SetPosition(engine.Pt(area.Width/2, y))
}

// Root implements Base.
func (d *Dialog) Root() *scene.Node { return d.root }

// Background implements Base.
func (d *Dialog) Background() *scene.Node { return d.bg.Node }

// TextArea implements Base.
func (d *Dialog) TextArea() *scene.Node { return d.area }

// ButtonMenu implements Base.
func (d *Dialog) ButtonMenu() *scene.Menu { return d.menu }

// Button implements Base.
func (d *Dialog) Button(id ButtonID) *Button {
	if id < 0 || int(id) >= len(d.buttons) {
		return nil
	}
	return d.buttons[id]
}

// Title returns the title label.
func (d *Dialog) Title() *scene.Label { return d.title }

// TextBlock returns the block holding the dialog text.
func (d *Dialog) TextBlock() *scene.TextBlock { return d.block }

// Height returns the dialog height after growing to fit the text.
func (d *Dialog) Height() float64 { return d.height }

// MaxScroll returns how far the text can scroll, 0 when it fits.
func (d *Dialog) MaxScroll() float64 {
	_, sy := d.block.Scale()
	return max(0, d.block.ContentSize().Height*sy-d.area.ContentSize().Height)
}

// ScrollOffset returns how far the text is scrolled up.
func (d *Dialog) ScrollOffset() float64 { return d.offset }

// Scroll moves the text up by dy, clamped to [0, MaxScroll]. It does
// nothing for a dialog built without scrolling.
func (d *Dialog) Scroll(dy float64) {
	if !d.scroll {
		return
	}
	d.offset = min(max(d.offset+dy, 0), d.MaxScroll())
	d.placeText()
}

// DefaultBase is the BaseFunc New uses unless WithBase replaces it.
func DefaultBase(cfg BaseConfig) (Base, error) {
	d, err := NewDialog(cfg)
	if err != nil {
		return nil, err
	}
	return d, nil
}
