package richtext_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/scene"
	"github.com/gogpu/richtext/scene/scenetest"
)

// monoBase is the default dialog with the monospaced test fonts.
func monoBase(cfg richtext.BaseConfig) (richtext.Base, error) {
	cfg.Fonts = scenetest.Fonts()
	return richtext.NewDialog(cfg)
}

func newAlert(t *testing.T, text string, opts ...richtext.Option) *richtext.Alert {
	t.Helper()
	opts = append([]richtext.Option{richtext.WithBase(monoBase)}, opts...)
	a, err := richtext.New("Title", text, "OK", opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

type recorder struct {
	urls []string
	err  error
}

func (r *recorder) OpenURL(url string) error {
	r.urls = append(r.urls, url)
	return r.err
}

func TestNewWithGoFonts(t *testing.T) {
	a, err := richtext.New("Notice", "Read <b>this</b> first.", "OK")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b := a.TextBlock()
	if b == nil {
		t.Fatal("alert has no text block")
	}
	if b.Text() != "Read this first." {
		t.Errorf("block text = %q", b.Text())
	}
	found := false
	for _, l := range b.Labels() {
		if l.String() == "this" && l.Variant() == engine.VariantBold {
			found = true
		}
	}
	if !found {
		t.Error("no bold fragment for the bold span")
	}
}

func TestNewNormalizesMarkup(t *testing.T) {
	a := newAlert(t, "caf<u>e\u0301</u>")
	if got := a.Parsed().Text; got != "caf\u00e9" {
		t.Errorf("parsed text = %q, want NFC form", got)
	}
	if got := a.Parsed().Underlines[0].Span; got.Start != 3 || got.End != 4 {
		t.Errorf("underline span = %+v, want [3,4)", got)
	}
}

func TestNewWithoutNormalize(t *testing.T) {
	const raw = "caf<u>e\u0301</u>"
	a := newAlert(t, raw, richtext.WithNormalize(false))
	want := markup.Parse(raw)
	if got := a.Parsed(); got.Text != want.Text || got.Underlines[0] != want.Underlines[0] {
		t.Errorf("parsed = %q %+v, want %q %+v", got.Text, got.Underlines, want.Text, want.Underlines)
	}
	if got := a.Parsed().Underlines[0].Span; got.Start != 3 || got.End != 5 {
		t.Errorf("underline span = %+v, want [3,5)", got)
	}
}

func TestNewBaseErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := richtext.New("t", "x", "OK", richtext.WithBase(func(richtext.BaseConfig) (richtext.Base, error) {
		return nil, boom
	}))
	if !errors.Is(err, richtext.ErrBaseInit) || !errors.Is(err, boom) {
		t.Errorf("err = %v, want ErrBaseInit wrapping the base error", err)
	}

	_, err = richtext.New("t", "x", "OK", richtext.WithWidth(0))
	if !errors.Is(err, richtext.ErrBaseInit) || !errors.Is(err, richtext.ErrInvalidSize) {
		t.Errorf("err = %v, want ErrBaseInit wrapping ErrInvalidSize", err)
	}
}

type bareBase struct {
	root *scene.Node
	area *scene.Node
	menu *scene.Menu
}

func newBareBase(area *scene.Node) bareBase {
	b := bareBase{root: scene.NewNode(), area: area, menu: scene.NewMenu()}
	b.root.AddChild(b.menu.Node)
	if area != nil {
		b.root.AddChild(area)
	}
	return b
}

func (b bareBase) Root() *scene.Node                        { return b.root }
func (b bareBase) Background() *scene.Node                  { return b.root }
func (b bareBase) TextArea() *scene.Node                    { return b.area }
func (b bareBase) ButtonMenu() *scene.Menu                  { return b.menu }
func (b bareBase) Button(richtext.ButtonID) *richtext.Button { return nil }

func TestNewDegrades(t *testing.T) {
	tests := []struct {
		name string
		area *scene.Node
	}{
		{"no text area", nil},
		{"no text block", scene.NewNode()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := newBareBase(tt.area)
			a, err := richtext.New("t", "<b>bold</b>", "OK", richtext.WithBase(func(richtext.BaseConfig) (richtext.Base, error) {
				return base, nil
			}))
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if a.TextBlock() != nil || len(a.Links()) != 0 {
				t.Error("degraded alert should not be styled")
			}
			if a.Parsed().Text != "bold" {
				t.Errorf("parsed text = %q", a.Parsed().Text)
			}
			a.SetButtonColor(richtext.Primary, richtext.ButtonRed)
		})
	}
}

func TestButtons(t *testing.T) {
	a := newAlert(t, "Hello", richtext.WithSecondaryButton("Cancel"))
	first, second := a.Base().Button(richtext.Primary), a.Base().Button(richtext.Secondary)
	if first == nil || second == nil {
		t.Fatal("missing buttons")
	}
	if first.ID() != "button-1" || second.ID() != "button-2" {
		t.Errorf("button ids = %q, %q", first.ID(), second.ID())
	}
	// "OK" is 44 wide and "Cancel" 84 with their padding; the row is
	// centered with a 15 gap.
	if first.Position() != engine.Pt(-49.5, -5) || second.Position() != engine.Pt(29.5, -5) {
		t.Errorf("button positions = %v, %v", first.Position(), second.Position())
	}

	if first.Image() != "GJ_button_01.png" {
		t.Errorf("default image = %q", first.Image())
	}
	a.SetButtonColor(richtext.Secondary, richtext.ButtonRed)
	if second.Image() != "GJ_button_06.png" || first.Image() != "GJ_button_01.png" {
		t.Errorf("images after SetButtonColor = %q, %q", first.Image(), second.Image())
	}
}

func TestButtonColorImages(t *testing.T) {
	want := map[richtext.ButtonColor]string{
		richtext.ButtonGreen:     "GJ_button_01.png",
		richtext.ButtonCyan:      "GJ_button_02.png",
		richtext.ButtonPink:      "GJ_button_03.png",
		richtext.ButtonGray:      "GJ_button_04.png",
		richtext.ButtonDarkGray:  "GJ_button_05.png",
		richtext.ButtonRed:       "GJ_button_06.png",
		richtext.ButtonColor(99): "GJ_button_01.png",
	}
	for c, img := range want {
		if got := c.Image(); got != img {
			t.Errorf("ButtonColor(%d).Image() = %q, want %q", c, got, img)
		}
	}
}

func TestButtonClickCloses(t *testing.T) {
	var clicked []richtext.ButtonID
	a := newAlert(t, "Hello", richtext.WithDelegate(func(_ *richtext.Alert, id richtext.ButtonID) {
		clicked = append(clicked, id)
	}))
	parent := scene.NewNode()
	a.Show(parent)
	if !a.Shown() {
		t.Fatal("alert not shown")
	}
	if !a.Click(engine.Pt(0, -45)) {
		t.Fatal("click on the primary button missed")
	}
	if len(clicked) != 1 || clicked[0] != richtext.Primary {
		t.Errorf("delegate saw %v", clicked)
	}
	if a.Shown() {
		t.Error("alert still shown after its button was clicked")
	}
}

func TestInfoButton(t *testing.T) {
	tests := []struct {
		pos    richtext.InfoPosition
		offset engine.Point
		want   engine.Point
	}{
		{richtext.InfoTopLeft, engine.Point{}, engine.Pt(-125, 85)},
		{richtext.InfoTopRight, engine.Point{}, engine.Pt(125, 85)},
		{richtext.InfoBottomLeft, engine.Point{}, engine.Pt(-125, -5)},
		{richtext.InfoBottomRight, engine.Pt(1, 2), engine.Pt(126, -3)},
	}
	for _, tt := range tests {
		a := newAlert(t, "Hello")
		it := a.AddInfoButton(nil, tt.pos, 1, tt.offset)
		if it.ID() != richtext.InfoButtonID || it.Position() != tt.want {
			t.Errorf("info button %d at %v, want %v", tt.pos, it.Position(), tt.want)
		}
	}
}

func TestInfoButtonOpensPopup(t *testing.T) {
	a := newAlert(t, "Hello")
	popup := newAlert(t, "More")
	a.AddInfoButton(popup, richtext.InfoTopLeft, 0.5, engine.Point{})
	a.AddInfoButton(popup, richtext.InfoTopLeft, 1, engine.Point{})

	n := 0
	for _, c := range a.Base().ButtonMenu().Children() {
		if c.ID() == richtext.InfoButtonID {
			n++
		}
	}
	if n != 1 {
		t.Errorf("%d info buttons, want 1", n)
	}

	a.OpenInfo()
	if popup.Shown() {
		t.Error("popup shown for a hidden alert")
	}

	parent := scene.NewNode()
	a.Show(parent)
	// The icon is centered 25 in from the top-left corner.
	if !a.Click(engine.Pt(-125, 45)) {
		t.Fatal("click on the info button missed")
	}
	if !popup.Shown() || popup.Root().Parent() != parent {
		t.Error("popup not shown next to the alert")
	}
	if a.Popup() != popup {
		t.Error("Popup() lost the chained alert")
	}
}

func TestSetPopup(t *testing.T) {
	a := newAlert(t, "Hello")
	popup := newAlert(t, "More")
	a.SetPopup(popup)
	if a.Base().ButtonMenu().ChildByID(richtext.InfoButtonID) != nil {
		t.Error("SetPopup added an info button")
	}

	parent := scene.NewNode()
	a.Show(parent)
	a.OpenInfo()
	if !popup.Shown() {
		t.Error("OpenInfo did not show the popup")
	}

	a.SetPopup(nil)
	popup.Close()
	a.OpenInfo()
	if popup.Shown() {
		t.Error("OpenInfo showed a cleared popup")
	}
}

func TestLinkClickOpensURL(t *testing.T) {
	rec := &recorder{}
	a := newAlert(t, "see <link=https://go.dev>docs</link>", richtext.WithURLOpener(rec))
	a.Show(scene.NewNode())
	if len(a.Links()) != 1 {
		t.Fatalf("%d links, want 1", len(a.Links()))
	}
	it := a.Links()[0].(*scene.MenuItem)
	lo, hi := it.WorldBounds()
	if !a.Click(engine.Pt((lo.X+hi.X)/2, (lo.Y+hi.Y)/2)) {
		t.Fatal("click on the link missed")
	}
	if len(rec.urls) != 1 || rec.urls[0] != "https://go.dev" {
		t.Errorf("opened %v", rec.urls)
	}
}

func TestOpenURL(t *testing.T) {
	boom := errors.New("no browser")
	a := newAlert(t, "x", richtext.WithURLOpener(&recorder{err: boom}))
	if err := a.OpenURL("u"); !errors.Is(err, boom) {
		t.Errorf("OpenURL error = %v, want wrapping %v", err, boom)
	}
	if err := newAlert(t, "x").OpenURL("u"); err != nil {
		t.Errorf("OpenURL without opener = %v", err)
	}
}

func TestDialogGrowsWithoutScroll(t *testing.T) {
	text := strings.Repeat("word ", 100)
	d, err := richtext.NewDialog(richtext.BaseConfig{
		Text: text, Primary: "OK", Width: 300, Height: 140, TextScale: 1, Fonts: scenetest.Fonts(),
	})
	if err != nil {
		t.Fatal(err)
	}
	want := d.TextBlock().ContentSize().Height + 100
	if d.Height() != want || d.Background().ContentSize().Height != want {
		t.Errorf("dialog height = %v, want %v", d.Height(), want)
	}
	if d.MaxScroll() != 0 {
		t.Errorf("MaxScroll = %v for a dialog that fits its text", d.MaxScroll())
	}
}

func TestDialogScroll(t *testing.T) {
	d, err := richtext.NewDialog(richtext.BaseConfig{
		Text: strings.Repeat("word ", 100), Primary: "OK", Width: 300, Height: 140,
		Scroll: true, Fonts: scenetest.Fonts(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if d.Height() != 140 {
		t.Errorf("scrolling dialog height = %v, want 140", d.Height())
	}
	maxScroll := d.MaxScroll()
	if maxScroll <= 0 {
		t.Fatalf("MaxScroll = %v, want > 0", maxScroll)
	}
	y0 := d.TextBlock().Position().Y
	d.Scroll(10)
	if d.ScrollOffset() != 10 || d.TextBlock().Position().Y != y0+10 {
		t.Errorf("after Scroll(10): offset %v, y %v (was %v)", d.ScrollOffset(), d.TextBlock().Position().Y, y0)
	}
	d.Scroll(1e9)
	if d.ScrollOffset() != maxScroll {
		t.Errorf("offset = %v, want clamped to %v", d.ScrollOffset(), maxScroll)
	}
	d.Scroll(-1e9)
	if d.ScrollOffset() != 0 {
		t.Errorf("offset = %v, want 0", d.ScrollOffset())
	}
}

func TestDialogNeedsFont(t *testing.T) {
	_, err := richtext.NewDialog(richtext.BaseConfig{Width: 300, Height: 140})
	if !errors.Is(err, richtext.ErrNoFont) {
		t.Errorf("err = %v, want ErrNoFont", err)
	}
}
