package scene_test

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/richtext/engine"
	"github.com/gogpu/richtext/scene"
	"github.com/gogpu/richtext/scene/scenetest"
)

func TestLabelGlyphSlots(t *testing.T) {
	l := scene.NewLabel("a b\n", engine.VariantRegular, scenetest.Fonts()[engine.VariantRegular])
	glyphs := l.Glyphs()
	if len(glyphs) != 4 {
		t.Fatalf("len(Glyphs()) = %d, want 4", len(glyphs))
	}
	if glyphs[0] == nil || glyphs[1] != nil || glyphs[2] == nil || glyphs[3] != nil {
		t.Errorf("unexpected nil pattern: %v", glyphs)
	}
	if got := l.ContentSize(); got.Width != 3*scenetest.RegularAdvance || got.Height != scenetest.LineHeight {
		t.Errorf("ContentSize() = %v", got)
	}
	// Glyph b is centered in the third cell.
	if got := glyphs[2].Position(); got != engine.Pt(2.5*scenetest.RegularAdvance, scenetest.LineHeight/2) {
		t.Errorf("glyph position = %v", got)
	}
	if got := glyphs[0].Texture().ID(); got != "mono/U+0061" {
		t.Errorf("texture ID = %q", got)
	}
	if l.String() != "a b\n" || l.Variant() != engine.VariantRegular {
		t.Error("label text or variant mismatch")
	}
}

func TestLabelGlyphWorldPosition(t *testing.T) {
	l := scene.NewLabel("ab", engine.VariantBold, scenetest.Fonts()[engine.VariantBold])
	l.SetAnchorPoint(engine.Point{})
	l.SetPosition(engine.Pt(100, 50))
	g := l.Glyphs()[1]
	want := engine.Pt(100+1.5*scenetest.BoldAdvance, 50+scenetest.LineHeight/2)
	if got := g.WorldPosition(); got != want {
		t.Errorf("WorldPosition() = %v, want %v", got, want)
	}
}

func TestTextBlockLines(t *testing.T) {
	// 10 characters per line.
	b := scenetest.Block("hello world, this wraps\nend", 80)
	labels := b.Labels()

	var texts []string
	for _, l := range labels {
		texts = append(texts, l.String())
	}
	want := []string{"hello ", "world, ", "this wraps\n", "end"}
	if strings.Join(texts, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q, want %q", texts, want)
	}
	if b.Text() != "hello world, this wraps\nend" {
		t.Errorf("Text() = %q", b.Text())
	}

	// First line on top, y decreasing by one line height.
	for i, l := range labels {
		wantY := float64(len(labels)-1-i) * scenetest.LineHeight
		if l.Position().Y != wantY || l.Position().X != 0 {
			t.Errorf("line %d at %v, want (0,%v)", i, l.Position(), wantY)
		}
	}
	if got := b.ContentSize(); got.Width != 80 || got.Height != 4*scenetest.LineHeight {
		t.Errorf("ContentSize() = %v", got)
	}
}

func TestTextBlockGlyphOffsetsMatchText(t *testing.T) {
	text := "one two three four five six"
	b := scenetest.Block(text, 60)
	runes := []rune(text)
	count := 0
	engine.Walk(b, func(i int, g engine.Glyph, f engine.Fragment) bool {
		if (g == nil) != (runes[i] == ' ') {
			t.Errorf("slot %d (%q): nil=%v", i, runes[i], g == nil)
		}
		count++
		return true
	})
	if count != len(runes) {
		t.Errorf("walked %d slots, want %d", count, len(runes))
	}
}

func TestTextBlockAlignment(t *testing.T) {
	b := scenetest.Block("ab \nabcd", 80, scene.WithAlignment(scene.AlignCenter))
	labels := b.Labels()
	if got := labels[0].Position().X; got != (80-2*scenetest.RegularAdvance)/2 {
		t.Errorf("centered line x = %v", got)
	}
	b = scenetest.Block("ab", 80, scene.WithAlignment(scene.AlignRight))
	if got := b.Labels()[0].Position().X; got != 80-2*scenetest.RegularAdvance {
		t.Errorf("right-aligned line x = %v", got)
	}
	b = scenetest.Block("abc\nabcdef", 0)
	if got := b.ContentSize().Width; got != 6*scenetest.RegularAdvance {
		t.Errorf("unwrapped width = %v, want widest line", got)
	}
}

func TestTextBlockFragments(t *testing.T) {
	b := scenetest.Block("ab", 0)
	frags := b.Fragments()
	if len(frags) != 1 {
		t.Fatalf("len(Fragments()) = %d", len(frags))
	}
	b.RemoveFragment(frags[0])
	if len(b.Fragments()) != 0 {
		t.Fatal("RemoveFragment left the fragment")
	}

	f := b.AddFragment("xy", engine.VariantBold, engine.Pt(5, 7))
	if f.Position() != engine.Pt(5, 7) {
		t.Errorf("Position() = %v", f.Position())
	}
	if f.ContentSize().Width != 2*scenetest.BoldAdvance {
		t.Errorf("bold fragment width = %v", f.ContentSize().Width)
	}
	// Fragments stay in insertion order, skipping non-label children.
	b.ResetLayer("layer")
	b.AddFragment("z", engine.VariantRegular, engine.Pt(0, 0))
	var got []string
	for _, f := range b.Fragments() {
		got = append(got, f.String())
	}
	if strings.Join(got, ",") != "xy,z" {
		t.Errorf("fragments = %v", got)
	}
}

func TestTextBlockResetLayer(t *testing.T) {
	b := scenetest.Block("ab", 0)
	l := b.ResetLayer("underlineLayer")
	l.AddPolygon([]engine.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, scene.White, 0, scene.White)
	if got := len(b.Layer("underlineLayer").Polygons()); got != 1 {
		t.Fatalf("polygons = %d, want 1", got)
	}
	b.ResetLayer("underlineLayer")
	if got := len(b.Layer("underlineLayer").Polygons()); got != 0 {
		t.Errorf("polygons after reset = %d, want 0", got)
	}
	n := 0
	for _, c := range b.Children() {
		if c.ID() == "underlineLayer" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("%d layers with the same ID", n)
	}
}

func TestTextBlockLinks(t *testing.T) {
	var opened []string
	b := scenetest.Block("ab", 0, scene.WithURLOpener(engine.URLOpenerFunc(func(u string) error {
		opened = append(opened, u)
		return nil
	})))

	w := b.NewLinkWrapper()
	w.SetContentSize(engine.Size{Width: 16, Height: 20})
	c := b.AddLink(w, "https://example.com")
	c.SetPosition(engine.Pt(10, 0))

	if c.ContentSize().Width != 16 || c.Payload() != "https://example.com" {
		t.Errorf("clickable = %v %q", c.ContentSize(), c.Payload())
	}
	if !b.Click(engine.Pt(20, 10)) {
		t.Fatal("click inside the link was not handled")
	}
	if b.Click(engine.Pt(2, 10)) {
		t.Error("click outside the link was handled")
	}
	if len(opened) != 1 || opened[0] != "https://example.com" {
		t.Errorf("opened = %v", opened)
	}

	b.ResetLinks()
	if len(b.LinkMenu().Items()) != 0 {
		t.Error("ResetLinks left link items")
	}
	if b.Click(engine.Pt(20, 10)) {
		t.Error("click after ResetLinks was handled")
	}
}

func TestTextBlockLinkOpenerError(t *testing.T) {
	b := scenetest.Block("ab", 0)
	b.SetURLOpener(engine.URLOpenerFunc(func(string) error { return errors.New("no browser") }))
	w := b.NewLinkWrapper()
	w.SetContentSize(engine.Size{Width: 1, Height: 1})
	b.AddLink(w, "u").Activate() // must not panic
}

func TestMenuItemAt(t *testing.T) {
	m := scene.NewMenu()
	var hits []string
	cb := func(it *scene.MenuItem) { hits = append(hits, it.Payload()) }

	content := scene.NewNode()
	content.SetContentSize(engine.Size{Width: 10, Height: 10})
	low := scene.NewMenuItem(content, cb)
	low.SetPayload("low")
	m.AddItem(low)

	content = scene.NewNode()
	content.SetContentSize(engine.Size{Width: 10, Height: 10})
	high := scene.NewMenuItem(content, cb)
	high.SetPayload("high")
	high.SetAnchorPoint(engine.Pt(0.5, 0.5))
	high.SetPosition(engine.Pt(10, 10))
	m.AddItem(high)

	if it := m.ItemAt(engine.Pt(7, 7)); it != high {
		t.Errorf("ItemAt overlap = %v, want the topmost item", it)
	}
	if it := m.ItemAt(engine.Pt(1, 1)); it != low {
		t.Errorf("ItemAt(1,1) = %v, want low", it)
	}
	high.SetEnabled(false)
	m.Click(engine.Pt(7, 7))
	if len(hits) != 1 || hits[0] != "low" {
		t.Errorf("hits = %v", hits)
	}
	m.SetVisible(false)
	if m.ItemAt(engine.Pt(1, 1)) != nil {
		t.Error("hidden menu returned an item")
	}
}

func TestDump(t *testing.T) {
	b := scenetest.Block("hi", 0)
	b.SetID("content")
	g := b.Labels()[0].Sprites()[0]
	g.SetColor(color.NRGBA{R: 0xff, A: 0xff})

	var buf bytes.Buffer
	if err := scene.Dump(&buf, b.Node, scene.DumpOptions{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "TextBlock #content") || !strings.Contains(out, `Label "hi" regular`) {
		t.Errorf("dump missing block or label:\n%s", out)
	}
	if strings.Contains(out, "Sprite") {
		t.Errorf("dump without glyphs lists sprites:\n%s", out)
	}

	buf.Reset()
	g.SetVisible(false)
	if err := scene.Dump(&buf, b.Node, scene.DumpOptions{Glyphs: true, Hidden: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `Sprite 'h'`) || !strings.Contains(buf.String(), "color=#ff0000") ||
		!strings.Contains(buf.String(), "hidden") {
		t.Errorf("dump with glyphs:\n%s", buf.String())
	}
}
