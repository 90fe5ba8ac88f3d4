package scene

import "github.com/gogpu/richtext/engine"

// MenuItem is a clickable region wrapping a content node. It implements
// engine.Clickable.
type MenuItem struct {
	*Node
	content  *Node
	payload  string
	enabled  bool
	callback func(*MenuItem)
}

// NewMenuItem wraps content. The item takes the content's size and places
// it at its bottom-left corner. callback may be nil.
func NewMenuItem(content *Node, callback func(*MenuItem)) *MenuItem {
	it := &MenuItem{Node: &Node{}, enabled: true, callback: callback}
	it.init(it)
	it.SetContent(content)
	return it
}

// SetContent replaces the content node.
func (it *MenuItem) SetContent(content *Node) {
	if it.content != nil {
		it.RemoveChild(it.content)
	}
	it.content = content
	if content == nil {
		it.size = engine.Size{}
		return
	}
	content.SetAnchorPoint(engine.Point{})
	content.SetPosition(engine.Point{})
	it.AddChild(content)
	it.size = content.ContentSize()
}

// Content returns the wrapped node.
func (it *MenuItem) Content() *Node { return it.content }

// Payload returns the string carried by the item.
func (it *MenuItem) Payload() string { return it.payload }

func (it *MenuItem) SetPayload(p string) { it.payload = p }

func (it *MenuItem) Enabled() bool { return it.enabled }

func (it *MenuItem) SetEnabled(e bool) { it.enabled = e }

// Activate runs the callback of an enabled item.
func (it *MenuItem) Activate() {
	if it.enabled && it.callback != nil {
		it.callback(it)
	}
}

// Contains reports whether a world point lies inside the item.
func (it *MenuItem) Contains(world engine.Point) bool {
	p := it.ConvertToNodeSpace(world)
	return p.X >= 0 && p.Y >= 0 && p.X <= it.size.Width && p.Y <= it.size.Height
}

// Menu groups menu items and dispatches clicks to them.
type Menu struct {
	*Node
}

// NewMenu returns an empty menu at the origin.
func NewMenu() *Menu {
	m := &Menu{Node: &Node{}}
	m.init(m)
	return m
}

// AddItem appends it to the menu.
func (m *Menu) AddItem(it *MenuItem) {
	m.AddChild(it.Node)
}

// Items returns the menu items in child order.
func (m *Menu) Items() []*MenuItem {
	var items []*MenuItem
	for _, c := range m.children {
		if it, ok := c.owner.(*MenuItem); ok {
			items = append(items, it)
		}
	}
	return items
}

// ItemAt returns the topmost visible, enabled item containing the world
// point, or nil.
func (m *Menu) ItemAt(world engine.Point) *MenuItem {
	if !m.IsVisibleInWorld() {
		return nil
	}
	items := m.Items()
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.visible && it.enabled && it.Contains(world) {
			return it
		}
	}
	return nil
}

// Click activates the item under the world point and reports whether
// there was one.
func (m *Menu) Click(world engine.Point) bool {
	it := m.ItemAt(world)
	if it == nil {
		return false
	}
	it.Activate()
	return true
}
