// Package scene is a small retained scene graph for rich text.
//
// A scene is a tree of Nodes. Every node has a position in its parent's
// space, an anchor point, a content size and a scale. Y grows upward and a
// child is positioned relative to its parent's bottom-left corner, whatever
// the parent's anchor:
//
//	local-to-parent = Translate(position) * Scale(sx, sy) * Translate(-anchor * size)
//
// Specialized nodes embed *Node: Sprite (a tinted quad or glyph), Label (a
// run of text whose children are glyph sprites), DrawNode (filled
// polygons), Menu and MenuItem (clickable regions) and TextBlock (wrapped
// multi-line text). Label and TextBlock implement engine.Fragment and
// engine.TextBlock.
//
// A scene is not safe for concurrent use.
package scene
