package engine

// Walk visits the glyph slots of block in canonical order, passing each
// slot's global index, the slot (possibly nil) and its fragment. It stops
// as soon as visit returns false.
func Walk(block TextBlock, visit func(index int, g Glyph, f Fragment) bool) {
	index := 0
	for _, f := range block.Fragments() {
		if f == nil {
			continue
		}
		for _, g := range f.Glyphs() {
			if !visit(index, g, f) {
				return
			}
			index++
		}
	}
}

// WalkRange visits the slots whose global index lies in [start, end).
// The walk stops at end instead of running to the end of the block.
func WalkRange(block TextBlock, start, end int, visit func(index int, g Glyph, f Fragment)) {
	if end <= start {
		return
	}
	Walk(block, func(index int, g Glyph, f Fragment) bool {
		if index >= start {
			visit(index, g, f)
		}
		return index+1 < end
	})
}
