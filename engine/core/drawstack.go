package core

// PushDrawList opens dl for the current draw pass. If another list is open,
// dl is linked into it as a sub-list at the parent's current position.
func (c *Cx) PushDrawList(dl DrawListID) {
	if _, ok := c.drawLists[dl]; !ok {
		c.miss("draw_list", uint64(dl), "push")
		return
	}
	if n := len(c.drawStack); n > 0 {
		if parent, ok := c.drawLists[c.drawStack[n-1]]; ok {
			parent.AddDrawItem(DrawItem{SubList: dl})
		}
	}
	c.drawStack = append(c.drawStack, dl)
}

// PopDrawList closes dl. Popping a list that is not on top is ignored.
func (c *Cx) PopDrawList(dl DrawListID) {
	n := len(c.drawStack)
	if n == 0 || c.drawStack[n-1] != dl {
		c.miss("draw_list", uint64(dl), "pop")
		return
	}
	c.drawStack = c.drawStack[:n-1]
}

// CurrentDrawList is the innermost open list, or 0.
func (c *Cx) CurrentDrawList() DrawListID {
	if n := len(c.drawStack); n > 0 {
		return c.drawStack[n-1]
	}
	return 0
}

// WalkDrawItems visits the leaf items reachable from root in submission
// order, descending into sub-lists. Each list is visited at most once per
// walk.
func (c *Cx) WalkDrawItems(root DrawListID, fn func(dl *DrawList, item DrawItem)) {
	seen := map[DrawListID]bool{}
	var walk func(id DrawListID)
	walk = func(id DrawListID) {
		dl, ok := c.drawLists[id]
		if !ok || seen[id] {
			return
		}
		seen[id] = true
		for _, it := range dl.items {
			if !it.SubList.IsEmpty() {
				walk(it.SubList)
				continue
			}
			fn(dl, it)
		}
	}
	walk(root)
}

func (c *Cx) DrawListDepth() int { return len(c.drawStack) }

// ResetDrawStack forgets every open list. Used after a failed draw pass.
func (c *Cx) ResetDrawStack() { c.drawStack = c.drawStack[:0] }
