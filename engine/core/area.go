package core

import "github.com/incredimo/mix/engine/geom"

// AreaData is a coordinate cache for hit-testing. It is not a spatial index:
// callers test the areas they hold ids for.
type AreaData struct {
	Rect     geom.Rect
	DrawList DrawListID
}

// HitTest reports whether (x, y) lies inside the area's last placed rect.
// Unknown ids never hit.
func (c *Cx) HitTest(id AreaID, x, y float32) bool {
	a, ok := c.areas[id]
	if !ok {
		c.miss("area", uint64(id), "hit_test")
		return false
	}
	return a.Rect.Contains(geom.V2(x, y))
}
