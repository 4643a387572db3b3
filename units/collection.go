// Package units partitions the flat per-tick unit list into the named
// buckets decision logic works with, and tracks the per-type maximum
// weapon cooldown observed over the session.
package units

import "stormlink/model"

// Collection is an ordered list of units with query helpers. Collections
// are step-scoped: rebuilt from each snapshot, never mutated in place.
type Collection []model.Unit

func (c Collection) Len() int      { return len(c) }
func (c Collection) IsEmpty() bool { return len(c) == 0 }

func (c Collection) First() (model.Unit, bool) {
	if len(c) == 0 {
		return model.Unit{}, false
	}
	return c[0], true
}

func (c Collection) Filter(pred func(*model.Unit) bool) Collection {
	var out Collection
	for i := range c {
		if pred(&c[i]) {
			out = append(out, c[i])
		}
	}
	return out
}

func (c Collection) ByTag(tag uint64) (model.Unit, bool) {
	for i := range c {
		if c[i].Tag == tag {
			return c[i], true
		}
	}
	return model.Unit{}, false
}

// FindTags returns the units whose tags appear in the given set,
// preserving collection order.
func (c Collection) FindTags(tags []uint64) Collection {
	want := make(map[uint64]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	return c.Filter(func(u *model.Unit) bool { return want[u.Tag] })
}

func (c Collection) Tags() []uint64 {
	tags := make([]uint64, len(c))
	for i := range c {
		tags[i] = c[i].Tag
	}
	return tags
}

// Closest returns the unit nearest to p.
func (c Collection) Closest(p model.Point) (model.Unit, bool) {
	if len(c) == 0 {
		return model.Unit{}, false
	}
	best := 0
	bestDist := c[0].Pos.DistanceSquared(p)
	for i := 1; i < len(c); i++ {
		if d := c[i].Pos.DistanceSquared(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return c[best], true
}

// CloserThan keeps units strictly within dist of p.
func (c Collection) CloserThan(dist float32, p model.Point) Collection {
	return c.Filter(func(u *model.Unit) bool { return u.Pos.CloserThan(dist, p) })
}

func (c Collection) FurtherThan(dist float32, p model.Point) Collection {
	return c.Filter(func(u *model.Unit) bool { return u.Pos.FurtherThan(dist, p) })
}

// Center returns the centroid of the collection's positions.
func (c Collection) Center() (model.Point, bool) {
	points := make([]model.Point, len(c))
	for i := range c {
		points[i] = c[i].Pos
	}
	return model.Center(points)
}

func (c Collection) Positions() []model.Point {
	points := make([]model.Point, len(c))
	for i := range c {
		points[i] = c[i].Pos
	}
	return points
}
