package units

import (
	"testing"

	"stormlink/model"
)

func at(tag uint64, x, y float32) model.Unit {
	return model.Unit{Tag: tag, Pos: model.Pt(x, y)}
}

func TestCollectionQueries(t *testing.T) {
	c := Collection{at(1, 0, 0), at(2, 10, 0), at(3, 3, 4)}

	if got, ok := c.Closest(model.Pt(9, 0)); !ok || got.Tag != 2 {
		t.Errorf("Closest = %v, want tag 2", got.Tag)
	}

	near := c.CloserThan(6, model.Pt(0, 0))
	if len(near) != 2 || near[0].Tag != 1 || near[1].Tag != 3 {
		t.Errorf("CloserThan kept %v", near.Tags())
	}

	far := c.FurtherThan(6, model.Pt(0, 0))
	if len(far) != 1 || far[0].Tag != 2 {
		t.Errorf("FurtherThan kept %v", far.Tags())
	}

	picked := c.FindTags([]uint64{3, 1})
	if got := picked.Tags(); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("FindTags must preserve collection order, got %v", got)
	}

	if _, ok := (Collection{}).First(); ok {
		t.Error("First on empty collection must report absence")
	}
}

func TestCollectionCenter(t *testing.T) {
	c := Collection{at(1, 0, 0), at(2, 4, 0), at(3, 2, 6)}
	got, ok := c.Center()
	if !ok || got != model.Pt(2, 2) {
		t.Errorf("Center = (%v, %v), want ((2,2), true)", got, ok)
	}
}
