package bot

import (
	"testing"

	"stormlink/model"
)

func TestCommanderUnionMerge(t *testing.T) {
	c := NewCommander()
	u1 := &model.Unit{Tag: 1}
	u2 := &model.Unit{Tag: 2}
	target := model.TargetAt(model.Pt(50, 50))

	c.Command(u1, model.AbilityAttack, target, false)
	c.Command(u2, model.AbilityAttack, target, false)

	actions := c.Flush()
	if len(actions) != 1 {
		t.Fatalf("expected one merged action, got %d", len(actions))
	}
	cmd := actions[0].UnitCommand
	if cmd == nil {
		t.Fatal("expected a unit command")
	}
	if len(cmd.UnitTags) != 2 || cmd.UnitTags[0] != 1 || cmd.UnitTags[1] != 2 {
		t.Errorf("tags = %v, want [1 2]", cmd.UnitTags)
	}
	if cmd.TargetPos == nil || *cmd.TargetPos != model.Pt(50, 50) {
		t.Errorf("target position not carried over: %v", cmd.TargetPos)
	}
}

func TestCommanderSplitsDifferentKeys(t *testing.T) {
	c := NewCommander()
	u := &model.Unit{Tag: 1}

	c.Command(u, model.AbilityAttack, model.TargetAt(model.Pt(1, 1)), false)
	c.Command(u, model.AbilityAttack, model.TargetAt(model.Pt(2, 2)), false)
	c.Command(u, model.AbilityMove, model.TargetAt(model.Pt(1, 1)), false)
	c.Command(u, model.AbilityAttack, model.TargetAt(model.Pt(1, 1)), true)

	if got := len(c.Flush()); got != 4 {
		t.Errorf("distinct (ability,target,queue) keys must not merge; got %d actions", got)
	}
}

func TestCommanderIdempotentReissue(t *testing.T) {
	target := model.TargetUnit(99)
	busy := &model.Unit{
		Tag:    1,
		Orders: []model.UnitOrder{{Ability: model.AbilityHarvestGather, Target: target}},
	}

	c := NewCommander()
	c.Command(busy, model.AbilityHarvestGather, target, false)
	if !c.IsEmpty() {
		t.Error("re-issuing a unit's current order must be a no-op")
	}

	// Queued orders bypass the guard; queueing behind the current order is
	// a deliberate request.
	c.Command(busy, model.AbilityHarvestGather, target, true)
	if c.IsEmpty() {
		t.Error("queued re-issue must pass through")
	}

	// A different target is a real order even with the same ability.
	c2 := NewCommander()
	c2.Command(busy, model.AbilityHarvestGather, model.TargetUnit(100), false)
	if c2.IsEmpty() {
		t.Error("order with different target must pass through")
	}

	// An idle unit never matches.
	idle := &model.Unit{Tag: 2}
	c3 := NewCommander()
	c3.Command(idle, model.AbilityHarvestGather, target, false)
	if c3.IsEmpty() {
		t.Error("idle unit's command must pass through")
	}
}

func TestCommanderFlushClearsUnconditionally(t *testing.T) {
	c := NewCommander()
	u := &model.Unit{Tag: 1}
	c.Command(u, model.AbilityMove, model.TargetAt(model.Pt(1, 1)), false)
	c.Autocast(u, model.AbilityHarvestGather)
	c.Chat("hello", false)

	if got := len(c.Flush()); got != 3 {
		t.Fatalf("first flush = %d actions, want 3", got)
	}
	if !c.IsEmpty() {
		t.Error("flush must clear pending state")
	}
	if got := len(c.Flush()); got != 0 {
		t.Errorf("second flush = %d actions, want 0", got)
	}
}

func TestCommanderDeterministicOrder(t *testing.T) {
	build := func() []string {
		c := NewCommander()
		u := &model.Unit{Tag: 1}
		c.Command(u, model.AbilityMove, model.TargetAt(model.Pt(9, 9)), false)
		c.Command(u, model.AbilityAttack, model.TargetUnit(5), false)
		c.Command(u, model.AbilityAttack, model.TargetUnit(3), false)
		var order []string
		for _, a := range c.Flush() {
			cmd := a.UnitCommand
			switch {
			case cmd.TargetTag != nil:
				order = append(order, "tag")
			case cmd.TargetPos != nil:
				order = append(order, "pos")
			}
		}
		return order
	}

	first := build()
	for range 10 {
		again := build()
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("flush order varies across runs: %v vs %v", first, again)
			}
		}
	}
}
