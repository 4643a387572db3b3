package bot

import (
	"sort"

	"stormlink/model"
	"stormlink/protocol"
)

// CommandKey identifies one batchable instruction. Every unit issuing the
// same key in a tick rides the same outbound command.
type CommandKey struct {
	Ability model.AbilityID
	Target  model.Target
	Queue   bool
}

// Commander collects unit commands issued during a tick and flushes them
// as one minimal action batch at the end of the step.
type Commander struct {
	commands map[CommandKey][]uint64
	autocast map[model.AbilityID][]uint64
	extra    []protocol.Action // chat and camera moves, never batched
}

func NewCommander() *Commander {
	return &Commander{
		commands: make(map[CommandKey][]uint64),
		autocast: make(map[model.AbilityID][]uint64),
	}
}

// Command orders the unit to use an ability on a target. When queue is
// false and the unit's currently-executing order already matches, the call
// is a no-op: re-issuing the same order every tick would spam the engine
// with redundant commands.
func (c *Commander) Command(u *model.Unit, ability model.AbilityID, target model.Target, queue bool) {
	if !queue {
		if order, ok := u.FirstOrder(); ok && order.Ability == ability && order.Target == target {
			return
		}
	}
	key := CommandKey{Ability: ability, Target: target, Queue: queue}
	c.commands[key] = append(c.commands[key], u.Tag)
}

// Autocast toggles autocast of the ability on the unit.
func (c *Commander) Autocast(u *model.Unit, ability model.AbilityID) {
	c.autocast[ability] = append(c.autocast[ability], u.Tag)
}

// Chat sends a chat message; bypasses batching.
func (c *Commander) Chat(message string, teamOnly bool) {
	c.extra = append(c.extra, protocol.Action{
		Chat: &protocol.ActionChat{Message: message, TeamOnly: teamOnly},
	})
}

// MoveCamera recenters the observer camera; bypasses batching.
func (c *Commander) MoveCamera(center model.Point) {
	c.extra = append(c.extra, protocol.Action{
		CameraMove: &protocol.ActionCameraMove{Center: center},
	})
}

func (c *Commander) IsEmpty() bool {
	return len(c.commands) == 0 && len(c.autocast) == 0 && len(c.extra) == 0
}

// Flush converts the pending commands into one outbound action list and
// clears the aggregator. The clear is unconditional: callers reset state
// even when the transport send fails, so a broken tick can never replay
// stale commands on the next one.
func (c *Commander) Flush() []protocol.Action {
	out := make([]protocol.Action, 0, len(c.commands)+len(c.autocast)+len(c.extra))

	keys := make([]CommandKey, 0, len(c.commands))
	for key := range c.commands {
		keys = append(keys, key)
	}
	// Deterministic wire order so identical ticks produce identical frames.
	sort.Slice(keys, func(i, j int) bool { return lessKey(keys[i], keys[j]) })

	for _, key := range keys {
		cmd := &protocol.ActionUnitCommand{
			Ability:  key.Ability,
			UnitTags: c.commands[key],
			Queue:    key.Queue,
		}
		switch key.Target.Kind {
		case model.TargetPos:
			pos := key.Target.Pos
			cmd.TargetPos = &pos
		case model.TargetTag:
			tag := key.Target.Tag
			cmd.TargetTag = &tag
		}
		out = append(out, protocol.Action{UnitCommand: cmd})
	}

	abilities := make([]model.AbilityID, 0, len(c.autocast))
	for ability := range c.autocast {
		abilities = append(abilities, ability)
	}
	sort.Slice(abilities, func(i, j int) bool { return abilities[i] < abilities[j] })
	for _, ability := range abilities {
		out = append(out, protocol.Action{
			ToggleAutocast: &protocol.ActionToggleAutocast{Ability: ability, UnitTags: c.autocast[ability]},
		})
	}

	out = append(out, c.extra...)

	c.commands = make(map[CommandKey][]uint64)
	c.autocast = make(map[model.AbilityID][]uint64)
	c.extra = nil
	return out
}

func lessKey(a, b CommandKey) bool {
	if a.Ability != b.Ability {
		return a.Ability < b.Ability
	}
	if a.Target.Kind != b.Target.Kind {
		return a.Target.Kind < b.Target.Kind
	}
	if a.Target.Tag != b.Target.Tag {
		return a.Target.Tag < b.Target.Tag
	}
	if a.Target.Pos.X != b.Target.Pos.X {
		return a.Target.Pos.X < b.Target.Pos.X
	}
	if a.Target.Pos.Y != b.Target.Pos.Y {
		return a.Target.Pos.Y < b.Target.Pos.Y
	}
	return !a.Queue && b.Queue
}
