package bot

import (
	"stormlink/model"
	"stormlink/protocol"
)

// Debug drawing queue. Directives accumulate during a step and go out in
// one frame after the action flush; the engine redraws them every tick
// until replaced.

func (b *Bot) DebugText(text string, pos *model.Point, color [3]uint8) {
	b.debug = append(b.debug, protocol.DebugCommand{
		Draw: &protocol.DebugDraw{Texts: []protocol.DebugText{{Text: text, Pos: pos, Color: color}}},
	})
}

func (b *Bot) DebugLine(p0, p1 model.Point, color [3]uint8) {
	b.debug = append(b.debug, protocol.DebugCommand{
		Draw: &protocol.DebugDraw{Lines: []protocol.DebugLine{{P0: p0, P1: p1, Color: color}}},
	})
}

func (b *Bot) DebugSphere(pos model.Point, radius float32, color [3]uint8) {
	b.debug = append(b.debug, protocol.DebugCommand{
		Draw: &protocol.DebugDraw{Spheres: []protocol.DebugSphere{{Pos: pos, Radius: radius, Color: color}}},
	})
}

// Surrender concedes the game on the next debug flush.
func (b *Bot) Surrender() {
	b.debug = append(b.debug, protocol.DebugCommand{
		EndGame: &protocol.DebugEndGame{Surrender: true},
	})
}
