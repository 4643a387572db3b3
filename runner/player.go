// Package runner launches engine processes, performs the session
// handshake and drives the turn-stepped loop that feeds snapshots to a
// Player and flushes its commands back.
package runner

import (
	"stormlink/bot"
	"stormlink/model"
)

// PlayerSettings is what a Player asks of the engine when joining.
type PlayerSettings struct {
	Race model.Race
	Name string
}

// Player is the decision logic plugged into a session. Callbacks run to
// completion before the driver proceeds; all engine interaction inside
// them goes through the Bot, which answers synchronously.
type Player interface {
	Settings() PlayerSettings
	OnStart(*bot.Bot) error
	OnStep(*bot.Bot, int) error
	OnEvent(*bot.Bot, bot.Event) error
	OnEnd(model.GameResult) error
}
