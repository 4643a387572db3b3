// Package bot holds the per-session driver state: the current snapshot and
// its unit partition, the command aggregator, batched spatial queries and
// the expansion survey. One Bot serves exactly one engine session.
package bot

import (
	"fmt"
	"log/slog"

	"stormlink/model"
	"stormlink/protocol"
	"stormlink/units"
)

// RoundTripper issues one request and waits for its response. Satisfied by
// transport.Conn; tests substitute scripted fakes.
type RoundTripper interface {
	RoundTrip(*protocol.Request) (*protocol.Response, error)
}

// Bot is the session state updated once per step. Everything derived from a
// snapshot (Units, availability) is rebuilt wholesale; only the cooldown
// tracker, owned-tag bookkeeping and expansion survey persist across steps.
type Bot struct {
	api RoundTripper

	PlayerID   uint32
	Race       model.Race
	EnemyRace  model.Race
	OpponentID string
	GameStep   uint32
	DisableFog bool

	Info *protocol.ResponseGameInfo
	Data *model.Catalog

	State     *model.Snapshot
	Units     *units.Grouped
	Cooldowns *units.CooldownTracker
	Commander *Commander

	StartLocation    model.Point
	EnemyStart       model.Point
	StartCenter      model.Point
	EnemyStartCenter model.Point
	Expansions       []Expansion

	debug []protocol.DebugCommand

	ownedTags         map[uint64]bool
	underConstruction map[uint64]bool
}

func New(api RoundTripper) *Bot {
	return &Bot{
		api:               api,
		GameStep:          1,
		Cooldowns:         units.NewCooldownTracker(),
		Commander:         NewCommander(),
		ownedTags:         make(map[uint64]bool),
		underConstruction: make(map[uint64]bool),
	}
}

// ApplySnapshot installs the tick's snapshot and diffs it against the
// previous one, returning lifecycle events in a stable order: destructions
// first, then creations and construction transitions in unit-list order.
func (b *Bot) ApplySnapshot(snap *model.Snapshot) []Event {
	var events []Event

	for _, tag := range snap.DeadUnits {
		events = append(events, Event{Kind: EventUnitDestroyed, Tag: tag})
		delete(b.ownedTags, tag)
		delete(b.underConstruction, tag)
	}

	for i := range snap.Units {
		u := &snap.Units[i]
		if !u.IsMine() || u.IsPlaceholder() {
			continue
		}
		if !b.ownedTags[u.Tag] {
			b.ownedTags[u.Tag] = true
			switch {
			case !u.Structure:
				events = append(events, Event{Kind: EventUnitCreated, Tag: u.Tag})
			case u.IsReady():
				events = append(events, Event{Kind: EventConstructionComplete, Tag: u.Tag})
			default:
				b.underConstruction[u.Tag] = true
				events = append(events, Event{Kind: EventConstructionStarted, Tag: u.Tag})
			}
			continue
		}
		if b.underConstruction[u.Tag] && u.IsReady() {
			delete(b.underConstruction, u.Tag)
			events = append(events, Event{Kind: EventConstructionComplete, Tag: u.Tag})
		}
	}

	b.State = snap
	return events
}

// FetchAvailability runs the batched per-unit ability query for every own
// unit and merges the answers into the snapshot, so decision logic sees
// availability on the units it filters. Must run before Refresh.
func (b *Bot) FetchAvailability() error {
	if b.State == nil {
		return nil
	}
	var tags []uint64
	for i := range b.State.Units {
		if b.State.Units[i].IsMine() && !b.State.Units[i].IsPlaceholder() {
			tags = append(tags, b.State.Units[i].Tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	avail, err := b.QueryAbilities(tags)
	if err != nil {
		return fmt.Errorf("availability query: %w", err)
	}
	for i := range b.State.Units {
		u := &b.State.Units[i]
		if set, ok := avail[u.Tag]; ok {
			u.AvailableAbilities = set
		}
	}
	return nil
}

// Refresh rebuilds the unit partition from the current snapshot.
func (b *Bot) Refresh() {
	if b.State == nil {
		return
	}
	b.Units = units.Classify(b.State.Units, b.Cooldowns)
}

// PrepareStart derives the session's fixed geography from the first
// observation: races, start locations, resource centers and the expansion
// survey. Call once, after the first Refresh.
func (b *Bot) PrepareStart() error {
	for _, p := range b.Info.Players {
		race := p.RaceActual
		if race == "" {
			race = p.RaceRequested
		}
		if p.PlayerID == b.PlayerID {
			b.Race = race
		} else {
			b.EnemyRace = race
		}
	}

	if th, ok := b.Units.My.Townhalls.First(); ok {
		b.StartLocation = th.Pos
	}
	for _, loc := range b.Info.StartLocations {
		if loc.FurtherThan(10, b.StartLocation) {
			b.EnemyStart = loc
			break
		}
	}

	b.StartCenter = b.resourceCenter(b.StartLocation)
	b.EnemyStartCenter = b.resourceCenter(b.EnemyStart)

	if err := b.locateExpansions(); err != nil {
		return fmt.Errorf("expansion survey: %w", err)
	}
	return nil
}

// resourceCenter is the snapped centroid of a base's resources together
// with the base point itself.
func (b *Bot) resourceCenter(base model.Point) model.Point {
	points := b.Units.Resources.CloserThan(11, base).Positions()
	points = append(points, base)
	center, _ := model.Center(points)
	return center.Snap()
}

// --- Convenience commands, routed through the aggregator ---

func (b *Bot) Attack(u *model.Unit, target model.Target, queue bool) {
	b.Commander.Command(u, model.AbilityAttack, target, queue)
}

func (b *Bot) MoveTo(u *model.Unit, pos model.Point, queue bool) {
	b.Commander.Command(u, model.AbilityMove, model.TargetAt(pos), queue)
}

func (b *Bot) Gather(u *model.Unit, resourceTag uint64, queue bool) {
	b.Commander.Command(u, model.AbilityHarvestGather, model.TargetUnit(resourceTag), queue)
}

func (b *Bot) Stop(u *model.Unit, queue bool) {
	b.Commander.Command(u, model.AbilityStop, model.NoTarget, queue)
}

func (b *Bot) UseAbility(u *model.Unit, ability model.AbilityID, target model.Target, queue bool) {
	b.Commander.Command(u, ability, target, queue)
}

// Train orders the producing structure to train the given type. Reports
// false when the catalog holds no creation ability for it.
func (b *Bot) Train(u *model.Unit, t model.UnitTypeID, queue bool) bool {
	ability, ok := b.Data.CreationAbility(t)
	if !ok {
		return false
	}
	b.Commander.Command(u, ability, model.NoTarget, queue)
	return true
}

// Build sends the worker to construct the given structure type at pos.
func (b *Bot) Build(worker *model.Unit, t model.UnitTypeID, pos model.Point, queue bool) bool {
	ability, ok := b.Data.CreationAbility(t)
	if !ok {
		return false
	}
	b.Commander.Command(worker, ability, model.TargetAt(pos), queue)
	return true
}

// BuildGas sends the worker to construct the gas building on the geyser.
func (b *Bot) BuildGas(worker *model.Unit, t model.UnitTypeID, geyserTag uint64, queue bool) bool {
	ability, ok := b.Data.CreationAbility(t)
	if !ok {
		return false
	}
	b.Commander.Command(worker, ability, model.TargetUnit(geyserTag), queue)
	return true
}

// --- End-of-step flushes ---

// FlushActions sends the tick's aggregated actions. The aggregator is
// cleared whether or not the send succeeds.
func (b *Bot) FlushActions() error {
	actions := b.Commander.Flush()
	if len(actions) == 0 {
		return nil
	}
	res, err := b.api.RoundTrip(&protocol.Request{Action: &protocol.RequestAction{Actions: actions}})
	if err != nil {
		return fmt.Errorf("send actions: %w", err)
	}
	if res.Action != nil {
		for _, r := range res.Action.Results {
			if r != model.ResultSuccess {
				slog.Debug("action rejected", "result", r)
			}
		}
	}
	return nil
}

// FlushDebug sends queued debug directives, if any.
func (b *Bot) FlushDebug() error {
	if len(b.debug) == 0 {
		return nil
	}
	commands := b.debug
	b.debug = nil
	if _, err := b.api.RoundTrip(&protocol.Request{Debug: &protocol.RequestDebug{Commands: commands}}); err != nil {
		return fmt.Errorf("send debug: %w", err)
	}
	return nil
}
