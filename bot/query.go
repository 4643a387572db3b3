package bot

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"stormlink/model"
	"stormlink/protocol"
	"stormlink/units"
)

// PlacementItem is one placement probe: can the ability's structure be
// placed at the position.
type PlacementItem struct {
	Ability model.AbilityID
	Pos     model.Point
	// Builder optionally names the constructing worker; 0 for none.
	Builder uint64
}

// PathRequest is one pathing probe from a point or an existing unit to a
// goal position.
type PathRequest struct {
	Start model.Target
	Goal  model.Point
}

// QueryPlacement batches placement probes into one request. Results come
// back in item order; callers correlate by index.
func (b *Bot) QueryPlacement(items []PlacementItem, ignoreResources bool) ([]model.ActionResult, error) {
	if len(items) == 0 {
		return nil, nil
	}
	placements := make([]protocol.QueryPlacement, len(items))
	for i, it := range items {
		placements[i] = protocol.QueryPlacement{Ability: it.Ability, Pos: it.Pos}
		if it.Builder != 0 {
			tag := it.Builder
			placements[i].PlacingUnitTag = &tag
		}
	}
	res, err := b.api.RoundTrip(&protocol.Request{Query: &protocol.RequestQuery{
		IgnoreResourceRequirements: ignoreResources,
		Placements:                 placements,
	}})
	if err != nil {
		return nil, fmt.Errorf("placement query: %w", err)
	}
	if res.Query == nil || len(res.Query.Placements) != len(items) {
		return nil, fmt.Errorf("placement query: got %d results for %d items", queryLen(res), len(items))
	}
	return res.Query.Placements, nil
}

// QueryPathing batches ground-distance probes. A nil element means no
// ground path exists between the pair.
func (b *Bot) QueryPathing(reqs []PathRequest) ([]*float32, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	pathing := make([]protocol.QueryPathing, len(reqs))
	for i, r := range reqs {
		switch r.Start.Kind {
		case model.TargetPos:
			pos := r.Start.Pos
			pathing[i].StartPos = &pos
		case model.TargetTag:
			tag := r.Start.Tag
			pathing[i].UnitTag = &tag
		default:
			return nil, errors.New("pathing query: start must be a position or a unit")
		}
		pathing[i].EndPos = r.Goal
	}
	res, err := b.api.RoundTrip(&protocol.Request{Query: &protocol.RequestQuery{Pathing: pathing}})
	if err != nil {
		return nil, fmt.Errorf("pathing query: %w", err)
	}
	if res.Query == nil || len(res.Query.Pathing) != len(reqs) {
		return nil, fmt.Errorf("pathing query: got %d results for %d items", queryLen(res), len(reqs))
	}
	out := make([]*float32, len(reqs))
	for i, p := range res.Query.Pathing {
		out[i] = p.Distance
	}
	return out, nil
}

// QueryAbilities returns, per requested tag, the set of abilities the unit
// can use right now.
func (b *Bot) QueryAbilities(tags []uint64) (map[uint64]map[model.AbilityID]bool, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	queries := make([]protocol.QueryAbilities, len(tags))
	for i, tag := range tags {
		queries[i] = protocol.QueryAbilities{UnitTag: tag}
	}
	res, err := b.api.RoundTrip(&protocol.Request{Query: &protocol.RequestQuery{Abilities: queries}})
	if err != nil {
		return nil, fmt.Errorf("abilities query: %w", err)
	}
	if res.Query == nil {
		return nil, errors.New("abilities query: empty reply")
	}
	out := make(map[uint64]map[model.AbilityID]bool, len(res.Query.Abilities))
	for _, a := range res.Query.Abilities {
		set := make(map[model.AbilityID]bool, len(a.Abilities))
		for _, ab := range a.Abilities {
			set[ab] = true
		}
		out[a.UnitTag] = set
	}
	return out, nil
}

func queryLen(res *protocol.Response) int {
	if res.Query == nil {
		return 0
	}
	return len(res.Query.Placements) + len(res.Query.Pathing) + len(res.Query.Abilities)
}

// PlacementOptions tunes the outward ring search of FindPlacement.
type PlacementOptions struct {
	// MaxDistance bounds the search radius. Default 15.
	MaxDistance int
	// Step is the ring spacing and in-ring stride. Default 2.
	Step int
	// Random picks any valid point of the winning ring instead of the one
	// closest to the search origin.
	Random bool
	// Addon also requires room for an addon next to the structure.
	Addon bool
}

// Addon footprints sit 2.5 right and 0.5 down of the main structure; a
// 2x2 probe there tells whether the slot is free.
var addonOffset = model.Point{X: 2.5, Y: -0.5}

const addonProbeAbility = model.AbilityBuildSupplyDepot

// FindPlacement searches outward from near for a position where the
// ability's structure can be placed. The exact point is probed first, then
// concentric square rings with one batched query per ring; the first ring
// holding any valid point wins.
func (b *Bot) FindPlacement(ability model.AbilityID, near model.Point, opts PlacementOptions) (model.Point, bool, error) {
	if opts.MaxDistance == 0 {
		opts.MaxDistance = 15
	}
	if opts.Step == 0 {
		opts.Step = 2
	}

	ok, err := b.placeable(ability, near, opts.Addon)
	if err != nil {
		return model.Point{}, false, err
	}
	if ok {
		return near, true, nil
	}

	for radius := opts.Step; radius <= opts.MaxDistance; radius += opts.Step {
		candidates := ringPoints(near, radius, opts.Step)
		items := make([]PlacementItem, len(candidates))
		for i, p := range candidates {
			items[i] = PlacementItem{Ability: ability, Pos: p}
		}
		results, err := b.QueryPlacement(items, true)
		if err != nil {
			return model.Point{}, false, err
		}
		var valid []model.Point
		for i, r := range results {
			if r == model.ResultSuccess {
				valid = append(valid, candidates[i])
			}
		}
		if opts.Addon && len(valid) > 0 {
			valid, err = b.filterAddonRoom(valid)
			if err != nil {
				return model.Point{}, false, err
			}
		}
		if len(valid) == 0 {
			continue
		}
		if opts.Random {
			return valid[rand.IntN(len(valid))], true, nil
		}
		best := valid[0]
		bestDist := best.DistanceSquared(near)
		for _, p := range valid[1:] {
			if d := p.DistanceSquared(near); d < bestDist {
				best, bestDist = p, d
			}
		}
		return best, true, nil
	}
	return model.Point{}, false, nil
}

func (b *Bot) placeable(ability model.AbilityID, pos model.Point, addon bool) (bool, error) {
	items := []PlacementItem{{Ability: ability, Pos: pos}}
	if addon {
		items = append(items, PlacementItem{
			Ability: addonProbeAbility,
			Pos:     pos.Offset(addonOffset.X, addonOffset.Y),
		})
	}
	results, err := b.QueryPlacement(items, true)
	if err != nil {
		return false, err
	}
	for _, r := range results {
		if r != model.ResultSuccess {
			return false, nil
		}
	}
	return true, nil
}

func (b *Bot) filterAddonRoom(points []model.Point) ([]model.Point, error) {
	items := make([]PlacementItem, len(points))
	for i, p := range points {
		items[i] = PlacementItem{Ability: addonProbeAbility, Pos: p.Offset(addonOffset.X, addonOffset.Y)}
	}
	results, err := b.QueryPlacement(items, true)
	if err != nil {
		return nil, err
	}
	var out []model.Point
	for i, r := range results {
		if r == model.ResultSuccess {
			out = append(out, points[i])
		}
	}
	return out, nil
}

// ringPoints enumerates the square ring of the given radius around center,
// stepping by step along the edges.
func ringPoints(center model.Point, radius, step int) []model.Point {
	var points []model.Point
	for dx := -radius; dx <= radius; dx += step {
		for dy := -radius; dy <= radius; dy += step {
			if dx != -radius && dx != radius && dy != -radius && dy != radius {
				continue
			}
			points = append(points, center.Offset(float32(dx), float32(dy)))
		}
	}
	return points
}

// FindGasPlacement returns a geyser near the base that the race's gas
// building can still be placed on.
func (b *Bot) FindGasPlacement(base model.Point) (model.Unit, bool, error) {
	ability, ok := b.Data.CreationAbility(model.RaceGasBuilding(b.Race))
	if !ok {
		return model.Unit{}, false, errors.New("gas placement: no creation ability in catalog")
	}
	geysers := b.Units.VespeneGeysers.CloserThan(11, base)
	if geysers.IsEmpty() {
		return model.Unit{}, false, nil
	}
	items := make([]PlacementItem, geysers.Len())
	for i := range geysers {
		items[i] = PlacementItem{Ability: ability, Pos: geysers[i].Pos}
	}
	results, err := b.QueryPlacement(items, true)
	if err != nil {
		return model.Unit{}, false, err
	}
	for i, r := range results {
		if r == model.ResultSuccess {
			return geysers[i], true, nil
		}
	}
	return model.Unit{}, false, nil
}

// GetExpansion returns the unclaimed expansion closest to the own start by
// ground distance.
func (b *Bot) GetExpansion() (Expansion, bool, error) {
	taken := append(units.Collection{}, b.Units.My.Townhalls...)
	taken = append(taken, b.Units.My.Placeholders...)
	return b.closestFreeExpansion(b.StartLocation, taken)
}

// GetEnemyExpansion returns the expansion the enemy is most likely to take
// next, by ground distance from their start.
func (b *Bot) GetEnemyExpansion() (Expansion, bool, error) {
	return b.closestFreeExpansion(b.EnemyStart, b.Units.Enemy.Townhalls)
}

func (b *Bot) closestFreeExpansion(from model.Point, taken units.Collection) (Expansion, bool, error) {
	var free []Expansion
	for _, exp := range b.Expansions {
		claimed := false
		for i := range taken {
			if taken[i].Pos.CloserThan(7, exp.Loc) {
				claimed = true
				break
			}
		}
		if !claimed {
			free = append(free, exp)
		}
	}
	if len(free) == 0 {
		return Expansion{}, false, nil
	}

	reqs := make([]PathRequest, len(free))
	for i, exp := range free {
		reqs[i] = PathRequest{Start: model.TargetAt(from), Goal: exp.Loc}
	}
	dists, err := b.QueryPathing(reqs)
	if err != nil {
		return Expansion{}, false, err
	}
	bestIdx := -1
	var bestDist float32
	for i, d := range dists {
		if d == nil {
			continue
		}
		if bestIdx == -1 || *d < bestDist {
			bestIdx, bestDist = i, *d
		}
	}
	if bestIdx == -1 {
		return Expansion{}, false, nil
	}
	return free[bestIdx], true, nil
}
