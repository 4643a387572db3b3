package bot

import (
	"stormlink/model"
)

// Expansion is one base site found by the survey: a legal townhall point
// and the centroid of the resource cluster it serves.
type Expansion struct {
	Loc    model.Point
	Center model.Point
}

// resourceSpreadSquared is the squared distance under which two resources
// belong to the same base cluster (8.5 world units).
const resourceSpreadSquared = 72.25

// locateExpansions surveys the map's resource clusters once, after the
// first snapshot, and fixes the expansion list for the session. Depleted
// small mineral patches are ignored; they litter the map far from bases.
func (b *Bot) locateExpansions() error {
	points := b.Units.Resources.
		Filter(func(u *model.Unit) bool { return u.TypeID != model.UnitMineralField450 }).
		Positions()

	ability, hasAbility := b.Data.CreationAbility(model.RaceTownhall(b.Race))

	var expansions []Expansion
	for _, group := range clusterResources(points) {
		loc := groupCenter(group)
		switch {
		case loc.CloserThan(8.5, b.StartCenter):
			expansions = append(expansions, Expansion{Loc: b.StartLocation, Center: b.StartCenter})
		case loc.CloserThan(8.5, b.EnemyStartCenter):
			expansions = append(expansions, Expansion{Loc: b.EnemyStart, Center: b.EnemyStartCenter})
		default:
			if !hasAbility {
				expansions = append(expansions, Expansion{Loc: loc, Center: loc})
				continue
			}
			spot, ok, err := b.FindPlacement(ability, loc, PlacementOptions{MaxDistance: 8, Step: 1})
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			center, _ := model.Center(append(group, spot))
			expansions = append(expansions, Expansion{Loc: spot, Center: center.Snap()})
		}
	}
	b.Expansions = expansions
	return nil
}

// clusterResources groups resource positions into base clusters: greedy
// assignment to the first group with any member within the spread
// threshold, then repeated merging of groups whose closest cross pair is
// within it, until no merge applies. The second pass folds transitive
// chains the greedy pass split.
func clusterResources(points []model.Point) [][]model.Point {
	var groups [][]model.Point

next:
	for _, p := range points {
		for i, group := range groups {
			for _, member := range group {
				if p.DistanceSquared(member) < resourceSpreadSquared {
					groups[i] = append(groups[i], p)
					continue next
				}
			}
		}
		groups = append(groups, []model.Point{p})
	}

	for merged := true; merged; {
		merged = false
		for i := 0; i < len(groups) && !merged; i++ {
			for j := i + 1; j < len(groups) && !merged; j++ {
				if groupsTouch(groups[i], groups[j]) {
					groups[i] = append(groups[i], groups[j]...)
					groups = append(groups[:j], groups[j+1:]...)
					merged = true
				}
			}
		}
	}
	return groups
}

func groupsTouch(a, b []model.Point) bool {
	for _, p := range a {
		for _, q := range b {
			if p.DistanceSquared(q) < resourceSpreadSquared {
				return true
			}
		}
	}
	return false
}

func groupCenter(group []model.Point) model.Point {
	center, _ := model.Center(group)
	return center.Snap()
}
