package units

import "stormlink/model"

// Side holds per-alliance buckets. A unit appears in every bucket whose
// rule it matches: a Nexus lands in All, Structures and Townhalls.
type Side struct {
	All          Collection
	Units        Collection // non-structures
	Structures   Collection
	Townhalls    Collection
	GasBuildings Collection
	Workers      Collection
	Larvas       Collection
	Placeholders Collection // own side only
}

// Grouped is the step-scoped partition of one snapshot's unit list.
// It is replaced wholesale each tick, never mutated in place.
type Grouped struct {
	All   Collection
	My    Side
	Enemy Side

	Resources      Collection // minerals + geysers
	MineralFields  Collection
	VespeneGeysers Collection
	Watchtowers    Collection
	Destructables  Collection
}

// Classify partitions the flat unit list by alliance and rule table, and
// feeds own units' weapon cooldowns into the tracker.
func Classify(all []model.Unit, cds *CooldownTracker) *Grouped {
	g := &Grouped{All: Collection(all)}

	for i := range all {
		u := all[i]
		switch u.Alliance {
		case model.AllianceNeutral:
			switch {
			case u.TypeID == model.UnitXelNagaTower:
				g.Watchtowers = append(g.Watchtowers, u)
			case u.IsMineral():
				g.Resources = append(g.Resources, u)
				g.MineralFields = append(g.MineralFields, u)
			case u.IsGeyser():
				g.Resources = append(g.Resources, u)
				g.VespeneGeysers = append(g.VespeneGeysers, u)
			default:
				g.Destructables = append(g.Destructables, u)
			}

		case model.AllianceOwn:
			if cds != nil {
				cds.Observe(&u)
			}
			classifySide(&g.My, u, true)

		case model.AllianceEnemy:
			classifySide(&g.Enemy, u, false)
		}
	}
	return g
}

func classifySide(s *Side, u model.Unit, own bool) {
	s.All = append(s.All, u)

	if u.Structure {
		if own && u.IsPlaceholder() {
			s.Placeholders = append(s.Placeholders, u)
			return
		}
		s.Structures = append(s.Structures, u)
		switch {
		case u.IsTownhall():
			s.Townhalls = append(s.Townhalls, u)
		case u.IsGasBuilding():
			s.GasBuildings = append(s.GasBuildings, u)
		}
		return
	}

	s.Units = append(s.Units, u)
	switch {
	case u.IsWorker():
		s.Workers = append(s.Workers, u)
	case u.TypeID == model.UnitLarva:
		s.Larvas = append(s.Larvas, u)
	}
}
