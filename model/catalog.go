package model

// Race of a participant.
type Race string

const (
	Terran  Race = "terran"
	Zerg    Race = "zerg"
	Protoss Race = "protoss"
	Random  Race = "random"
)

// GameResult is the engine's verdict for one participant at game end.
type GameResult string

const (
	Victory   GameResult = "victory"
	Defeat    GameResult = "defeat"
	Tie       GameResult = "tie"
	Undecided GameResult = "undecided"
)

// UnitTypeData is one static catalog entry exchanged during the handshake.
type UnitTypeData struct {
	ID           UnitTypeID `json:"id"`
	Name         string     `json:"name"`
	Ability      AbilityID  `json:"ability,omitempty"` // creation ability, 0 if none
	Race         Race       `json:"race,omitempty"`
	FoodRequired float32    `json:"food_required,omitempty"`
	MineralCost  uint32     `json:"mineral_cost,omitempty"`
	VespeneCost  uint32     `json:"vespene_cost,omitempty"`
	Attributes   []string   `json:"attributes,omitempty"`
}

// AbilityData is one static ability catalog entry.
type AbilityData struct {
	ID            AbilityID `json:"id"`
	Name          string    `json:"name"`
	RequiresPoint bool      `json:"requires_point,omitempty"`
}

// Catalog indexes the static game data. Built once after the handshake and
// shared by reference between sessions; it never mutates afterwards.
type Catalog struct {
	units     map[UnitTypeID]UnitTypeData
	abilities map[AbilityID]AbilityData
}

func NewCatalog(units []UnitTypeData, abilities []AbilityData) *Catalog {
	c := &Catalog{
		units:     make(map[UnitTypeID]UnitTypeData, len(units)),
		abilities: make(map[AbilityID]AbilityData, len(abilities)),
	}
	for _, u := range units {
		c.units[u.ID] = u
	}
	for _, a := range abilities {
		c.abilities[a.ID] = a
	}
	return c
}

func (c *Catalog) Unit(t UnitTypeID) (UnitTypeData, bool) {
	u, ok := c.units[t]
	return u, ok
}

func (c *Catalog) Ability(a AbilityID) (AbilityData, bool) {
	d, ok := c.abilities[a]
	return d, ok
}

// CreationAbility returns the ability that builds or trains the given type.
func (c *Catalog) CreationAbility(t UnitTypeID) (AbilityID, bool) {
	u, ok := c.units[t]
	if !ok || u.Ability == 0 {
		return 0, false
	}
	return u.Ability, true
}
