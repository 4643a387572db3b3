package model

// Alliance is the ownership classification of a unit.
type Alliance string

const (
	AllianceOwn     Alliance = "own"
	AllianceAlly    Alliance = "ally"
	AllianceNeutral Alliance = "neutral"
	AllianceEnemy   Alliance = "enemy"
)

// DisplayType tells how the unit is observed this tick.
type DisplayType string

const (
	// DisplayVisible means the unit is fully observed; all fields are valid.
	DisplayVisible DisplayType = "visible"
	// DisplaySnapshot is a fog-of-war memory of a unit no longer in view;
	// most optional fields are absent.
	DisplaySnapshot DisplayType = "snapshot"
	// DisplayHidden is a detected but not visible unit.
	DisplayHidden DisplayType = "hidden"
	// DisplayPlaceholder marks a structure position reserved before
	// construction begins.
	DisplayPlaceholder DisplayType = "placeholder"
)

// UnitOrder is one entry of a unit's current order queue.
type UnitOrder struct {
	Ability  AbilityID `json:"ability"`
	Target   Target    `json:"target"`
	Progress float32   `json:"progress,omitempty"`
}

// Unit is any game object with a stable tag: unit, structure or resource.
//
// Pointer fields are only populated when the alliance and visibility permit
// observing them. Absence is meaningful ("not observable this tick"), never
// an error; enemy snapshots and fogged memories simply omit detail.
type Unit struct {
	Tag         uint64      `json:"tag"`
	TypeID      UnitTypeID  `json:"type_id"`
	Alliance    Alliance    `json:"alliance"`
	Pos         Point       `json:"pos"`
	DisplayType DisplayType `json:"display_type"`
	Structure   bool        `json:"structure,omitempty"`

	Health         *float32 `json:"health,omitempty"`
	HealthMax      *float32 `json:"health_max,omitempty"`
	Shield         *float32 `json:"shield,omitempty"`
	ShieldMax      *float32 `json:"shield_max,omitempty"`
	Energy         *float32 `json:"energy,omitempty"`
	WeaponCooldown *float32 `json:"weapon_cooldown,omitempty"`
	BuildProgress  float32  `json:"build_progress,omitempty"`

	Orders             []UnitOrder `json:"orders,omitempty"`
	CargoUsed          *int32      `json:"cargo_used,omitempty"`
	AssignedHarvesters *int32      `json:"assigned_harvesters,omitempty"`
	IdealHarvesters    *int32      `json:"ideal_harvesters,omitempty"`
	MineralContents    *int32      `json:"mineral_contents,omitempty"`
	VespeneContents    *int32      `json:"vespene_contents,omitempty"`

	IsFlying        bool `json:"is_flying,omitempty"`
	IsBurrowed      bool `json:"is_burrowed,omitempty"`
	IsHallucination bool `json:"is_hallucination,omitempty"`

	// AvailableAbilities is merged from the per-step availability query
	// before the decision callback runs. Not part of the wire snapshot.
	AvailableAbilities map[AbilityID]bool `json:"-"`
}

func (u *Unit) IsMine() bool  { return u.Alliance == AllianceOwn }
func (u *Unit) IsEnemy() bool { return u.Alliance == AllianceEnemy }

// IsReady reports whether construction has finished.
func (u *Unit) IsReady() bool { return u.BuildProgress >= 1 }

func (u *Unit) IsPlaceholder() bool { return u.DisplayType == DisplayPlaceholder }

func (u *Unit) IsIdle() bool { return len(u.Orders) == 0 }

// FirstOrder returns the currently executing order, if any.
func (u *Unit) FirstOrder() (UnitOrder, bool) {
	if len(u.Orders) == 0 {
		return UnitOrder{}, false
	}
	return u.Orders[0], true
}

func (u *Unit) IsTownhall() bool    { return IsTownhall(u.TypeID) }
func (u *Unit) IsWorker() bool      { return IsWorker(u.TypeID) }
func (u *Unit) IsGasBuilding() bool { return IsGasBuilding(u.TypeID) }
func (u *Unit) IsGeyser() bool      { return IsVespeneGeyser(u.TypeID) }
func (u *Unit) IsMineral() bool     { return IsMineralField(u.TypeID) }

// HasAbility reports whether the availability query listed the ability for
// this unit this tick. Always false before the merge.
func (u *Unit) HasAbility(a AbilityID) bool {
	return u.AvailableAbilities[a]
}

// Hits returns health plus shield when both observable.
func (u *Unit) Hits() (float32, bool) {
	if u.Health == nil {
		return 0, false
	}
	h := *u.Health
	if u.Shield != nil {
		h += *u.Shield
	}
	return h, true
}

// OnCooldown reports whether the unit's weapon is rearming. Unknown
// cooldown counts as ready, matching how fogged units are treated.
func (u *Unit) OnCooldown() bool {
	return u.WeaponCooldown != nil && *u.WeaponCooldown > 0
}
