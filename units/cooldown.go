package units

import "stormlink/model"

// CooldownTracker accumulates, per unit type, the maximum weapon cooldown
// ever observed on an own unit. Unlike classification it survives across
// steps for the whole session; the map only ever grows upward, which lets
// decision logic estimate "nearly off cooldown" without static weapon data.
type CooldownTracker struct {
	max map[model.UnitTypeID]float32
}

func NewCooldownTracker() *CooldownTracker {
	return &CooldownTracker{max: make(map[model.UnitTypeID]float32)}
}

// Observe records the unit's cooldown if it is observable and exceeds the
// known maximum for its type.
func (t *CooldownTracker) Observe(u *model.Unit) {
	if u.WeaponCooldown == nil {
		return
	}
	cd := *u.WeaponCooldown
	if cur, ok := t.max[u.TypeID]; !ok || cd > cur {
		t.max[u.TypeID] = cd
	}
}

// Max returns the highest cooldown seen for the type this session.
func (t *CooldownTracker) Max(typeID model.UnitTypeID) (float32, bool) {
	cd, ok := t.max[typeID]
	return cd, ok
}
