package units

import (
	"testing"

	"stormlink/model"
)

func unit(tag uint64, typeID model.UnitTypeID, alliance model.Alliance) model.Unit {
	return model.Unit{
		Tag:         tag,
		TypeID:      typeID,
		Alliance:    alliance,
		DisplayType: model.DisplayVisible,
	}
}

func structure(tag uint64, typeID model.UnitTypeID, alliance model.Alliance) model.Unit {
	u := unit(tag, typeID, alliance)
	u.Structure = true
	u.BuildProgress = 1
	return u
}

func TestClassifyBuckets(t *testing.T) {
	nexus := structure(1, model.UnitNexus, model.AllianceOwn)
	gateway := structure(2, model.UnitGateway, model.AllianceOwn)
	probe := unit(3, model.UnitProbe, model.AllianceOwn)
	assim := structure(4, model.UnitAssimilator, model.AllianceOwn)

	placeholder := structure(5, model.UnitPylon, model.AllianceOwn)
	placeholder.DisplayType = model.DisplayPlaceholder

	enemyCC := structure(6, model.UnitCommandCenter, model.AllianceEnemy)
	enemySCV := unit(7, model.UnitSCV, model.AllianceEnemy)
	larva := unit(8, model.UnitLarva, model.AllianceEnemy)

	mineral := unit(9, model.UnitMineralField, model.AllianceNeutral)
	geyser := unit(10, model.UnitVespeneGeyser, model.AllianceNeutral)
	tower := unit(11, model.UnitXelNagaTower, model.AllianceNeutral)
	rock := unit(12, 999, model.AllianceNeutral)

	g := Classify([]model.Unit{
		nexus, gateway, probe, assim, placeholder,
		enemyCC, enemySCV, larva,
		mineral, geyser, tower, rock,
	}, nil)

	tags := func(c Collection) []uint64 { return c.Tags() }
	tests := []struct {
		name string
		got  []uint64
		want []uint64
	}{
		{"my all", tags(g.My.All), []uint64{1, 2, 3, 4, 5}},
		{"my structures", tags(g.My.Structures), []uint64{1, 2, 4}},
		{"my townhalls", tags(g.My.Townhalls), []uint64{1}},
		{"my gas buildings", tags(g.My.GasBuildings), []uint64{4}},
		{"my workers", tags(g.My.Workers), []uint64{3}},
		{"my units", tags(g.My.Units), []uint64{3}},
		{"my placeholders", tags(g.My.Placeholders), []uint64{5}},
		{"enemy structures", tags(g.Enemy.Structures), []uint64{6}},
		{"enemy townhalls", tags(g.Enemy.Townhalls), []uint64{6}},
		{"enemy workers", tags(g.Enemy.Workers), []uint64{7}},
		{"enemy larvas", tags(g.Enemy.Larvas), []uint64{8}},
		{"mineral fields", tags(g.MineralFields), []uint64{9}},
		{"vespene geysers", tags(g.VespeneGeysers), []uint64{10}},
		{"resources", tags(g.Resources), []uint64{9, 10}},
		{"watchtowers", tags(g.Watchtowers), []uint64{11}},
		{"destructables", tags(g.Destructables), []uint64{12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !equalTags(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	// A townhall is both a structure and a townhall, never a plain unit.
	if len(g.My.Units.FindTags([]uint64{1})) != 0 {
		t.Error("townhall leaked into the non-structure bucket")
	}
}

func TestClassifyPlaceholderOwnOnly(t *testing.T) {
	enemyGhost := structure(1, model.UnitBarracks, model.AllianceEnemy)
	enemyGhost.DisplayType = model.DisplayPlaceholder

	g := Classify([]model.Unit{enemyGhost}, nil)
	if g.Enemy.Placeholders.Len() != 0 {
		t.Error("placeholder bucket must only hold own units")
	}
	if g.Enemy.Structures.Len() != 1 {
		t.Error("enemy placeholder-displayed structure should still classify as structure")
	}
}

func TestCooldownTrackerMonotonic(t *testing.T) {
	cd := func(v float32) *float32 { return &v }

	tr := NewCooldownTracker()
	marine := model.Unit{TypeID: model.UnitSCV, Alliance: model.AllianceOwn}

	steps := []struct {
		observed *float32
		wantMax  float32
		wantOK   bool
	}{
		{nil, 0, false},
		{cd(10), 10, true},
		{cd(4), 10, true},
		{cd(15), 15, true},
		{cd(0), 15, true},
	}
	for i, s := range steps {
		marine.WeaponCooldown = s.observed
		tr.Observe(&marine)
		got, ok := tr.Max(model.UnitSCV)
		if ok != s.wantOK || got != s.wantMax {
			t.Fatalf("step %d: Max = (%v, %v), want (%v, %v)", i, got, ok, s.wantMax, s.wantOK)
		}
	}
}

func TestClassifyFeedsCooldowns(t *testing.T) {
	cd := float32(7)
	mine := unit(1, model.UnitProbe, model.AllianceOwn)
	mine.WeaponCooldown = &cd
	theirs := unit(2, model.UnitProbe, model.AllianceEnemy)
	theirs.WeaponCooldown = &cd

	tr := NewCooldownTracker()
	Classify([]model.Unit{theirs}, tr)
	if _, ok := tr.Max(model.UnitProbe); ok {
		t.Fatal("enemy cooldowns must not feed the tracker")
	}
	Classify([]model.Unit{mine}, tr)
	if got, ok := tr.Max(model.UnitProbe); !ok || got != 7 {
		t.Fatalf("Max = (%v, %v), want (7, true)", got, ok)
	}
}

func equalTags(got, want []uint64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
