package bot

import (
	"testing"

	"stormlink/model"
	"stormlink/units"
)

func TestClusterResourcesTwoClusters(t *testing.T) {
	points := []model.Point{
		// Cluster near (20,20), members 5 apart.
		model.Pt(20, 20), model.Pt(25, 20), model.Pt(20, 25),
		// Second cluster 20 away.
		model.Pt(40, 40), model.Pt(44, 40),
	}
	groups := clusterResources(points)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	sizes := map[int]bool{len(groups[0]): true, len(groups[1]): true}
	if !sizes[3] || !sizes[2] {
		t.Errorf("group sizes %d/%d, want 3 and 2", len(groups[0]), len(groups[1]))
	}
}

func TestClusterResourcesTransitiveChain(t *testing.T) {
	// A and C are over the threshold apart but both within it of B. The
	// input order makes the greedy pass split them; only the merge pass
	// folds the chain into one group.
	points := []model.Point{
		model.Pt(0, 0),  // A
		model.Pt(16, 0), // C: 16 from A, over threshold
		model.Pt(8, 0),  // B: 8 from both, joins A's group greedily
	}
	groups := clusterResources(points)
	if len(groups) != 1 {
		t.Fatalf("chained points split into %d groups, want 1", len(groups))
	}
	if len(groups[0]) != 3 {
		t.Errorf("merged group has %d points, want 3", len(groups[0]))
	}
}

func TestClusterResourcesThresholdIsStrict(t *testing.T) {
	// Exactly at the spread distance: 8.5 apart squares to 72.25, which is
	// not strictly inside the threshold.
	groups := clusterResources([]model.Point{model.Pt(0, 0), model.Pt(8.5, 0)})
	if len(groups) != 2 {
		t.Fatalf("points exactly at the threshold must not cluster; got %d groups", len(groups))
	}

	groups = clusterResources([]model.Point{model.Pt(0, 0), model.Pt(8.4, 0)})
	if len(groups) != 1 {
		t.Fatalf("points just inside the threshold must cluster; got %d groups", len(groups))
	}
}

func TestLocateExpansions(t *testing.T) {
	api := &fakeAPI{handle: placementAnswer(func(model.Point) model.ActionResult {
		return model.ResultSuccess
	})}

	b := New(api)
	b.Race = model.Protoss
	b.Data = model.NewCatalog([]model.UnitTypeData{
		{ID: model.UnitNexus, Name: "Nexus", Ability: model.AbilityBuildNexus},
	}, nil)
	b.StartLocation = model.Pt(20, 20)
	b.StartCenter = model.Pt(21.5, 21.5)
	b.EnemyStart = model.Pt(140, 140)
	b.EnemyStartCenter = model.Pt(138.5, 138.5)

	mineral := func(tag uint64, typeID model.UnitTypeID, x, y float32) model.Unit {
		return model.Unit{Tag: tag, TypeID: typeID, Alliance: model.AllianceNeutral, Pos: model.Pt(x, y)}
	}
	b.Units = units.Classify([]model.Unit{
		// Own main's cluster.
		mineral(1, model.UnitMineralField, 23, 20),
		mineral(2, model.UnitMineralField, 20, 23),
		mineral(3, model.UnitVespeneGeyser, 24, 24),
		// A free expansion halfway across.
		mineral(4, model.UnitMineralField, 70, 70),
		mineral(5, model.UnitMineralField750, 74, 70),
		// Depleted patch far from everything; must not found an expansion.
		mineral(6, model.UnitMineralField450, 100, 20),
	}, nil)

	if err := b.locateExpansions(); err != nil {
		t.Fatal(err)
	}
	if len(b.Expansions) != 2 {
		t.Fatalf("found %d expansions, want 2", len(b.Expansions))
	}

	var ownMain, remote *Expansion
	for i := range b.Expansions {
		if b.Expansions[i].Loc == b.StartLocation {
			ownMain = &b.Expansions[i]
		} else {
			remote = &b.Expansions[i]
		}
	}
	if ownMain == nil {
		t.Fatal("the cluster at the start center must map to the start location")
	}
	if ownMain.Center != b.StartCenter {
		t.Errorf("own main center = %v, want %v", ownMain.Center, b.StartCenter)
	}
	if remote == nil {
		t.Fatal("remote cluster missing")
	}
	// The placement fake accepts everything, so the location is the
	// snapped cluster centroid.
	if want := (model.Pt(72.5, 70.5)); remote.Loc != want {
		t.Errorf("remote location = %v, want %v", remote.Loc, want)
	}
}
