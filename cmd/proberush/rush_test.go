package main

import (
	"testing"

	"stormlink/bot"
	"stormlink/model"
	"stormlink/protocol"
)

type nullAPI struct{}

func (nullAPI) RoundTrip(*protocol.Request) (*protocol.Response, error) {
	return &protocol.Response{}, nil
}

func f32(v float32) *float32 { return &v }

func rushBot(t *testing.T, units []model.Unit) *bot.Bot {
	t.Helper()
	b := bot.New(nullAPI{})
	b.Race = model.Protoss
	b.StartLocation = model.Pt(20, 20)
	b.EnemyStart = model.Pt(140, 140)
	b.ApplySnapshot(&model.Snapshot{Minerals: 50, Units: units})
	b.Refresh()
	return b
}

func TestDefaultConditionsCompile(t *testing.T) {
	if _, err := newWorkerRush(defaultConfig()); err != nil {
		t.Fatalf("default trigger conditions must compile: %v", err)
	}
}

func TestBadConditionFailsFast(t *testing.T) {
	cfg := defaultConfig()
	cfg.RetreatWhen = `Shield <`
	if _, err := newWorkerRush(cfg); err == nil {
		t.Fatal("invalid expr must be rejected at startup")
	}
}

func TestHealthyWorkerAttacksClosestTarget(t *testing.T) {
	w, err := newWorkerRush(defaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	b := rushBot(t, []model.Unit{
		{Tag: 1, TypeID: model.UnitProbe, Alliance: model.AllianceOwn,
			DisplayType: model.DisplayVisible, Pos: model.Pt(130, 130),
			Shield: f32(20), ShieldMax: f32(20)},
		{Tag: 2, TypeID: model.UnitSCV, Alliance: model.AllianceEnemy,
			DisplayType: model.DisplayVisible, Pos: model.Pt(132, 132)},
		{Tag: 3, TypeID: model.UnitSCV, Alliance: model.AllianceEnemy,
			DisplayType: model.DisplayVisible, Pos: model.Pt(145, 145)},
	})

	if err := w.OnStep(b, 10); err != nil {
		t.Fatal(err)
	}
	actions := b.Commander.Flush()
	if len(actions) != 1 {
		t.Fatalf("expected one attack action, got %d", len(actions))
	}
	cmd := actions[0].UnitCommand
	if cmd.Ability != model.AbilityAttack || cmd.TargetTag == nil || *cmd.TargetTag != 2 {
		t.Errorf("command = %+v, want attack on the closest enemy (tag 2)", cmd)
	}
}

func TestHurtWorkerRetreatsToBackMineral(t *testing.T) {
	w, err := newWorkerRush(defaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	w.backMineral = 50

	b := rushBot(t, []model.Unit{
		{Tag: 1, TypeID: model.UnitProbe, Alliance: model.AllianceOwn,
			DisplayType: model.DisplayVisible, Pos: model.Pt(130, 130),
			Shield: f32(2), ShieldMax: f32(20)},
		{Tag: 2, TypeID: model.UnitSCV, Alliance: model.AllianceEnemy,
			DisplayType: model.DisplayVisible, Pos: model.Pt(132, 132)},
	})

	if err := w.OnStep(b, 10); err != nil {
		t.Fatal(err)
	}
	actions := b.Commander.Flush()
	if len(actions) != 1 {
		t.Fatalf("expected one gather action, got %d", len(actions))
	}
	cmd := actions[0].UnitCommand
	if cmd.Ability != model.AbilityHarvestGather || cmd.TargetTag == nil || *cmd.TargetTag != 50 {
		t.Errorf("command = %+v, want gather on the back mineral", cmd)
	}
}

func TestTargetsFallBackToStructures(t *testing.T) {
	w, err := newWorkerRush(defaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	b := rushBot(t, []model.Unit{
		{Tag: 1, TypeID: model.UnitProbe, Alliance: model.AllianceOwn,
			DisplayType: model.DisplayVisible, Pos: model.Pt(130, 130),
			Shield: f32(20), ShieldMax: f32(20)},
		{Tag: 4, TypeID: model.UnitCommandCenter, Alliance: model.AllianceEnemy,
			Structure: true, BuildProgress: 1,
			DisplayType: model.DisplayVisible, Pos: model.Pt(140, 140)},
	})

	if err := w.OnStep(b, 10); err != nil {
		t.Fatal(err)
	}
	actions := b.Commander.Flush()
	if len(actions) != 1 {
		t.Fatalf("expected one attack action, got %d", len(actions))
	}
	cmd := actions[0].UnitCommand
	if cmd.TargetTag == nil || *cmd.TargetTag != 4 {
		t.Errorf("command = %+v, want attack on the structure", cmd)
	}
}
