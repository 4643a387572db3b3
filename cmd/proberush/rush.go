package main

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"stormlink/bot"
	"stormlink/model"
	"stormlink/runner"
	"stormlink/units"
)

// stepEnv is what the trigger conditions see. Global fields describe the
// tick; the per-worker fields are filled in before each retreat check.
type stepEnv struct {
	Iteration int
	Minerals  int
	Workers   int

	Shield      float64
	ShieldMax   float64
	Cooldown    float64
	MaxCooldown float64
}

// workerRush throws every worker at the enemy start from tick one,
// rotating hurt workers back to a safe mineral patch until their shields
// recover. Triggers are expr conditions so thresholds live in config, not
// code.
type workerRush struct {
	cfg     *Config
	commit  *vm.Program
	retreat *vm.Program

	// backMineral is the patch furthest from the enemy, where retreating
	// workers regenerate out of harm's way.
	backMineral uint64
}

func newWorkerRush(cfg *Config) (*workerRush, error) {
	commit, err := expr.Compile(cfg.CommitWhen, expr.Env(stepEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile commit_when: %w", err)
	}
	retreat, err := expr.Compile(cfg.RetreatWhen, expr.Env(stepEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile retreat_when: %w", err)
	}
	return &workerRush{cfg: cfg, commit: commit, retreat: retreat}, nil
}

func (w *workerRush) Settings() runner.PlayerSettings {
	return runner.PlayerSettings{Race: w.cfg.Race, Name: w.cfg.Name}
}

func (w *workerRush) OnStart(b *bot.Bot) error {
	b.Commander.Chat("glhf", false)

	townhalls := b.Units.My.Townhalls
	if !townhalls.IsEmpty() {
		b.Train(&townhalls[0], model.RaceWorker(b.Race), false)
	}

	minerals := b.Units.MineralFields.CloserThan(11, b.StartLocation)
	var back *model.Unit
	for i := range minerals {
		if back == nil || minerals[i].Pos.DistanceSquared(b.EnemyStart) > back.Pos.DistanceSquared(b.EnemyStart) {
			back = &minerals[i]
		}
	}
	if back != nil {
		w.backMineral = back.Tag
	}

	workers := b.Units.My.Workers
	for i := range workers {
		b.Attack(&workers[i], model.TargetAt(b.EnemyStart), false)
	}
	slog.Info("rush launched", "workers", workers.Len(), "enemy_start", b.EnemyStart)
	return nil
}

func (w *workerRush) OnStep(b *bot.Bot, iteration int) error {
	workers := b.Units.My.Workers
	targets := w.pickTargets(b)

	env := stepEnv{
		Iteration: iteration,
		Minerals:  int(b.State.Minerals),
		Workers:   workers.Len(),
	}
	commit, err := evalBool(w.commit, env)
	if err != nil {
		return fmt.Errorf("commit_when: %w", err)
	}

	workerType := model.RaceWorker(b.Race)
	for i := range workers {
		u := &workers[i]
		env.Shield = optional(u.Shield)
		env.ShieldMax = optional(u.ShieldMax)
		env.Cooldown = optional(u.WeaponCooldown)
		env.MaxCooldown = 0
		if maxCD, ok := b.Cooldowns.Max(workerType); ok {
			env.MaxCooldown = float64(maxCD)
		}

		hurt, err := evalBool(w.retreat, env)
		if err != nil {
			return fmt.Errorf("retreat_when: %w", err)
		}
		switch {
		case hurt && w.backMineral != 0:
			b.Gather(u, w.backMineral, false)
		case !targets.IsEmpty():
			if t, ok := targets.Closest(u.Pos); ok {
				b.Attack(u, model.TargetUnit(t.Tag), false)
			}
		case commit:
			b.Attack(u, model.TargetAt(b.EnemyStart), false)
		}
	}
	return nil
}

// pickTargets prefers enemy ground units, falling back to structures once
// nothing else remains.
func (w *workerRush) pickTargets(b *bot.Bot) units.Collection {
	ground := b.Units.Enemy.Units.Filter(func(u *model.Unit) bool { return !u.IsFlying })
	if !ground.IsEmpty() {
		return ground
	}
	return b.Units.Enemy.Structures
}

func (w *workerRush) OnEvent(b *bot.Bot, ev bot.Event) error {
	if ev.Kind == bot.EventUnitDestroyed {
		slog.Debug("unit destroyed", "tag", ev.Tag)
	}
	return nil
}

func (w *workerRush) OnEnd(result model.GameResult) error {
	slog.Info("game over", "result", result)
	return nil
}

func evalBool(prog *vm.Program, env stepEnv) (bool, error) {
	out, err := vm.Run(prog, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("condition returned %T, want bool", out)
	}
	return b, nil
}

func optional(f *float32) float64 {
	if f == nil {
		return 0
	}
	return float64(*f)
}
