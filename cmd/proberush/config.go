package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"stormlink/model"
	"stormlink/protocol"
	"stormlink/runner"
)

// Config drives one proberush run. Trigger conditions are expr source
// compiled at startup; invalid expressions fail fast, before any engine
// process is launched.
type Config struct {
	Run runner.Config `yaml:"run"`

	Race model.Race `yaml:"race"`
	Name string     `yaml:"name"`

	OpponentRace       model.Race          `yaml:"opponent_race"`
	OpponentDifficulty protocol.Difficulty `yaml:"opponent_difficulty"`

	// CommitWhen gates sending idle workers back into the attack.
	CommitWhen string `yaml:"commit_when"`
	// RetreatWhen sends a worker back to mining for shield regeneration.
	RetreatWhen string `yaml:"retreat_when"`
}

func defaultConfig() *Config {
	return &Config{
		Race:               model.Protoss,
		Name:               "proberush",
		OpponentRace:       model.Random,
		OpponentDifficulty: protocol.DifficultyMedium,
		CommitWhen:         `Minerals >= 0`,
		RetreatWhen:        `(ShieldMax > 0 && Shield / ShieldMax < 0.5) || (MaxCooldown > 0 && Cooldown > MaxCooldown * 0.25)`,
	}
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Run.EnginePath == "" {
		return nil, fmt.Errorf("config %s: run.engine_path is required", path)
	}
	if cfg.Run.MapPath == "" {
		return nil, fmt.Errorf("config %s: run.map_path is required", path)
	}
	return cfg, nil
}
