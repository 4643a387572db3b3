package runner

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML run configuration consumed by the cmd binaries.
type Config struct {
	EnginePath string `yaml:"engine_path"`
	MapPath    string `yaml:"map_path"`
	Realtime   bool   `yaml:"realtime"`
	StepSize   uint32 `yaml:"step_size"`
	DisableFog bool   `yaml:"disable_fog"`
	ReplayPath string `yaml:"replay_path"`
	// LaunchTimeoutSeconds bounds waiting for the engine websocket.
	LaunchTimeoutSeconds int `yaml:"launch_timeout_seconds"`
}

func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.EnginePath == "" {
		return nil, fmt.Errorf("config %s: engine_path is required", path)
	}
	if cfg.MapPath == "" {
		return nil, fmt.Errorf("config %s: map_path is required", path)
	}
	return &cfg, nil
}

// Options translates the file values into run options.
func (c *Config) Options() Options {
	return Options{
		EnginePath:    c.EnginePath,
		MapPath:       c.MapPath,
		Realtime:      c.Realtime,
		StepSize:      c.StepSize,
		DisableFog:    c.DisableFog,
		SaveReplayAs:  c.ReplayPath,
		LaunchTimeout: time.Duration(c.LaunchTimeoutSeconds) * time.Second,
	}
}
