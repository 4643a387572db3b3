package main

import (
	"flag"
	"log/slog"
	"os"

	"stormlink/protocol"
	"stormlink/runner"
)

func main() {
	configPath := flag.String("config", "proberush.yaml", "path to the run configuration")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	player, err := newWorkerRush(cfg)
	if err != nil {
		slog.Error("failed to build player", "error", err)
		os.Exit(1)
	}

	slog.Info("starting proberush",
		"map", cfg.Run.MapPath,
		"race", cfg.Race,
		"opponent", cfg.OpponentRace,
		"difficulty", cfg.OpponentDifficulty,
	)

	computer := runner.Computer{
		Race:       cfg.OpponentRace,
		Difficulty: cfg.OpponentDifficulty,
	}
	if computer.Difficulty == "" {
		computer.Difficulty = protocol.DifficultyMedium
	}
	if err := runner.RunVsComputer(player, computer, cfg.Run.Options()); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
