// Package main is the entry point for CubeDrop.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cubedrop/internal/config"
	"github.com/Faultbox/cubedrop/internal/game"
	"github.com/Faultbox/cubedrop/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Save config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	code := run(cfg)
	logger.Sync()
	os.Exit(code)
}

func run(cfg *config.Config) int {
	logger.Info("=== CubeDrop ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		return 1
	}

	runErr := g.Run()
	if err := g.Close(); err != nil {
		logger.Error("teardown failed", zap.Error(err))
	}
	if runErr != nil {
		logger.Error("main loop error", zap.Error(runErr))
		return 1
	}

	logger.Info("closed normally")
	return 0
}
