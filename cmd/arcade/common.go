package main

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/kokaton-arcade/internal/config"
	"github.com/vovakirdan/kokaton-arcade/internal/core"
	"github.com/vovakirdan/kokaton-arcade/internal/storage"
)

// loadConfig loads and validates the game config, exiting on failure.
// A malformed config never starts a session.
func loadConfig(path string) config.KokatonConfig {
	cfg, err := config.LoadKokaton(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Error("cannot load config", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "path", path, "hazards", cfg.Hazards.Count, "tick_rate", cfg.Session.TickRate)
	return cfg
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig(cfg config.KokatonConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	tickRate := cfg.Session.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     resolveSeed(),
	}
}

// resolveSeed returns --seed, or a time-based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openStore opens the replay database. When recording is requested and the
// database cannot be opened the game still runs, without recording.
func openStore(required bool) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		if required {
			logger.Error("cannot open replays database", "path", flagDBPath, "error", err)
			os.Exit(1)
		}
		logger.Warn("cannot open replays database, recording disabled", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
