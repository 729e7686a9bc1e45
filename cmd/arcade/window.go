package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton-arcade/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play at the field's native resolution.

Controls:
  Arrows/WASD  - Move (diagonals allowed)
  Space        - Fire a beam
  P/Esc        - Pause
  Q            - Quit

The window closes session.loss_delay after a loss.

Examples:
  arcade window
  arcade window --record --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	windowCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the session into the replays database")
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg := loadConfig(flagConfig)
	if flagFPS > 0 {
		cfg.Session.TickRate = flagFPS
	}

	opts := desktop.Options{Record: flagRecord, Logger: logger}
	if flagRecord {
		opts.Store = openStore(false)
	}

	seed := resolveSeed()
	logger.Debug("opening window", "seed", seed, "tick_rate", cfg.Session.TickRate)

	runErr := desktop.Run(cfg, seed, opts)

	if opts.Store != nil {
		opts.Store.Close()
	}

	if runErr != nil {
		logger.Error("window failed", "error", runErr)
		os.Exit(1)
	}
}
