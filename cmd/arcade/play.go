package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton-arcade/internal/games/kokaton"
	"github.com/vovakirdan/kokaton-arcade/internal/platform/tui"
	"github.com/vovakirdan/kokaton-arcade/internal/registry"
)

var (
	flagConfig string
	flagRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Arrows/WASD  - Move (diagonals allowed)
  Space        - Fire a beam
  P/Esc        - Pause
  R            - Restart (after the game ends)
  Q/Ctrl+C     - Quit

Terminals report key presses but not releases, so a press moves the bird
for terminal.hold_ticks ticks; keep the key down to keep moving.

Examples:
  arcade play kokaton
  arcade play kokaton --seed 42 --record
  arcade play kokaton --config ./my-kokaton.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the session into the replays database")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := loadConfig(flagConfig)
	kokaton.SetConfigPath(flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("cannot create game", "game", gameID, "error", err)
		os.Exit(1)
	}

	opts := tui.Options{
		Record:    flagRecord,
		Config:    cfg,
		HoldTicks: cfg.Terminal.HoldTicks,
		LossDelay: cfg.Session.LossDelay,
		Logger:    logger,
	}
	if flagRecord {
		opts.Store = openStore(false)
	}

	rt := runtimeConfig(cfg)
	logger.Debug("starting game", "game", gameID, "seed", rt.Seed, "tick_rate", rt.TickRate)

	runErr := tui.Run(game, rt, opts)

	// Close store before potential exit
	if opts.Store != nil {
		opts.Store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		os.Exit(1)
	}
}
