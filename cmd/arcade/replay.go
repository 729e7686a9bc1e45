package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton-arcade/internal/core"
	"github.com/vovakirdan/kokaton-arcade/internal/platform/tui"
	"github.com/vovakirdan/kokaton-arcade/internal/replay"
	"github.com/vovakirdan/kokaton-arcade/internal/storage"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch a recorded replay",
	Long: `Play back a recorded session. The ID may be any unique prefix.

With --headless the replay runs without a display as fast as possible and
the result is checked against what was recorded.

Examples:
  arcade replay 3f2a9c1e
  arcade replay 3f2a9c1e --headless`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a display and print the result")
}

func runReplay(cmd *cobra.Command, args []string) {
	store := openStore(true)
	defer store.Close()

	if flagHeadless {
		verifyReplay(store, args[0])
		return
	}
	watchReplay(store, args[0])
}

// watchReplay plays a stored replay in the terminal.
func watchReplay(store *storage.Store, id string) {
	rec, err := replay.Load(store, id)
	if err != nil {
		logger.Error("cannot load replay", "id", id, "error", err)
		os.Exit(1)
	}

	rt := runtimeConfig(rec.Config)
	if err := tui.RunPlayback(rec, rt); err != nil {
		logger.Error("playback failed", "error", err)
		os.Exit(1)
	}
}

// verifyReplay re-runs a replay headless and compares it with the stored result.
func verifyReplay(store *storage.Store, id string) {
	row, err := store.LoadReplay(id)
	if err != nil {
		logger.Error("cannot load replay", "id", id, "error", err)
		os.Exit(1)
	}
	rec, err := replay.FromStorage(row)
	if err != nil {
		logger.Error("cannot decode replay", "id", row.ID, "error", err)
		os.Exit(1)
	}

	res, err := replay.Run(rec)
	if err != nil {
		logger.Error("cannot run replay", "id", row.ID, "error", err)
		os.Exit(1)
	}

	outcome := replay.OutcomeOf(res.State)
	fmt.Printf("Replay  %s\n", row.ID)
	fmt.Printf("Seed    %d\n", row.Seed)
	fmt.Printf("Frames  %d\n", res.Steps)
	fmt.Printf("Ticks   %d\n", res.Ticks)
	fmt.Printf("Outcome %s\n", outcome)
	fmt.Printf("Score   %d\n", res.State.Score)

	if !matches(row, res.State, res.Ticks) {
		logger.Error("replay diverged from the recording",
			"recorded_outcome", row.Outcome, "recorded_score", row.Score, "recorded_ticks", row.Ticks)
		os.Exit(1)
	}
	logger.Info("replay verified", "id", row.ID)
}

func matches(row *storage.Replay, state core.GameState, ticks int) bool {
	return row.Outcome == replay.OutcomeOf(state) && row.Score == state.Score && row.Ticks == ticks
}
