// arcade runs Fight Kokaton in the terminal or in a desktop window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade window            - Play in a desktop window
//	arcade replays [game]    - Browse recorded replays
//	arcade replay <id>       - Watch a recorded replay
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: the config's tick rate)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/replays.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/kokaton-arcade/internal/games/kokaton"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "arcade",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Fight Kokaton - dodge and shoot bouncing bombs",
	Long: `Fight Kokaton is a small arcade game: steer the bird around the field,
dodge the bouncing bombs and shoot them down with beams.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  window   - Play in a desktop window
  replays  - Browse recorded replays
  replay   - Watch or verify a recorded replay

Examples:
  arcade list
  arcade play kokaton
  arcade play kokaton --record --seed 42
  arcade window --config ./my-kokaton.yaml
  arcade replays
  arcade replay 3f2a9c1e --headless`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (default: session.tick_rate from the config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/replays.db", "Path to replays database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}
