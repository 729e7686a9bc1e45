package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kokaton-arcade/internal/games/kokaton"
	"github.com/vovakirdan/kokaton-arcade/internal/platform/tui"
	"github.com/vovakirdan/kokaton-arcade/internal/registry"
	"github.com/vovakirdan/kokaton-arcade/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var replaysCmd = &cobra.Command{
	Use:   "replays [game]",
	Short: "Browse recorded replays",
	Long: `List the replays recorded with --record, newest first.

On a terminal an interactive browser opens: Enter watches the selected
replay, x deletes it. Use --plain (or redirect the output) for a listing.

Examples:
  arcade replays
  arcade replays kokaton --plain --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain listing instead of the browser")
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of replays to list")
}

func runReplays(cmd *cobra.Command, args []string) {
	gameID := kokaton.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store := openStore(true)
	defer store.Close()

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printReplays(store, gameID)
		return
	}

	rt := runtimeConfig(loadConfig(""))
	id, err := tui.RunBrowser(store, gameID, rt.ScreenW, rt.ScreenH)
	if err != nil {
		logger.Error("browser failed", "error", err)
		os.Exit(1)
	}
	if id == "" {
		return
	}
	watchReplay(store, id)
}

func printReplays(store *storage.Store, gameID string) {
	replays, err := store.ListReplays(gameID, flagLimit)
	if err != nil {
		logger.Error("cannot list replays", "error", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("cannot create game", "game", gameID, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Replays - %s\n", game.Title())
	fmt.Println()

	if len(replays) == 0 {
		fmt.Println("  No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play with 'arcade play kokaton --record' to keep one.")
		return
	}

	fmt.Printf("  %-36s  %6s  %-10s  %7s  %s\n", "ID", "Score", "Outcome", "Ticks", "Date")
	fmt.Printf("  %-36s  %6s  %-10s  %7s  %s\n", "--", "-----", "-------", "-----", "----")
	for _, r := range replays {
		fmt.Printf("  %-36s  %6d  %-10s  %7d  %s\n",
			r.ID, r.Score, r.Outcome, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
