package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	printGames(os.Stdout, registry.List())
}

// printGames writes the game table, one row per registered game.
func printGames(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %s\n", idWidth, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", idWidth, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %s\n", idWidth, g.ID, g.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play in the terminal or 'arcade window' for a desktop window.")
}
