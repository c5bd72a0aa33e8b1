package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all modes",
	Long:  `Shows every registered mode with the size of its piece catalog.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "Pieces")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "------")

	for _, m := range modes {
		pieces := "-"
		if mode, err := engine.ParseMode(m.ID); err == nil {
			pieces = fmt.Sprint(engine.CatalogSize(mode))
		}
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, m.ID, m.Title, pieces)
	}

	fmt.Println()
	fmt.Println("Run 'blocks play <id>' to play a mode, or 'blocks play' for the setup menu.")
}
