package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagResetRanking bool
	flagClearHistory bool
	flagHistoryLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the podium and high scores for a mode",
	Long: `Display the top-three podium, the best results and a summary of
every game played in the specified mode.

Examples:
  blocks scores tetris
  blocks scores hextris --limit 20
  blocks scores tritris --reset`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetRanking, "reset", false, "Empty the podium of the mode")
	scoresCmd.Flags().BoolVar(&flagClearHistory, "clear-history", false, "Delete every recorded result of the mode")
	scoresCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of results to list")
}

func runScores(_ *cobra.Command, args []string) {
	mode, err := engine.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'blocks list' to see available modes.")
		os.Exit(1)
	}
	modeID := mode.ID()

	// Open results storage
	store, err := storage.Open(flagDBPath)
	exitOnError("opening results database", err)
	defer store.Close()

	if flagResetRanking || flagClearHistory {
		if flagResetRanking {
			if err := store.ResetRanking(modeID); err != nil {
				store.Close()
				exitOnError("resetting ranking", err)
			}
			fmt.Printf("Podium of %s reset.\n", mode)
		}
		if flagClearHistory {
			if err := store.ClearResults(modeID); err != nil {
				store.Close()
				exitOnError("clearing results", err)
			}
			fmt.Printf("History of %s cleared.\n", mode)
		}
		return
	}

	ranking, err := store.LoadRanking(modeID)
	if err != nil {
		store.Close()
		exitOnError("loading ranking", err)
	}
	results, err := store.TopResults(modeID, flagHistoryLimit)
	if err != nil {
		store.Close()
		exitOnError("retrieving results", err)
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	printPodium(ranking)

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blocks play %s' to set the first high score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %-6d  %s\n", i+1, entry.Player, entry.Score, entry.Lines, dateStr)
	}

	stats, err := store.GetModeStats(modeID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.0f  Most lines: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLines)
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// printPodium prints the three ranking slots; empty slots show dashes.
func printPodium(ranking engine.Ranking) {
	places := [engine.RankingSlots]string{"1st", "2nd", "3rd"}

	fmt.Println("  Podium")
	for i, e := range ranking {
		if !e.Filled {
			fmt.Printf("  %s  %-16s  %s\n", places[i], "---", "---")
			continue
		}
		fmt.Printf("  %s  %-16s  %d (%d lines)\n", places[i], e.Name, e.Score, e.Lines)
	}
	fmt.Println()
}
