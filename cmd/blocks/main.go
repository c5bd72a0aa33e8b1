// blocks is a falling-block puzzle game for the terminal with three piece
// sets: TRITRIS, TETRIS and HEXTRIS.
//
// Usage:
//
//	blocks list              - List the modes
//	blocks play [mode]       - Play; without a mode, start the setup menu
//	blocks pieces <mode>     - Print the piece catalog of a mode
//	blocks scores <mode>     - Show the podium and history of a mode
//	blocks serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.blocks/results.db)
//	--config <path>  - Use a specific blocks.yaml
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"

	// Register the modes
	_ "github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "blocks",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - falling-block puzzles in your terminal",
	Long: `Blocks is a falling-block puzzle game with three piece sets:
TRITRIS (three-cell pieces), TETRIS (the classic seven) and HEXTRIS
(one to six cells, 29 pieces).

Available commands:
  list     - Show the modes
  play     - Play a mode, or pick one in the setup menu
  pieces   - Print a mode's piece catalog
  scores   - View the podium and history
  serve    - Start SSH server for remote play

Examples:
  blocks play
  blocks play tetris --size medium --slide standard
  blocks pieces hextris
  blocks scores tritris
  blocks serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blocks/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom blocks.yaml")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads blocks.yaml from --config or the search path, exiting
// on a broken custom file.
func loadConfig() config.BlocksConfig {
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// exitOnError prints err and exits when it is non-nil.
func exitOnError(context string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}
