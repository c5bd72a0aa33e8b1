package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagSize       string
	flagSlide      string
	flagName       string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. With a mode the game starts right away; without one
the setup menu lets you pick mode, board size, slide preset and speed.

Controls:
  A/Left, D/Right  - Move
  S/Down           - Drop one row
  Space            - Hard drop
  L/Up             - Rotate clockwise
  J/Z              - Rotate counterclockwise
  K/X              - Half turn
  W/P/Esc          - Pause
  R                - New game
  B                - Back to menu (paused or game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Board sizes: small (10x10), medium (10x20), big (15x25)
Slide presets: disabled, minimal, standard, aggressive, classic
Difficulty: easy, normal, hard, fixed

Examples:
  blocks play
  blocks play hextris
  blocks play tritris --size small --slide disabled
  blocks play tetris --difficulty hard --name ALICE`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSize, "size", "", "Board size: small, medium, big")
	playCmd.Flags().StringVar(&flagSlide, "slide", "", "Slide preset: disabled, minimal, standard, aggressive, classic")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name recorded with results")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Speed preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	blocksCfg := loadConfig()
	exitOnError("", applyPlayFlags(&blocksCfg))

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var runErr error
	if len(args) == 0 {
		runErr = tui.RunSession(store, logger, cfg, blocksCfg)
	} else {
		mode, modeErr := engine.ParseMode(args[0])
		if modeErr != nil {
			if store != nil {
				store.Close()
			}
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'blocks list' to see available modes.")
			os.Exit(1)
		}
		blocksCfg.Mode = mode.ID()
		game := blocks.NewWithOptions(mode, blocks.Options{Config: blocksCfg})
		runErr = tui.Run(game, store, logger, cfg)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	exitOnError("running game", runErr)
}

// applyPlayFlags layers the play flags over the loaded configuration.
func applyPlayFlags(cfg *config.BlocksConfig) error {
	if flagSize != "" {
		if err := config.ApplyBoardSize(cfg, flagSize); err != nil {
			return err
		}
	}
	if flagSlide != "" {
		if err := config.ApplySlidePreset(cfg, flagSlide); err != nil {
			return err
		}
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyDifficultyPreset(cfg, preset)
	}
	config.ApplyPlayerName(cfg, flagName)
	return cfg.Validate()
}
