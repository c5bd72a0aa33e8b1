package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

// FileName is the config file looked up in the search path.
const FileName = "blocks.yaml"

// LoadBlocks loads the blocks configuration.
// Search order: customPath -> ~/.blocks/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
// Keys missing from a file keep their built-in values. A custom path that
// cannot be read, parsed or validated is an error; the other locations are
// skipped when broken.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBlocksConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultBlocksConfig(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultBlocksYAML)
	if err != nil {
		return DefaultBlocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocks", "configs", filename)
}

// Validate checks every section, joining all problems found.
func (c BlocksConfig) Validate() error {
	var errs []error
	if _, err := c.EngineMode(); err != nil {
		errs = append(errs, err)
	}
	if _, _, err := c.BoardDims(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SlideTable(); err != nil {
		errs = append(errs, err)
	}
	if err := c.SpeedCurve().Validate(); err != nil {
		errs = append(errs, err)
	}
	if utf8.RuneCountInString(c.Player.Name) > MaxNameLength {
		errs = append(errs, fmt.Errorf("%w: player name longer than %d", engine.ErrInvalidConfig, MaxNameLength))
	}
	return errors.Join(errs...)
}

// EngineMode parses the mode.
func (c BlocksConfig) EngineMode() (engine.Mode, error) {
	return engine.ParseMode(c.Mode)
}

// BoardDims returns the board width and height. Explicit dimensions win over
// the named size.
func (c BlocksConfig) BoardDims() (int, int, error) {
	if c.Board.Width > 0 && c.Board.Height > 0 {
		w, h := c.Board.Width, c.Board.Height
		if w < engine.MinBoardWidth || w > engine.MaxBoardWidth ||
			h < engine.MinBoardHeight || h > engine.MaxBoardHeight {
			return 0, 0, fmt.Errorf("%w: board %dx%d out of range", engine.ErrInvalidConfig, w, h)
		}
		return w, h, nil
	}
	size, err := engine.ParseBoardSize(c.Board.Size)
	if err != nil {
		return 0, 0, err
	}
	return size.Width, size.Height, nil
}

// SlideTable builds the resolver table. A custom attempts list replaces the
// preset; without an explicit max distance it is bounded by its own largest
// shift.
func (c BlocksConfig) SlideTable() (engine.SlideTable, error) {
	if !c.Slide.Enabled {
		return engine.SlidePreset("disabled")
	}

	var table engine.SlideTable
	if len(c.Slide.Attempts) > 0 {
		table.Enabled = true
		for i, a := range c.Slide.Attempts {
			if len(a) != 2 {
				return engine.SlideTable{}, fmt.Errorf("%w: slide attempt %d must be [dx, dy]", engine.ErrInvalidConfig, i)
			}
			p := engine.Point{X: a[0], Y: a[1]}
			table.Attempts = append(table.Attempts, p)
			table.MaxDistance = max(table.MaxDistance, abs(p.X), abs(p.Y))
		}
	} else {
		preset, err := engine.SlidePreset(c.Slide.Preset)
		if err != nil {
			return engine.SlideTable{}, err
		}
		table = preset
	}

	if c.Slide.MaxDistance > 0 {
		table.MaxDistance = c.Slide.MaxDistance
	}
	if err := table.Validate(); err != nil {
		return engine.SlideTable{}, err
	}
	return table, nil
}

// SpeedCurve converts the speed section.
func (c BlocksConfig) SpeedCurve() engine.SpeedCurve {
	return engine.SpeedCurve{
		BaseMs:          c.Speed.BaseMs,
		StepMs:          c.Speed.StepMs,
		FineThresholdMs: c.Speed.FineThresholdMs,
		FineStepMs:      c.Speed.FineStepMs,
		FloorMs:         c.Speed.FloorMs,
	}
}

// ApplyMode sets the mode from a command-line value.
func ApplyMode(cfg *BlocksConfig, mode string) error {
	m, err := engine.ParseMode(mode)
	if err != nil {
		return err
	}
	cfg.Mode = m.ID()
	return nil
}

// ApplyBoardSize selects a named size and drops explicit dimensions.
func ApplyBoardSize(cfg *BlocksConfig, size string) error {
	s, err := engine.ParseBoardSize(size)
	if err != nil {
		return err
	}
	cfg.Board = BoardConfig{Size: s.Name}
	return nil
}

// ApplySlidePreset selects a preset and drops any custom table.
func ApplySlidePreset(cfg *BlocksConfig, preset string) error {
	if _, err := engine.SlidePreset(preset); err != nil {
		return err
	}
	preset = strings.ToLower(preset)
	cfg.Slide = SlideConfig{
		Enabled: preset != "disabled",
		Preset:  preset,
	}
	return nil
}

// ApplyPlayerName sets the recorded name, trimmed and capped.
func ApplyPlayerName(cfg *BlocksConfig, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if r := []rune(name); len(r) > MaxNameLength {
		name = string(r[:MaxNameLength])
	}
	cfg.Player.Name = name
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
