package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

// DifficultyPreset names a gravity curve.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // base speed forever
)

// DifficultyPresets lists the presets in display order.
var DifficultyPresets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty accepts a preset name, case-insensitively.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	for _, p := range DifficultyPresets {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("%w: unknown difficulty %q", engine.ErrInvalidConfig, s)
}

// ApplyDifficultyPreset replaces the speed section with the preset's curve.
func ApplyDifficultyPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	normal := DefaultBlocksConfig().Speed

	switch preset {
	case DifficultyEasy:
		cfg.Speed = SpeedConfig{
			BaseMs:          500,
			StepMs:          20,
			FineThresholdMs: 100,
			FineStepMs:      2,
			FloorMs:         60,
		}
	case DifficultyHard:
		cfg.Speed = SpeedConfig{
			BaseMs:          250,
			StepMs:          25,
			FineThresholdMs: 75,
			FineStepMs:      3,
			FloorMs:         20,
		}
	case DifficultyFixed:
		cfg.Speed = normal
		cfg.Speed.StepMs = 0
		cfg.Speed.FineStepMs = 0
	default:
		cfg.Speed = normal
	}
}
