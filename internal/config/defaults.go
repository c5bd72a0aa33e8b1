package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in configuration: HEXTRIS on the big
// board with the classic slide table.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Mode: "hextris",
		Board: BoardConfig{
			Size: "big",
		},
		Slide: SlideConfig{
			Enabled: true,
			Preset:  "classic",
		},
		Speed: SpeedConfig{
			BaseMs:          350,
			StepMs:          25,
			FineThresholdMs: 75,
			FineStepMs:      2,
			FloorMs:         30,
		},
		Player: PlayerInfo{
			Name: "PLAYER",
		},
	}
}
