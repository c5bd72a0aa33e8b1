// Package config loads the blocks game configuration from YAML and applies
// command-line presets on top of it.
package config

// BlocksConfig is the on-disk configuration.
type BlocksConfig struct {
	Mode   string      `yaml:"mode"`
	Board  BoardConfig `yaml:"board"`
	Slide  SlideConfig `yaml:"slide"`
	Speed  SpeedConfig `yaml:"speed"`
	Player PlayerInfo  `yaml:"player"`
}

// BoardConfig selects the board dimensions. Width and Height, when both are
// positive, override the named size.
type BoardConfig struct {
	Size   string `yaml:"size"` // small, medium or big
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// SlideConfig configures the placement assist.
type SlideConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Preset      string  `yaml:"preset"`       // disabled, minimal, standard, aggressive, classic
	MaxDistance int     `yaml:"max_distance"` // > 0 overrides the preset bound
	Attempts    [][]int `yaml:"attempts"`     // custom [dx, dy] table, first entry must be [0, 0]
}

// SpeedConfig is the gravity curve in milliseconds.
type SpeedConfig struct {
	BaseMs          int `yaml:"base_ms"`
	StepMs          int `yaml:"step_ms"`
	FineThresholdMs int `yaml:"fine_threshold_ms"`
	FineStepMs      int `yaml:"fine_step_ms"`
	FloorMs         int `yaml:"floor_ms"`
}

// PlayerInfo holds the name recorded with results.
type PlayerInfo struct {
	Name string `yaml:"name"`
}

// MaxNameLength caps player names stored with results.
const MaxNameLength = 16
