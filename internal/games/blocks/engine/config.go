package engine

import "fmt"

// Board dimension limits. The smallest board still has to fit the widest
// shape at the spawn column.
const (
	MinBoardWidth  = 6
	MinBoardHeight = 6
	MaxBoardWidth  = 64
	MaxBoardHeight = 64
)

// Config is the validated per-session engine configuration.
type Config struct {
	Mode   Mode
	Width  int
	Height int
	Slide  SlideTable
	Speed  SpeedCurve
	Seed   int64
}

// DefaultConfig returns HEXTRIS on the big board with the classic slide table.
func DefaultConfig() Config {
	return Config{
		Mode:   ModeHextris,
		Width:  SizeBig.Width,
		Height: SizeBig.Height,
		Slide:  DefaultSlideTable(),
		Speed:  DefaultSpeedCurve(),
	}
}

// Validate reports the first problem with c, wrapping ErrInvalidConfig or
// ErrUnknownMode.
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(c.Mode))
	}
	if err := validateSize(c.Width, c.Height); err != nil {
		return err
	}
	if err := c.Slide.Validate(); err != nil {
		return err
	}
	return c.Speed.Validate()
}

func validateSize(w, h int) error {
	if w < MinBoardWidth || w > MaxBoardWidth {
		return fmt.Errorf("%w: board width %d outside [%d, %d]",
			ErrInvalidConfig, w, MinBoardWidth, MaxBoardWidth)
	}
	if h < MinBoardHeight || h > MaxBoardHeight {
		return fmt.Errorf("%w: board height %d outside [%d, %d]",
			ErrInvalidConfig, h, MinBoardHeight, MaxBoardHeight)
	}
	return nil
}
