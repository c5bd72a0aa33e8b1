package engine

import "fmt"

// LinesPerLevel is how many cleared rows advance one level.
const LinesPerLevel = 10

// LockBonus is awarded every time a piece locks.
func LockBonus(level int) int {
	return 30 + 10*level
}

// ClearBonus is awarded once per lock for the rows that lock cleared together.
func ClearBonus(rows int) int {
	switch {
	case rows <= 0:
		return 0
	case rows == 1:
		return 150
	case rows == 2:
		return 350
	case rows == 3:
		return 2500
	case rows == 4:
		return 5000
	case rows == 5:
		return 10000
	default:
		return 15000
	}
}

// LevelForLines derives the level from the total rows cleared.
func LevelForLines(lines int) int {
	if lines <= 0 {
		return 0
	}
	return lines / LinesPerLevel
}

// Message identifies player feedback raised by the core. Presentation decides
// how to show it.
type Message int

const (
	MessageNone Message = iota
	MessageWhammo
	MessageGreat
	MessageGood
	MessageAwesome
	MessageAlmost
	MessageBlock
	MessageNewHighScore
)

// String returns the text shown to the player.
func (m Message) String() string {
	switch m {
	case MessageWhammo:
		return "WHAMMO!"
	case MessageGreat:
		return "GREAT!"
	case MessageGood:
		return "GOOD!"
	case MessageAwesome:
		return "AWESOME!"
	case MessageAlmost:
		return "ALMOST!"
	case MessageBlock:
		return "BLOCK!!"
	case MessageNewHighScore:
		return "NEW HIGH SCORE!"
	default:
		return ""
	}
}

// MessageFor returns the feedback for clearing rows rows at once in mode.
// Fewer than three rows raise nothing.
func MessageFor(mode Mode, rows int) Message {
	switch {
	case rows == 3:
		if mode == ModeTritris {
			return MessageWhammo
		}
		return MessageGreat
	case rows == 4:
		if mode == ModeTritris {
			return MessageGood
		}
		return MessageAwesome
	case rows == 5:
		return MessageAlmost
	case rows >= 6:
		return MessageBlock
	default:
		return MessageNone
	}
}

// SpeedCurve maps a level to the gravity interval. Each level removes StepMs
// while the interval is at or above FineThresholdMs, then FineStepMs, and the
// result never drops below FloorMs.
type SpeedCurve struct {
	BaseMs          int
	StepMs          int
	FineThresholdMs int
	FineStepMs      int
	FloorMs         int
}

// DefaultSpeedCurve starts at 350ms and bottoms out at 30ms.
func DefaultSpeedCurve() SpeedCurve {
	return SpeedCurve{
		BaseMs:          350,
		StepMs:          25,
		FineThresholdMs: 75,
		FineStepMs:      2,
		FloorMs:         30,
	}
}

// Validate checks that the curve is positive and non-increasing.
func (c SpeedCurve) Validate() error {
	switch {
	case c.FloorMs <= 0:
		return fmt.Errorf("%w: speed floor must be positive, got %d", ErrInvalidConfig, c.FloorMs)
	case c.BaseMs < c.FloorMs:
		return fmt.Errorf("%w: speed base %d is below floor %d", ErrInvalidConfig, c.BaseMs, c.FloorMs)
	case c.StepMs < 0 || c.FineStepMs < 0:
		return fmt.Errorf("%w: speed steps must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Interval returns the drop interval in milliseconds for level.
func (c SpeedCurve) Interval(level int) int {
	interval := c.BaseMs
	for i := 0; i < level && interval > c.FloorMs; i++ {
		if interval >= c.FineThresholdMs {
			interval -= c.StepMs
		} else {
			interval -= c.FineStepMs
		}
		// Zero steps would never reach the floor.
		if c.StepMs == 0 && c.FineStepMs == 0 {
			break
		}
	}
	return max(interval, c.FloorMs)
}
