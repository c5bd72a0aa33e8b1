package engine

import (
	"fmt"
	"sort"
	"strings"
)

// SlideTable configures the placement resolver: candidate offsets tried in
// order and the largest horizontal or vertical shift any candidate may use.
type SlideTable struct {
	Enabled     bool
	MaxDistance int
	Attempts    []Point
}

// Validate checks the table. An enabled table must try the unmodified target
// first.
func (t SlideTable) Validate() error {
	if t.MaxDistance < 0 {
		return fmt.Errorf("%w: slide max distance %d is negative", ErrInvalidConfig, t.MaxDistance)
	}
	if !t.Enabled {
		return nil
	}
	if len(t.Attempts) == 0 {
		return fmt.Errorf("%w: slide table has no attempts", ErrInvalidConfig)
	}
	if t.Attempts[0] != (Point{}) {
		return fmt.Errorf("%w: first slide attempt must be (0,0), got (%d,%d)",
			ErrInvalidConfig, t.Attempts[0].X, t.Attempts[0].Y)
	}
	return nil
}

// Clone returns a copy that shares no memory with t.
func (t SlideTable) Clone() SlideTable {
	t.Attempts = append([]Point(nil), t.Attempts...)
	return t
}

func (t SlideTable) allows(p Point) bool {
	return abs(p.X) <= t.MaxDistance && abs(p.Y) <= t.MaxDistance
}

// Resolve finds where shape may be placed near target. With sliding enabled
// it returns the first attempt, in table order, whose shifted anchor is free;
// attempts beyond MaxDistance are skipped. With sliding disabled only target
// itself is tried.
func Resolve(s Shape, target Point, b *Board, t SlideTable) (Point, bool) {
	if !t.Enabled {
		if Collides(s, target, b) {
			return target, false
		}
		return target, true
	}

	for _, attempt := range t.Attempts {
		if !t.allows(attempt) {
			continue
		}
		candidate := target.Add(attempt)
		if !Collides(s, candidate, b) {
			return candidate, true
		}
	}
	return target, false
}

func pts(xy ...int) []Point {
	out := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

var slidePresets = map[string]SlideTable{
	"disabled": {Enabled: false},
	"minimal": {
		Enabled:     true,
		MaxDistance: 1,
		Attempts:    pts(0, 0, -1, 0, 1, 0),
	},
	"standard": {
		Enabled:     true,
		MaxDistance: 2,
		Attempts:    pts(0, 0, -1, 0, 1, 0, -2, 0, 2, 0, 0, -1),
	},
	"aggressive": {
		Enabled:     true,
		MaxDistance: 3,
		Attempts: pts(
			0, 0,
			-1, 0, 1, 0,
			-2, 0, 2, 0,
			0, -1,
			-1, -1, 1, -1,
			-3, 0, 3, 0,
			0, -2,
			-2, -1, 2, -1,
		),
	},
	"classic": {
		Enabled:     true,
		MaxDistance: 3,
		Attempts: pts(
			0, 0,
			-1, 0, 1, 0,
			-2, 0, 2, 0,
			0, -1,
			-1, -1, 1, -1,
			-3, 0, 3, 0,
			0, -2,
			-2, -1, 2, -1,
			-1, -2, 1, -2,
		),
	},
}

// DefaultSlidePreset is the preset a fresh engine uses.
const DefaultSlidePreset = "classic"

// SlidePreset returns a copy of the named preset.
func SlidePreset(name string) (SlideTable, error) {
	t, ok := slidePresets[strings.ToLower(name)]
	if !ok {
		return SlideTable{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return t.Clone(), nil
}

// SlidePresetNames returns the preset names in sorted order.
func SlidePresetNames() []string {
	names := make([]string, 0, len(slidePresets))
	for name := range slidePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultSlideTable returns the classic table.
func DefaultSlideTable() SlideTable {
	t, _ := SlidePreset(DefaultSlidePreset)
	return t
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
