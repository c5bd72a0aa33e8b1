// Package engine implements the piece-placement and board-state core of the
// blocks game: piece catalogs, the board grid, collision checks, the slide
// resolver, the piece lifecycle and the score/level rules.
//
// The package has no presentation or I/O dependencies. Every Engine is an
// independent value; nothing here is shared between instances.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is a board cell code. Zero is empty; any other value is the style id of
// the piece that locked there.
type Cell uint8

// Empty is the code of an unoccupied cell.
const Empty Cell = 0

// Point is a board coordinate or a relative offset.
type Point struct {
	X, Y int
}

// Add returns p shifted by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Mode selects the active piece catalog.
type Mode int

const (
	ModeTritris Mode = iota // small 3-cell set
	ModeTetris              // standard 4-cell set
	ModeHextris             // large set of up to 6 cells
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeTritris, ModeTetris, ModeHextris}

var (
	ErrInvalidConfig    = errors.New("invalid config")
	ErrUnknownMode      = errors.New("unknown mode")
	ErrUnknownBoardSize = errors.New("unknown board size")
	ErrUnknownPreset    = errors.New("unknown slide preset")
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTritris:
		return "TRITRIS"
	case ModeTetris:
		return "TETRIS"
	case ModeHextris:
		return "HEXTRIS"
	default:
		return "UNKNOWN"
	}
}

// ID returns the lowercase identifier used for registry and storage keys.
func (m Mode) ID() string {
	return strings.ToLower(m.String())
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= ModeTritris && m <= ModeHextris
}

// ParseMode accepts a mode id or display name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(s, m.ID()) {
			return m, nil
		}
	}
	return ModeTetris, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Shape is an immutable piece definition: offsets relative to the anchor plus
// the style id written into the board on lock.
type Shape struct {
	Type    int // index in the mode's catalog
	Name    string
	Style   Cell
	Offsets []Point
}

// Cells returns the absolute board cells of s placed at anchor.
func (s Shape) Cells(anchor Point) []Point {
	cells := make([]Point, len(s.Offsets))
	for i, o := range s.Offsets {
		cells[i] = anchor.Add(o)
	}
	return cells
}

// Bounds returns the min and max offsets of the shape.
func (s Shape) Bounds() (minP, maxP Point) {
	for i, o := range s.Offsets {
		if i == 0 {
			minP, maxP = o, o
			continue
		}
		minP.X = min(minP.X, o.X)
		minP.Y = min(minP.Y, o.Y)
		maxP.X = max(maxP.X, o.X)
		maxP.Y = max(maxP.Y, o.Y)
	}
	return minP, maxP
}

func (s Shape) clone() Shape {
	out := s
	out.Offsets = append([]Point(nil), s.Offsets...)
	return out
}

func shape(style int, name string, offsets ...[2]int) Shape {
	s := Shape{
		Type:    style - 1,
		Name:    name,
		Style:   Cell(style),
		Offsets: make([]Point, len(offsets)),
	}
	for i, o := range offsets {
		s.Offsets[i] = Point{X: o[0], Y: o[1]}
	}
	return s
}

// Repeated offsets are intentional: such pieces occupy fewer cells than they
// list, which is how the small set gets its one- and two-cell pieces.
var tritrisCatalog = []Shape{
	shape(1, "dot", [2]int{0, 0}, [2]int{0, 0}, [2]int{0, 0}),
	shape(2, "line", [2]int{0, -1}, [2]int{0, 0}, [2]int{0, 1}),
	shape(3, "spaced", [2]int{-1, 0}, [2]int{1, 0}, [2]int{1, 0}),
	shape(4, "corner", [2]int{-1, 0}, [2]int{0, 0}, [2]int{0, 1}),
	shape(5, "pair", [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 0}),
	shape(6, "zig", [2]int{-1, -1}, [2]int{0, 0}, [2]int{1, 1}),
	shape(7, "bent", [2]int{-1, -1}, [2]int{0, 0}, [2]int{-1, 1}),
	shape(8, "speck", [2]int{0, 0}, [2]int{0, 0}, [2]int{0, 0}),
}

var tetrisCatalog = []Shape{
	shape(1, "square", [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}),
	shape(2, "L", [2]int{-1, 1}, [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}),
	shape(3, "J", [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}),
	shape(4, "line", [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}),
	shape(5, "S", [2]int{1, 0}, [2]int{0, 0}, [2]int{0, 1}, [2]int{-1, 1}),
	shape(6, "Z", [2]int{1, 1}, [2]int{0, 1}, [2]int{0, 0}, [2]int{-1, 0}),
	shape(7, "T", [2]int{0, 1}, [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}),
}

var hextrisCatalog = append(append([]Shape(nil), tetrisCatalog...),
	shape(8, "dot", [2]int{0, 0}),
	shape(9, "screw", [2]int{-1, -1}, [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}),
	shape(10, "screw-mirrored", [2]int{1, -1}, [2]int{1, 0}, [2]int{0, 0}, [2]int{-1, 0}, [2]int{-1, 1}),
	shape(11, "plus", [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, -1}, [2]int{0, 1}),
	shape(12, "cross", [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, -1}, [2]int{0, 1}, [2]int{2, 0}),
	shape(13, "layers", [2]int{-1, -1}, [2]int{0, -1}, [2]int{1, -1}, [2]int{-1, 1}, [2]int{0, 1}, [2]int{1, 1}),
	shape(14, "Y", [2]int{-1, -1}, [2]int{-1, 0}, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, -1}, [2]int{1, 0}),
	shape(15, "U", [2]int{-1, 0}, [2]int{-1, 1}, [2]int{0, 1}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}),
	shape(16, "line-5", [2]int{-2, 0}, [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 0}),
	shape(17, "line-6", [2]int{-2, 0}, [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}),
	shape(18, "slab", [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}, [2]int{-1, 1}, [2]int{0, 1}, [2]int{1, 1}),
	shape(19, "zig-zag", [2]int{-1, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{-1, 0}),
	shape(20, "notch-top", [2]int{-1, 0}, [2]int{0, 0}, [2]int{0, 0}, [2]int{-1, 1}, [2]int{0, 1}, [2]int{1, 0}),
	shape(21, "notch-bottom", [2]int{-1, 0}, [2]int{0, 0}, [2]int{0, 0}, [2]int{-1, 1}, [2]int{0, 1}, [2]int{1, 1}),
	shape(22, "domino", [2]int{0, 0}, [2]int{0, 1}),
	shape(23, "big-T", [2]int{-1, -1}, [2]int{0, -1}, [2]int{1, -1}, [2]int{0, 0}, [2]int{0, 1}),
	shape(24, "parallel", [2]int{-1, 0}, [2]int{-1, 1}, [2]int{1, 0}, [2]int{1, 1}),
	shape(25, "big-J", [2]int{-1, -1}, [2]int{0, -1}, [2]int{1, -1}, [2]int{1, 0}, [2]int{1, 1}),
	shape(26, "totem", [2]int{-2, 0}, [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}),
	shape(27, "small-L", [2]int{-1, 0}, [2]int{0, 0}, [2]int{0, 1}),
	shape(28, "line-3", [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}),
	shape(29, "crazy", [2]int{0, 0}, [2]int{0, 0}, [2]int{0, 0}, [2]int{0, 0}, [2]int{0, 0}, [2]int{0, 0}),
)

func catalogFor(mode Mode) []Shape {
	switch mode {
	case ModeTritris:
		return tritrisCatalog
	case ModeHextris:
		return hextrisCatalog
	default:
		return tetrisCatalog
	}
}

// Catalog returns a copy of the shapes available in mode. Unknown modes fall
// back to the standard set.
func Catalog(mode Mode) []Shape {
	src := catalogFor(mode)
	out := make([]Shape, len(src))
	for i, s := range src {
		out[i] = s.clone()
	}
	return out
}

// CatalogSize returns the random draw range for mode.
func CatalogSize(mode Mode) int {
	return len(catalogFor(mode))
}

// PieceFor returns catalog entry index of mode. Out-of-range indices degrade
// to the first entry.
func PieceFor(mode Mode, index int) Shape {
	src := catalogFor(mode)
	if index < 0 || index >= len(src) {
		index = 0
	}
	return src[index].clone()
}
