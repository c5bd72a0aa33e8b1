package engine

import (
	"fmt"
	"strings"
)

// BoardSize is a named board dimension preset.
type BoardSize struct {
	Name          string
	Width, Height int
}

// Board size presets.
var (
	SizeSmall  = BoardSize{Name: "small", Width: 10, Height: 10}
	SizeMedium = BoardSize{Name: "medium", Width: 10, Height: 20}
	SizeBig    = BoardSize{Name: "big", Width: 15, Height: 25}
)

// BoardSizes lists the presets in display order.
var BoardSizes = []BoardSize{SizeSmall, SizeMedium, SizeBig}

// ParseBoardSize looks up a preset by name.
func ParseBoardSize(name string) (BoardSize, error) {
	for _, s := range BoardSizes {
		if strings.EqualFold(name, s.Name) {
			return s, nil
		}
	}
	return SizeBig, fmt.Errorf("%w: %q", ErrUnknownBoardSize, name)
}

// Board is a fixed-size grid of cells indexed [y][x] with y = 0 at the top.
// The grid never resizes; a new size means a new Board.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]Cell, height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the code at (x, y), or Empty outside the grid.
func (b *Board) Cell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Empty
	}
	return b.cells[y][x]
}

// SetCell writes a code at (x, y). Out-of-grid writes are ignored.
func (b *Board) SetCell(x, y int, c Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = c
}

// IsOccupied reports whether (x, y) blocks a piece. Cells left, right or
// below the grid block; cells above the top never do.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.width || y >= b.height {
		return true
	}
	if y < 0 {
		return false
	}
	return b.cells[y][x] != Empty
}

// Place writes the shape's style into every cell of shape at anchor that is
// inside the grid. Cells above the top are skipped, so a piece may lock
// partially out of view.
func (b *Board) Place(s Shape, anchor Point) {
	for _, c := range s.Cells(anchor) {
		if c.Y < 0 {
			continue
		}
		b.SetCell(c.X, c.Y, s.Style)
	}
}

// ClearFullLines removes every full row, shifting the rows above down, and
// returns how many rows were removed.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for y := b.height - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = make([]Cell, b.width)
		cleared++
		// The row that slid into y has not been checked yet.
		y++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the grid for read-only consumers.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.height)
	for y := range b.cells {
		rows[y] = append([]Cell(nil), b.cells[y]...)
	}
	return rows
}

// Filled returns the number of non-empty cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Collides reports whether shape at anchor overlaps a wall, the floor or a
// filled cell. Cells above the top are only checked against the side walls.
func Collides(s Shape, anchor Point, b *Board) bool {
	for _, c := range s.Cells(anchor) {
		if b.IsOccupied(c.X, c.Y) {
			return true
		}
	}
	return false
}
