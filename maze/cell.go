package maze

import (
	"fmt"
	"math/bits"
)

// Wall is a 4-bit mask of the walls closing a cell. A set bit means the wall
// is present.
type Wall uint8

const (
	North Wall = 1 << iota // North is the wall toward row-1.
	East                   // East is the wall toward col+1.
	South                  // South is the wall toward row+1.
	West                   // West is the wall toward col-1.

	// AllWalls is the mask of a fully closed cell.
	AllWalls = North | East | South | West
)

// Has reports whether every wall in w is present in the mask.
func (m Wall) Has(w Wall) bool {
	return m&w == w
}

// Count returns the number of walls present in the mask.
func (m Wall) Count() int {
	return bits.OnesCount8(uint8(m & AllWalls))
}

// Opposite returns the wall on the far side of a shared edge.
// It is only meaningful for a single-wall mask.
func (m Wall) Opposite() Wall {
	switch m {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return 0
}

// String renders the mask as a single uppercase hexadecimal digit.
func (m Wall) String() string {
	return fmt.Sprintf("%X", uint8(m&AllWalls))
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell (y)
	Col int // Column index of the cell (x)
}

// Pt builds a CellPosition from x,y coordinates.
func Pt(x, y int) CellPosition {
	return CellPosition{Row: y, Col: x}
}

// X returns the column index of the cell.
func (p CellPosition) X() int {
	return p.Col
}

// Y returns the row index of the cell.
func (p CellPosition) Y() int {
	return p.Row
}

// Step returns the neighbouring position behind the given wall.
func (p CellPosition) Step(w Wall) CellPosition {
	switch w {
	case North:
		return CellPosition{Row: p.Row - 1, Col: p.Col}
	case South:
		return CellPosition{Row: p.Row + 1, Col: p.Col}
	case East:
		return CellPosition{Row: p.Row, Col: p.Col + 1}
	case West:
		return CellPosition{Row: p.Row, Col: p.Col - 1}
	}
	return p
}

// Expanded maps a cell onto its center in the expanded grid.
func (p CellPosition) Expanded() CellPosition {
	return CellPosition{Row: 2*p.Row + 1, Col: 2*p.Col + 1}
}

// String formats the position as "x,y".
func (p CellPosition) String() string {
	return fmt.Sprintf("%d,%d", p.Col, p.Row)
}

// cardinals is the fixed candidate order that carving and relaxation shuffle.
var cardinals = [4]Wall{West, North, East, South}
