/*
Package maze carves rectangular mazes and solves them.

A maze is stored as a Grid of 4-bit Wall masks. Generation stamps the "42"
landmark, carves a spanning tree with a randomized depth-first backtracker and,
for imperfect mazes, relaxes dead ends into loops. The grid is then expanded
into a (2H+1)x(2W+1) tile grid on which a breadth-first search finds the
shortest route from entry to exit.

Every shared edge is stored on both of its cells; all mutations open or close
both sides in the same step, so the two masks always agree.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMove = errors.New("invalid move request")
	ErrOutOfBounds = errors.New("position is out of the maze")
)

// Grid is a row-major array of wall masks.
type Grid struct {
	Width  int    // Width of the maze (number of columns)
	Height int    // Height of the maze (number of rows)
	cells  []Wall // Height*Width masks, row-major
}

// NewGrid allocates a fully walled grid.
func NewGrid(width, height int) *Grid {
	cells := make([]Wall, width*height)
	for i := range cells {
		cells[i] = AllWalls
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}
}

// GridFromRows builds a grid from row-major masks, as read back from a maze
// file. It does not check the mirror invariant; call CheckMirror for that.
func GridFromRows(rows [][]Wall) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	width := len(rows[0])
	g := NewGrid(width, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), width)
		}
		for c, w := range row {
			if w > AllWalls {
				return nil, fmt.Errorf("cell %d,%d has invalid mask %d", c, r, w)
			}
			g.cells[r*width+c] = w
		}
	}
	return g, nil
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p CellPosition) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the wall mask of the cell at p.
func (g *Grid) At(p CellPosition) Wall {
	return g.cells[p.Row*g.Width+p.Col]
}

// IsOpen reports whether the wall w of the cell at p has been removed.
func (g *Grid) IsOpen(p CellPosition, w Wall) bool {
	return !g.At(p).Has(w)
}

// OpenWall removes the wall between p and its neighbour behind w, clearing
// the paired bit on both cells.
func (g *Grid) OpenWall(p CellPosition, w Wall) error {
	to := p.Step(w)
	if !g.InBounds(p) || !g.InBounds(to) {
		return ErrOutOfBounds
	}
	g.cells[p.Row*g.Width+p.Col] &^= w
	g.cells[to.Row*g.Width+to.Col] &^= w.Opposite()
	return nil
}

// IsValidMove checks that a single step from p through w stays inside the grid
// and crosses no wall.
func (g *Grid) IsValidMove(p CellPosition, w Wall) bool {
	to := p.Step(w)
	if !g.InBounds(p) || !g.InBounds(to) {
		return false
	}
	return g.IsOpen(p, w) && g.IsOpen(to, w.Opposite())
}

// Rows returns a copy of the grid as one slice per row.
func (g *Grid) Rows() [][]Wall {
	rows := make([][]Wall, g.Height)
	for r := range rows {
		rows[r] = make([]Wall, g.Width)
		copy(rows[r], g.cells[r*g.Width:(r+1)*g.Width])
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Wall, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// OpenWallCount counts open inner edges. Each edge is counted once.
func (g *Grid) OpenWallCount() int {
	open := 0
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := CellPosition{Row: r, Col: c}
			if c+1 < g.Width && g.IsOpen(p, East) {
				open++
			}
			if r+1 < g.Height && g.IsOpen(p, South) {
				open++
			}
		}
	}
	return open
}

// MirrorError describes a shared edge whose two sides disagree.
type MirrorError struct {
	Cell     CellPosition
	Neighbor CellPosition
	Wall     Wall
}

func (e *MirrorError) Error() string {
	return fmt.Sprintf("wall mismatch between %s and %s (mask bit %d)", e.Cell, e.Neighbor, e.Wall)
}

// CheckMirror verifies that every inner edge is either open on both sides or
// closed on both sides.
func (g *Grid) CheckMirror() error {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := CellPosition{Row: r, Col: c}
			for _, w := range [...]Wall{East, South} {
				to := p.Step(w)
				if !g.InBounds(to) {
					continue
				}
				if g.At(p).Has(w) != g.At(to).Has(w.Opposite()) {
					return &MirrorError{Cell: p, Neighbor: to, Wall: w}
				}
			}
		}
	}
	return nil
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.Width) + "\n")

	for row := 0; row < g.Height; row++ {
		cellRow := "|"
		wallRow := "+"
		for col := 0; col < g.Width; col++ {
			cell := g.At(CellPosition{Row: row, Col: col})
			if cell == AllWalls {
				cellRow += "###"
			} else {
				cellRow += "   "
			}
			if cell.Has(East) {
				cellRow += "|"
			} else {
				cellRow += " "
			}
			if cell.Has(South) {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
