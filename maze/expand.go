package maze

// Tile is one square of the expanded grid.
type Tile uint8

const (
	TilePassage  Tile = 0 // open cell center or removed wall
	TileBlocked  Tile = 1 // wall, corner or outer border
	TileEntry    Tile = 2 // entry cell center
	TileExit     Tile = 3 // exit cell center
	TileLandmark Tile = 5 // landmark cell center, never passable
)

// ExpandedGrid is the (2H+1)x(2W+1) tile view of a Grid. Odd coordinates are
// cell centers, the rest are edges, corners and the border.
type ExpandedGrid struct {
	Width  int // 2*grid.Width+1
	Height int // 2*grid.Height+1
	tiles  []Tile
}

// Expand builds the tile view of g. g is not modified.
func Expand(g *Grid) *ExpandedGrid {
	e := &ExpandedGrid{
		Width:  2*g.Width + 1,
		Height: 2*g.Height + 1,
	}
	e.tiles = make([]Tile, e.Width*e.Height)
	for i := range e.tiles {
		e.tiles[i] = TileBlocked
	}

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := CellPosition{Row: r, Col: c}
			center := p.Expanded()
			cell := g.At(p)
			if cell == AllWalls {
				e.Set(center, TileLandmark)
				continue
			}
			e.Set(center, TilePassage)
			for _, w := range cardinals {
				if !cell.Has(w) {
					e.Set(center.Step(w), TilePassage)
				}
			}
		}
	}

	// The border is never opened, even if a mask claims otherwise.
	for x := 0; x < e.Width; x++ {
		e.Set(CellPosition{Row: 0, Col: x}, TileBlocked)
		e.Set(CellPosition{Row: e.Height - 1, Col: x}, TileBlocked)
	}
	for y := 0; y < e.Height; y++ {
		e.Set(CellPosition{Row: y, Col: 0}, TileBlocked)
		e.Set(CellPosition{Row: y, Col: e.Width - 1}, TileBlocked)
	}

	return e
}

// InBounds reports whether p lies inside the expanded grid.
func (e *ExpandedGrid) InBounds(p CellPosition) bool {
	return p.Row >= 0 && p.Row < e.Height && p.Col >= 0 && p.Col < e.Width
}

// At returns the tile at p.
func (e *ExpandedGrid) At(p CellPosition) Tile {
	return e.tiles[p.Row*e.Width+p.Col]
}

// Set overwrites the tile at p.
func (e *ExpandedGrid) Set(p CellPosition, t Tile) {
	e.tiles[p.Row*e.Width+p.Col] = t
}

// Passable reports whether a search may step onto p.
func (e *ExpandedGrid) Passable(p CellPosition) bool {
	if !e.InBounds(p) {
		return false
	}
	t := e.At(p)
	return t != TileBlocked && t != TileLandmark
}

// Rows returns a copy of the tiles, one slice per row.
func (e *ExpandedGrid) Rows() [][]Tile {
	rows := make([][]Tile, e.Height)
	for r := range rows {
		rows[r] = make([]Tile, e.Width)
		copy(rows[r], e.tiles[r*e.Width:(r+1)*e.Width])
	}
	return rows
}
