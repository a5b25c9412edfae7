package maze

// The "42" glyph. '#' cells are stamped as visited before carving so the
// carver routes around them and they stay fully walled.
var landmarkPattern = [...]string{
	"#...###",
	"#.....#",
	"###.###",
	"..#.#..",
	"..#.###",
}

const (
	landmarkRows = len(landmarkPattern)
	landmarkCols = 7

	// A landmark is only stamped when width > landmarkMinWidth and
	// height > landmarkMinHeight.
	landmarkMinWidth  = 8
	landmarkMinHeight = 6
)

// HasLandmark reports whether a maze of the given size carries the landmark.
func HasLandmark(width, height int) bool {
	return width > landmarkMinWidth && height > landmarkMinHeight
}

// LandmarkOrigin returns the top-left cell of the centered landmark footprint.
func LandmarkOrigin(width, height int) CellPosition {
	return CellPosition{
		Row: (height - landmarkRows) / 2,
		Col: (width - landmarkCols) / 2,
	}
}

// LandmarkCells lists the stamped cells, row-major. The result is empty when
// the maze is too small for a landmark.
func LandmarkCells(width, height int) []CellPosition {
	if !HasLandmark(width, height) {
		return nil
	}
	origin := LandmarkOrigin(width, height)
	var cells []CellPosition
	for r, line := range landmarkPattern {
		for c := 0; c < landmarkCols; c++ {
			if line[c] == '#' {
				cells = append(cells, CellPosition{Row: origin.Row + r, Col: origin.Col + c})
			}
		}
	}
	return cells
}

// InLandmark reports whether p is one of the stamped landmark cells.
func InLandmark(width, height int, p CellPosition) bool {
	if !HasLandmark(width, height) {
		return false
	}
	origin := LandmarkOrigin(width, height)
	r, c := p.Row-origin.Row, p.Col-origin.Col
	if r < 0 || r >= landmarkRows || c < 0 || c >= landmarkCols {
		return false
	}
	return landmarkPattern[r][c] == '#'
}

// stampLandmark marks the landmark as already visited.
func stampLandmark(visited *visitMask) {
	for _, p := range LandmarkCells(visited.width, visited.height) {
		visited.mark(p)
	}
}
