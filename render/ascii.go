// Package render draws solved mazes for terminals and image files.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/amazeing/maze"
	"golang.org/x/crypto/ssh/terminal"
)

// Source is a solved maze ready to be drawn.
type Source interface {
	Expanded() *maze.ExpandedGrid
	Path() []maze.CellPosition
}

const (
	DefaultWallColor = 37
	MinWallColor     = 30
	MaxWallColor     = 39

	ansiReset  = "\x1b[0m"
	bgPath     = "\x1b[43m"
	bgEntry    = "\x1b[42m"
	bgExit     = "\x1b[41m"
	bgLandmark = "\x1b[47m"
)

// junctions maps the walls meeting at a corner (1 up, 2 right, 4 down,
// 8 left) to a box-drawing glyph.
var junctions = [16]string{
	" ", "╹", "╺", "┗", "╻", "┃", "┏", "┣",
	"╸", "┛", "━", "┻", "┓", "┫", "┳", "╋",
}

// ASCII renders a maze with box-drawing characters, one expanded tile per
// glyph group: corners and vertical walls are one column wide, cells and
// horizontal walls three.
type ASCII struct {
	WallColor int  // ANSI foreground code for walls, 30..39
	ShowPath  bool // overlay the shortest route
	Color     bool // emit ANSI escapes
}

// NewASCII returns a renderer that uses colour only when w is a terminal.
func NewASCII(w io.Writer) *ASCII {
	return &ASCII{
		WallColor: DefaultWallColor,
		ShowPath:  false,
		Color:     IsTerminal(w),
	}
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(int(f.Fd()))
}

// TogglePath flips the route overlay and returns the new state.
func (a *ASCII) TogglePath() bool {
	a.ShowPath = !a.ShowPath
	return a.ShowPath
}

// SetWallColor changes the wall colour, clamping to the ANSI foreground range.
func (a *ASCII) SetWallColor(code int) {
	a.WallColor = min(max(code, MinWallColor), MaxWallColor)
}

// Render draws src to w.
func (a *ASCII) Render(w io.Writer, src Source) error {
	e := src.Expanded()
	if e == nil {
		return fmt.Errorf("maze has not been generated")
	}
	onPath := make(map[maze.CellPosition]bool)
	if a.ShowPath {
		for _, p := range src.Path() {
			onPath[p] = true
		}
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < e.Height; y++ {
		for x := 0; x < e.Width; x++ {
			p := maze.CellPosition{Row: y, Col: x}
			bw.WriteString(a.glyph(e, p, onPath[p]))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (a *ASCII) glyph(e *maze.ExpandedGrid, p maze.CellPosition, onPath bool) string {
	evenRow, evenCol := p.Row%2 == 0, p.Col%2 == 0
	tile := e.At(p)

	switch {
	case evenRow && evenCol:
		return a.wall(junctions[junctionMask(e, p)])
	case evenRow:
		if tile == maze.TileBlocked {
			return a.wall("━━━")
		}
		return a.open("   ", onPath, " . ")
	case evenCol:
		if tile == maze.TileBlocked {
			return a.wall("┃")
		}
		return a.open(" ", onPath, ".")
	}

	switch tile {
	case maze.TileEntry:
		return a.paint(bgEntry, " S ")
	case maze.TileExit:
		return a.paint(bgExit, " G ")
	case maze.TileLandmark:
		return a.paint(bgLandmark, "###")
	}
	return a.open("   ", onPath, " . ")
}

func junctionMask(e *maze.ExpandedGrid, p maze.CellPosition) int {
	blocked := func(row, col int) bool {
		q := maze.CellPosition{Row: row, Col: col}
		return e.InBounds(q) && e.At(q) == maze.TileBlocked
	}
	mask := 0
	if blocked(p.Row-1, p.Col) {
		mask |= 1
	}
	if blocked(p.Row, p.Col+1) {
		mask |= 2
	}
	if blocked(p.Row+1, p.Col) {
		mask |= 4
	}
	if blocked(p.Row, p.Col-1) {
		mask |= 8
	}
	return mask
}

func (a *ASCII) wall(s string) string {
	if !a.Color {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s%s", a.WallColor, s, ansiReset)
}

func (a *ASCII) open(blank string, onPath bool, marked string) string {
	if !onPath {
		return blank
	}
	if !a.Color {
		return marked
	}
	return bgPath + blank + ansiReset
}

func (a *ASCII) paint(bg, plain string) string {
	if !a.Color {
		return plain
	}
	return bg + "   " + ansiReset
}
