// Package mazefile reads and writes the plain-text maze format: one hex digit
// per cell and one line per row, a blank line, the entry and exit as "x,y",
// and the solution as a string of compass letters.
package mazefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/amazeing/maze"
)

var (
	ErrMalformed     = errors.New("malformed maze file")
	ErrRouteMismatch = errors.New("route does not lead from entry to exit")
)

// Document is the content of a maze file.
type Document struct {
	Rows       [][]maze.Wall
	Entry      maze.CellPosition
	Exit       maze.CellPosition
	Directions []maze.Direction
}

// Source is anything holding a solved maze.
type Source interface {
	Grid() *maze.Grid
	Options() maze.Options
	Directions() []maze.Direction
}

// FromSource snapshots a solved maze into a Document.
func FromSource(src Source) *Document {
	opts := src.Options()
	return &Document{
		Rows:       src.Grid().Rows(),
		Entry:      opts.Entry,
		Exit:       opts.Exit,
		Directions: src.Directions(),
	}
}

// Encode writes doc to w.
func Encode(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	for _, row := range doc.Rows {
		for _, cell := range row {
			bw.WriteString(cell.String())
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "\n%s\n%s\n%s\n", doc.Entry, doc.Exit, maze.FormatDirections(doc.Directions))
	return bw.Flush()
}

// WriteFile encodes doc into the file at path, replacing it.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating maze file: %w", err)
	}
	if err := Encode(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("writing maze file: %w", err)
	}
	return f.Close()
}

// Decode reads a Document from r.
func Decode(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	blank := -1
	for i, line := range lines {
		if line == "" {
			blank = i
			break
		}
	}
	if blank <= 0 {
		return nil, fmt.Errorf("%w: missing grid or separator line", ErrMalformed)
	}
	if len(lines) < blank+3 {
		return nil, fmt.Errorf("%w: missing entry or exit line", ErrMalformed)
	}

	doc := &Document{}
	for i, line := range lines[:blank] {
		row := make([]maze.Wall, len(line))
		for j := 0; j < len(line); j++ {
			v, err := strconv.ParseUint(line[j:j+1], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q is not a hex digit", ErrMalformed, i+1, j+1, line[j])
			}
			row[j] = maze.Wall(v)
		}
		if i > 0 && len(row) != len(doc.Rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrMalformed, i+1, len(row), len(doc.Rows[0]))
		}
		doc.Rows = append(doc.Rows, row)
	}

	var err error
	if doc.Entry, err = parseCoord(lines[blank+1]); err != nil {
		return nil, fmt.Errorf("%w: entry: %v", ErrMalformed, err)
	}
	if doc.Exit, err = parseCoord(lines[blank+2]); err != nil {
		return nil, fmt.Errorf("%w: exit: %v", ErrMalformed, err)
	}
	if len(lines) > blank+3 {
		if doc.Directions, err = maze.ParseDirections(lines[blank+3]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	return doc, nil
}

// ReadFile decodes the maze file at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Grid rebuilds the wall grid and checks the mirror invariant.
func (d *Document) Grid() (*maze.Grid, error) {
	g, err := maze.GridFromRows(d.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := g.CheckMirror(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return g, nil
}

// Verified is a decoded maze whose route was replayed through its walls.
type Verified struct {
	Grid     *maze.Grid
	Cells    []maze.CellPosition // route cells, entry to exit
	expanded *maze.ExpandedGrid
	path     []maze.CellPosition
}

// Expanded returns the tile grid with entry and exit tagged.
func (v *Verified) Expanded() *maze.ExpandedGrid { return v.expanded }

// Path returns the replayed route in expanded-grid coordinates.
func (v *Verified) Path() []maze.CellPosition { return v.path }

// Verify rebuilds the grid and replays the directions from the entry. The
// route must cross only open walls and stop on the exit.
func (d *Document) Verify() (*Verified, error) {
	g, err := d.Grid()
	if err != nil {
		return nil, err
	}
	if !g.InBounds(d.Entry) || !g.InBounds(d.Exit) {
		return nil, fmt.Errorf("%w: entry %s or exit %s outside %dx%d", ErrMalformed, d.Entry, d.Exit, g.Width, g.Height)
	}
	cells, err := maze.Replay(g, d.Entry, d.Directions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRouteMismatch, err)
	}
	if last := cells[len(cells)-1]; last != d.Exit {
		return nil, fmt.Errorf("%w: route ends at %s, exit is %s", ErrRouteMismatch, last, d.Exit)
	}

	e := maze.Expand(g)
	path := []maze.CellPosition{d.Entry.Expanded()}
	for i := 1; i < len(cells); i++ {
		from, to := cells[i-1].Expanded(), cells[i].Expanded()
		path = append(path, maze.CellPosition{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2}, to)
	}
	e.Set(d.Entry.Expanded(), maze.TileEntry)
	e.Set(d.Exit.Expanded(), maze.TileExit)
	return &Verified{Grid: g, Cells: cells, expanded: e, path: path}, nil
}

func parseCoord(s string) (maze.CellPosition, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maze.CellPosition{}, fmt.Errorf("%q is not x,y", s)
	}
	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil {
		return maze.CellPosition{}, fmt.Errorf("%q is not x,y", s)
	}
	return maze.Pt(x, y), nil
}
