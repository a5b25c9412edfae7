package maze

import (
	"fmt"
	"math/rand"
	"strings"
)

// Generator owns one maze and every structure derived from it. It is not safe
// for concurrent use and Generate must not be called reentrantly.
type Generator struct {
	opts       Options
	outputFile string
	explicit   map[string]bool // fields supplied by the caller, for Report

	rng      *rand.Rand
	grid     *Grid
	expanded *ExpandedGrid
	path     []CellPosition
	dirs     []Direction
	carved   int
	relaxed  int
}

// New validates opts and returns a Generator. Nothing is carved until
// Generate is called.
func New(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Generator{opts: opts, outputFile: DefaultOutputFile}, nil
}

// SetOutputFile records where the caller writes the maze file. The generator
// never touches the file; the path only appears in Report.
func (g *Generator) SetOutputFile(path string) {
	g.outputFile = path
}

// MarkExplicit records which configuration keys were supplied rather than
// defaulted. It only affects Report.
func (g *Generator) MarkExplicit(fields ...string) {
	if g.explicit == nil {
		g.explicit = make(map[string]bool)
	}
	for _, f := range fields {
		g.explicit[f] = true
	}
}

// Generate rebuilds the maze from scratch: reseed, stamp the landmark, carve
// from the entry, relax when the maze is imperfect, expand and solve.
func (g *Generator) Generate() error {
	g.rng = rand.New(rand.NewSource(g.opts.seed()))
	g.grid = NewGrid(g.opts.Width, g.opts.Height)

	visited := newVisitMask(g.opts.Width, g.opts.Height)
	stampLandmark(visited)
	for _, ep := range []struct {
		field string
		pos   CellPosition
	}{{"ENTRY", g.opts.Entry}, {"EXIT", g.opts.Exit}} {
		if visited.visited(ep.pos) {
			return &FieldError{Field: ep.field, Value: ep.pos, Reason: "lies inside the 42 landmark"}
		}
	}

	g.carved = carve(g.grid, visited, g.opts.Entry, g.rng)
	g.relaxed = 0
	if !g.opts.Perfect {
		g.relaxed = relax(g.grid, g.opts.Entry, g.opts.Exit, g.rng)
	}
	if err := g.grid.CheckMirror(); err != nil {
		panic(err)
	}

	g.expanded = Expand(g.grid)
	path, err := ShortestPath(g.expanded, g.opts.Entry, g.opts.Exit)
	if err != nil {
		return fmt.Errorf("solving maze: %w", err)
	}
	g.path = path
	g.dirs = EncodeDirections(path)
	g.expanded.Set(g.opts.Entry.Expanded(), TileEntry)
	g.expanded.Set(g.opts.Exit.Expanded(), TileExit)
	return nil
}

// SetSeed changes the seed used by the next Generate.
func (g *Generator) SetSeed(seed int64) error {
	opts := g.opts
	opts.Seed = seed
	if err := opts.Validate(); err != nil {
		return err
	}
	g.opts = opts
	g.MarkExplicit("SEED")
	return nil
}

// SetPerfect toggles relaxation for the next Generate.
func (g *Generator) SetPerfect(perfect bool) {
	g.opts.Perfect = perfect
	g.MarkExplicit("PERFECT")
}

// Options returns the current generation options.
func (g *Generator) Options() Options { return g.opts }

// Grid returns the carved wall grid.
func (g *Generator) Grid() *Grid { return g.grid }

// Expanded returns the tile grid, with entry and exit tagged.
func (g *Generator) Expanded() *ExpandedGrid { return g.expanded }

// Path returns the shortest route in expanded-grid coordinates.
func (g *Generator) Path() []CellPosition { return g.path }

// Directions returns the route as compass letters.
func (g *Generator) Directions() []Direction { return g.dirs }

// Landmark returns the stamped landmark cells.
func (g *Generator) Landmark() []CellPosition {
	return LandmarkCells(g.opts.Width, g.opts.Height)
}

// CarvedWalls returns the walls opened by carving alone.
func (g *Generator) CarvedWalls() int { return g.carved }

// RelaxedWalls returns the extra walls opened by relaxation.
func (g *Generator) RelaxedWalls() int { return g.relaxed }

// Report summarises the current settings, flagging defaulted ones.
func (g *Generator) Report() string {
	fields := []struct {
		name  string
		value any
	}{
		{"WIDTH", g.opts.Width},
		{"HEIGHT", g.opts.Height},
		{"ENTRY", g.opts.Entry},
		{"EXIT", g.opts.Exit},
		{"OUTPUT_FILE", g.outputFile},
		{"SEED", g.opts.Seed},
		{"PERFECT", g.opts.Perfect},
	}

	lines := []string{"===Current settings==="}
	for _, f := range fields {
		if g.explicit[f.name] {
			lines = append(lines, fmt.Sprintf("%s: %v", f.name, f.value))
		} else {
			lines = append(lines, fmt.Sprintf("%s (Default): %v", f.name, f.value))
		}
	}
	return strings.Join(lines, "\n")
}
