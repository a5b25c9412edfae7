package maze

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoPath = errors.New("exit is not reachable from entry")

// searchOrder is the fixed neighbour order of the breadth-first search:
// +x, -x, +y, -y.
var searchOrder = [4]CellPosition{{Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: -1, Col: 0}}

// ShortestPath runs a breadth-first search over e from the center of entry to
// the center of exit. The returned path holds expanded-grid coordinates,
// entry and exit included, in start to goal order.
func ShortestPath(e *ExpandedGrid, entry, exit CellPosition) ([]CellPosition, error) {
	start, goal := entry.Expanded(), exit.Expanded()
	if !e.Passable(start) || !e.Passable(goal) {
		return nil, ErrNoPath
	}

	prev := make([]int, e.Width*e.Height)
	for i := range prev {
		prev[i] = -1
	}
	index := func(p CellPosition) int { return p.Row*e.Width + p.Col }
	prev[index(start)] = index(start)

	queue := []CellPosition{start}
	found := false
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			found = true
			break
		}
		for _, d := range searchOrder {
			next := CellPosition{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !e.Passable(next) || prev[index(next)] != -1 {
				continue
			}
			prev[index(next)] = index(cur)
			queue = append(queue, next)
		}
	}
	if !found {
		return nil, ErrNoPath
	}

	var path []CellPosition
	for i := index(goal); ; i = prev[i] {
		path = append(path, CellPosition{Row: i / e.Width, Col: i % e.Width})
		if i == index(start) {
			break
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path, nil
}

// Direction is a compass letter of the solution route.
type Direction byte

const (
	DirNorth Direction = 'N'
	DirEast  Direction = 'E'
	DirSouth Direction = 'S'
	DirWest  Direction = 'W'
)

// Wall returns the wall a step in direction d crosses.
func (d Direction) Wall() Wall {
	switch d {
	case DirNorth:
		return North
	case DirEast:
		return East
	case DirSouth:
		return South
	case DirWest:
		return West
	}
	return 0
}

func (d Direction) String() string {
	return string(d)
}

// EncodeDirections turns an expanded-grid path into one compass letter per
// cell step. Only every second path element (the cell centers) is used.
// A step between non-adjacent cells breaks the search invariant and panics.
func EncodeDirections(path []CellPosition) []Direction {
	dirs := make([]Direction, 0, len(path)/2)
	for i := 2; i < len(path); i += 2 {
		from, to := path[i-2], path[i]
		dx, dy := to.Col-from.Col, to.Row-from.Row
		switch {
		case dx == 2 && dy == 0:
			dirs = append(dirs, DirEast)
		case dx == -2 && dy == 0:
			dirs = append(dirs, DirWest)
		case dx == 0 && dy == 2:
			dirs = append(dirs, DirSouth)
		case dx == 0 && dy == -2:
			dirs = append(dirs, DirNorth)
		default:
			panic(fmt.Sprintf("maze: invalid path step %s -> %s", from, to))
		}
	}
	return dirs
}

// FormatDirections concatenates the letters into a single string.
func FormatDirections(dirs []Direction) string {
	var b strings.Builder
	b.Grow(len(dirs))
	for _, d := range dirs {
		b.WriteByte(byte(d))
	}
	return b.String()
}

// ParseDirections reads a concatenated letter sequence.
func ParseDirections(s string) ([]Direction, error) {
	dirs := make([]Direction, 0, len(s))
	for i := 0; i < len(s); i++ {
		d := Direction(s[i])
		if d.Wall() == 0 {
			return nil, fmt.Errorf("invalid direction %q at offset %d", s[i], i)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// Replay walks dirs from start through open walls of g and returns every
// visited cell, start included.
func Replay(g *Grid, start CellPosition, dirs []Direction) ([]CellPosition, error) {
	if !g.InBounds(start) {
		return nil, ErrOutOfBounds
	}
	cells := []CellPosition{start}
	cur := start
	for i, d := range dirs {
		w := d.Wall()
		if w == 0 || !g.IsValidMove(cur, w) {
			return cells, fmt.Errorf("step %d (%s) from %s: %w", i, d, cur, ErrInvalidMove)
		}
		cur = cur.Step(w)
		cells = append(cells, cur)
	}
	return cells, nil
}
