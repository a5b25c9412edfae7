package maze

import "math/rand"

// visitMask tracks the cells reached while carving.
type visitMask struct {
	width, height int
	seen          []bool
}

func newVisitMask(width, height int) *visitMask {
	return &visitMask{
		width:  width,
		height: height,
		seen:   make([]bool, width*height),
	}
}

func (v *visitMask) mark(p CellPosition) {
	v.seen[p.Row*v.width+p.Col] = true
}

func (v *visitMask) visited(p CellPosition) bool {
	return v.seen[p.Row*v.width+p.Col]
}

// carveFrame is one level of the depth-first walk: the cell, its shuffled
// candidate walls and the index of the next candidate to try.
type carveFrame struct {
	pos   CellPosition
	order [4]Wall
	next  int
}

func newCarveFrame(pos CellPosition, rng *rand.Rand) carveFrame {
	f := carveFrame{pos: pos, order: cardinals}
	rng.Shuffle(len(f.order), func(i, j int) {
		f.order[i], f.order[j] = f.order[j], f.order[i]
	})
	return f
}

// carve digs a spanning tree from start with a randomized depth-first
// backtracker. Cells already marked in visited (the landmark) are never
// entered. It returns the number of walls opened.
func carve(g *Grid, visited *visitMask, start CellPosition, rng *rand.Rand) int {
	if visited.visited(start) {
		return 0
	}
	visited.mark(start)
	stack := []carveFrame{newCarveFrame(start, rng)}
	opened := 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.order) {
			stack = stack[:len(stack)-1]
			continue
		}
		w := top.order[top.next]
		top.next++

		to := top.pos.Step(w)
		if !g.InBounds(to) || visited.visited(to) {
			continue
		}
		// Both cells are in bounds, OpenWall cannot fail here.
		_ = g.OpenWall(top.pos, w)
		opened++
		visited.mark(to)
		stack = append(stack, newCarveFrame(to, rng))
	}

	return opened
}
