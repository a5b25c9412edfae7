package maze

import "math/rand"

// relax makes one row-major pass over the grid and, for every cell closed on
// three sides, removes one more wall chosen at random. Entry and exit cells are
// left alone, and walls facing a fully closed cell (the landmark) are kept.
// It returns the number of walls opened.
func relax(g *Grid, entry, exit CellPosition, rng *rand.Rand) int {
	order := cardinals
	opened := 0

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := CellPosition{Row: r, Col: c}
			cell := g.At(p)
			if cell.Count() != 3 {
				continue
			}
			rng.Shuffle(len(order), func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
			if p == entry || p == exit {
				continue
			}
			for _, w := range order {
				to := p.Step(w)
				if !g.InBounds(to) || g.At(to) == AllWalls || !cell.Has(w) {
					continue
				}
				_ = g.OpenWall(p, w)
				opened++
				break
			}
		}
	}

	return opened
}
