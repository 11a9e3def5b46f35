// Package life implements Conway's Game of Life on a hard-edged grid: the
// B3/S23 evolution rule, the lightweight-spaceship stamp and noise seeding.
package life

import "golife/internal/core"

// Evolve returns the next generation of g. Neighbor counts are read from g
// only; g itself is never modified.
func Evolve(g *core.Grid) *core.Grid {
	size := g.Size()
	next := core.NewGrid(size)
	cur := g.Cells()
	out := next.Cells()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			idx := row*size + col
			neighbors := g.CountLiveNeighbors(row, col)
			if NextState(cur[idx], neighbors) == core.Alive {
				out[idx] = core.Alive
			}
		}
	}
	return next
}

// NextState applies the survival and birth rule to a single cell.
func NextState(c core.Cell, neighbors int) core.Cell {
	if c == core.Alive {
		if neighbors == 2 || neighbors == 3 {
			return core.Alive
		}
		return core.Dead
	}
	if neighbors == 3 {
		return core.Alive
	}
	return core.Dead
}

// EvolveN applies Evolve n times and returns the final generation.
func EvolveN(g *core.Grid, n int) *core.Grid {
	cur := g
	for i := 0; i < n; i++ {
		cur = Evolve(cur)
	}
	if cur == g {
		return g.Clone()
	}
	return cur
}
