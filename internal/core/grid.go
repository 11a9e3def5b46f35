package core

// Grid stores a square board of cells in row-major order. The side length is
// fixed at construction and never changes.
type Grid struct {
	size int
	data []Cell
}

// NewGrid allocates an all-dead grid with the given side length.
func NewGrid(size int) *Grid {
	if size <= 0 {
		size = 1
	}
	return &Grid{size: size, data: make([]Cell, size*size)}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.size }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.data }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Grid) index(row, col int) int { return row*g.size + col }

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Dead, newBoundsError(row, col, g.size)
	}
	return g.data[g.index(row, col)], nil
}

// Alive reports whether (row, col) is in bounds and alive.
func (g *Grid) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.data[g.index(row, col)] == Alive
}

// Set writes state to (row, col). Nothing is written when the coordinate is
// out of range.
func (g *Grid) Set(row, col int, state Cell) error {
	if !g.InBounds(row, col) {
		return newBoundsError(row, col, g.size)
	}
	g.data[g.index(row, col)] = state
	return nil
}

// Toggle flips the cell at (row, col) and returns its new state.
func (g *Grid) Toggle(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Dead, newBoundsError(row, col, g.size)
	}
	i := g.index(row, col)
	g.data[i] = g.data[i].Flip()
	return g.data[i], nil
}

// CountLiveNeighbors counts alive cells in the Moore neighborhood of
// (row, col). Neighbors outside the grid count as dead; the edges do not wrap.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	minRow := max(0, row-1)
	maxRow := min(g.size-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.size-1, col+1)

	count := 0
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.data[g.index(r, c)] == Alive {
				count++
			}
		}
	}
	return count
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(row, col int, c Cell)) {
	for row := 0; row < g.size; row++ {
		base := row * g.size
		for col := 0; col < g.size; col++ {
			fn(row, col, g.data[base+col])
		}
	}
}

// Population returns the number of alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear sets every cell to Dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{size: g.size, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.size != other.size {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
