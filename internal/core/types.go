package core

// Cell is the state of a single grid square.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Alive marks a populated cell.
	Alive Cell = 1
)

// Flip returns the opposite state.
func (c Cell) Flip() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Add returns the coordinate shifted by delta.
func (c Coord) Add(delta Coord) Coord {
	return Coord{Row: c.Row + delta.Row, Col: c.Col + delta.Col}
}

// Clamp limits both components to [0, size-1].
func (c Coord) Clamp(size int) Coord {
	return Coord{Row: clampInt(c.Row, 0, size-1), Col: clampInt(c.Col, 0, size-1)}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
