package life

import (
	"github.com/pkg/errors"

	"golife/internal/core"
)

// LWSS lists the cells of the lightweight-spaceship seed relative to its
// stamp origin.
var LWSS = []core.Coord{
	{Row: 0, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: 2},
	{Row: 0, Col: 3},
	{Row: 1, Col: -1},
	{Row: 1, Col: 3},
	{Row: 2, Col: 3},
	{Row: 3, Col: -1},
	{Row: 3, Col: 2},
}

// The pattern may reach stampMarginLow cells before the origin and
// stampMarginHigh cells after it. Rows and columns use the same margins.
const (
	stampMarginLow  = 1
	stampMarginHigh = 3
)

// CanStamp reports whether an origin leaves the whole pattern inside a grid of
// the given size.
func CanStamp(size, row, col int) bool {
	return row >= stampMarginLow && row+stampMarginHigh < size &&
		col >= stampMarginLow && col+stampMarginHigh < size
}

// Stamp sets the LWSS cells alive around (row, col). An origin too close to an
// edge is rejected before any cell is written.
func Stamp(g *core.Grid, row, col int) error {
	if !CanStamp(g.Size(), row, col) {
		return errors.Wrap(core.NewBoundsError(row, col, g.Size()), "stamp origin")
	}
	for _, off := range LWSS {
		if err := g.Set(row+off.Row, col+off.Col, core.Alive); err != nil {
			return errors.Wrapf(err, "stamp cell (%+d,%+d)", off.Row, off.Col)
		}
	}
	return nil
}
