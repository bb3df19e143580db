// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridroute.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input field has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input field must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: cell coordinate out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Coord is an integer grid coordinate in (row, column) = (Y, X) order.
// Coordinates index cells, not pixels; the presentation layer owns any
// pixel-space mapping.
type Coord struct {
	Y, X int
}

// Offset is a relative (dy, dx) cell displacement.
type Offset struct {
	DY, DX int
}

// Grid is a fixed-size occupancy field in row-major (y, x) order.
// cells[y][x] == true marks an obstacle. The zero value is not usable;
// construct via New or From2D.
type Grid struct {
	height, width int
	cells         [][]bool
}
