package route

import (
	"fmt"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

// Between routes from one cell to another with the two-tier strategy: when
// the straight sightline is free the leg is the Bresenham-rasterized
// segment (O(distance), metrically shorter than a grid-stepped path);
// otherwise the leg falls back to A* under the given connectivity.
//
// Returns ErrUnreachable (wrapping the A* sentinel) when no path exists or
// an endpoint is occupied.
func Between(g *grid.Grid, from, to grid.Coord, conn grid.Connectivity) ([]grid.Coord, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.LineFree(from, to) {
		return bresenhamLine(from, to), nil
	}

	path, err := astar.FindPath(g, from, to, conn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v -> %v: %v", ErrUnreachable, from, to, err)
	}

	return path, nil
}

// bresenhamLine rasterizes the integer segment from→to, inclusive of both
// endpoints, using Bresenham's line algorithm. Consecutive points differ by
// at most one cell per axis and the sequence is collinear with the segment.
// Complexity: O(distance).
func bresenhamLine(from, to grid.Coord) []grid.Coord {
	dy := abs(to.Y - from.Y)
	dx := abs(to.X - from.X)

	sy := 1
	if from.Y > to.Y {
		sy = -1
	}
	sx := 1
	if from.X > to.X {
		sx = -1
	}

	points := make([]grid.Coord, 0, max(dy, dx)+1)
	y, x := from.Y, from.X
	err := dx - dy
	for {
		points = append(points, grid.Coord{Y: y, X: x})
		if y == to.Y && x == to.X {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}

	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
