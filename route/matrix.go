package route

import (
	"math"

	"github.com/katalvlaran/gridroute/grid"
)

// PathCost recomputes the Euclidean length of a path from its coordinates:
// the sum of per-step hypotenuses. Unit for orthogonal steps, √2 for
// diagonal steps, full segment length for collinear straight runs.
// Complexity: O(len(path)).
func PathCost(path []grid.Coord) float64 {
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		dy := float64(path[i+1].Y - path[i].Y)
		dx := float64(path[i+1].X - path[i].X)
		sum += math.Hypot(dy, dx)
	}

	return sum
}

// DistanceMatrix fills the n×n leg-cost matrix between waypoints by routing
// each ordered pair through Between. The diagonal is 0. Any unreachable
// pair aborts the whole matrix with ErrUnreachable — a partial matrix would
// admit no closed tour anyway.
//
// The matrix is symmetric in practice: the grid is immutable during a
// single planning call, so both directions of a pair route over identical
// free space. That is an implicit invariant, asserted in tests rather than
// enforced here.
//
// Complexity: O(n² × leg cost).
func DistanceMatrix(g *grid.Grid, points []grid.Coord, conn grid.Connectivity) ([][]float64, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	n := len(points)
	dist := make([][]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			path, err := Between(g, points[i], points[j], conn)
			if err != nil {
				return nil, err
			}
			dist[i][j] = PathCost(path)
		}
	}

	return dist, nil
}
