package refine

import (
	"github.com/katalvlaran/gridroute/grid"
)

// Shortcut runs randomized local search over path: each iteration draws a
// uniform random index pair (i, j) with j ≥ i+2 and, when the straight
// segment path[i]→path[j] is collision-free on g, splices it in place of
// the intermediate points.
//
// Clearance is honored by running against the inflated planning grid — the
// same free space the path was planned in.
//
// Properties:
//   - The point count is monotonically non-increasing.
//   - Every surviving consecutive pair still passes g.LineFree.
//   - Pure anytime improvement under a fixed budget; no global optimality.
//   - Paths of length ≤ 2 are returned unchanged (a fresh copy is still
//     made, the input slice is never mutated).
//
// Complexity: O(MaxIterations × sightline length).
func Shortcut(g *grid.Grid, path []grid.Coord, opts ...Option) []grid.Coord {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	points := make([]grid.Coord, len(path))
	copy(points, path)
	if g == nil || len(points) <= 2 {
		return points
	}

	rng := cfg.rng()
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		if len(points) <= 2 {
			break
		}

		// i ∈ [0, len-3], j ∈ [i+2, len-1]: at least one point between.
		i := rng.Intn(len(points) - 2)
		j := i + 2 + rng.Intn(len(points)-i-2)

		if g.LineFree(points[i], points[j]) {
			points = append(points[:i+1], points[j:]...)
		}
	}

	return points
}
