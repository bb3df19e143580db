package route

import (
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/tsp"
)

// Plan computes one continuous route visiting every waypoint, in insertion
// order or in a solved tour order, optionally closing back to the first
// stop with a marked return segment.
//
// Behavior:
//  1. 0 or 1 waypoints: trivial success — the waypoint list itself (empty
//     for zero) with ReturnStart == NoReturn; no search is performed.
//  2. OptimizeOrder: build the full distance matrix (any unreachable pair
//     aborts the call), solve the tour with tsp.Solve, and drop the
//     trailing duplicate start index before stitching.
//  3. Route each consecutive pair with Between; any unreachable main-tour
//     leg is fatal to the whole call. Leg paths are concatenated dropping
//     each leg's first point except for the very first leg, so shared
//     endpoints appear once.
//  4. IncludeReturn with ≥ 2 waypoints: record ReturnStart at the current
//     path length, then route from the last stop back to the first and
//     append it (again dropping the shared point). If only this return leg
//     is unreachable the plan still succeeds with ReturnStart == NoReturn.
//
// The grid must be the inflated planning grid; waypoints on inflated
// obstacle cells make their legs unreachable exactly like base obstacles.
//
// Errors: ErrNilGrid, ErrUnreachable (main tour only; see step 4), plus
// tsp sentinels should the matrix be malformed.
//
// Complexity: O(n² × leg cost) for the matrix when ordering, plus the tour
// solve (factorial below the brute-force bound, O(n²) above), plus n legs.
func Plan(g *grid.Grid, waypoints []grid.Coord, opts ...Option) (Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Route{}, ErrNilGrid
	}

	if len(waypoints) <= 1 {
		path := make([]grid.Coord, len(waypoints))
		copy(path, waypoints)

		return Route{Path: path, ReturnStart: NoReturn}, nil
	}

	order, err := visitingOrder(g, waypoints, cfg)
	if err != nil {
		return Route{}, err
	}

	// Stitch per-leg paths, dropping each leg's duplicated first point.
	var path []grid.Coord
	for i := 0; i+1 < len(order); i++ {
		leg, legErr := Between(g, waypoints[order[i]], waypoints[order[i+1]], cfg.Conn)
		if legErr != nil {
			return Route{}, legErr
		}
		if i == 0 {
			path = append(path, leg...)
		} else {
			path = append(path, leg[1:]...)
		}
	}

	returnStart := NoReturn
	if cfg.IncludeReturn {
		// The return leg is logically distinct from "go to the last stop":
		// it is marked for rendering and its failure is non-fatal.
		returnStart = len(path)
		last := waypoints[order[len(order)-1]]
		first := waypoints[order[0]]
		back, backErr := Between(g, last, first, cfg.Conn)
		if backErr != nil {
			returnStart = NoReturn
		} else {
			path = append(path, back[1:]...)
		}
	}

	return Route{Path: path, ReturnStart: returnStart}, nil
}

// visitingOrder resolves the waypoint visiting order as indices into
// waypoints: the solved tour order without its trailing duplicate start
// when optimizing, insertion order otherwise.
func visitingOrder(g *grid.Grid, waypoints []grid.Coord, cfg Options) ([]int, error) {
	n := len(waypoints)
	if !cfg.OptimizeOrder {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}

		return order, nil
	}

	dist, err := DistanceMatrix(g, waypoints, cfg.Conn)
	if err != nil {
		return nil, err
	}
	res, err := tsp.Solve(dist)
	if err != nil {
		return nil, err
	}

	order := res.Tour
	if len(order) > 1 && order[len(order)-1] == order[0] {
		order = order[:len(order)-1]
	}

	return order, nil
}
