// Package tsp - size-dispatched entry point for tour solving.
package tsp

import (
	"fmt"
	"math"
)

// Solve validates dist and routes to the strategy matching the instance size:
//
//   - n ≤ 1:             trivial zero-cost identity order, no enumeration.
//   - n == 2:            the single possible round trip [0,1,0].
//   - n ≤ BruteForceMax: exact brute force (globally optimal closed tour).
//   - otherwise:         nearest-neighbor heuristic (no optimality guarantee).
//
// Contracts:
//   - dist must be square, diagonal zero, entries non-negative (+Inf marks a
//     missing edge, NaN is rejected).
//
// Errors: strict sentinels from types.go.
//
// Complexity: validation O(n²); the rest per strategy (see doc.go).
func Solve(dist [][]float64) (Result, error) {
	n, err := validate(dist)
	if err != nil {
		return Result{}, err
	}

	switch {
	case n <= 1:
		// Identity order; nothing to visit beyond the start, cost 0.
		tour := make([]int, n)
		for i := range tour {
			tour[i] = i
		}
		return Result{Tour: tour, Cost: 0}, nil

	case n == 2:
		// Single direct round trip; both orders are the same cycle.
		cost := dist[0][1] + dist[1][0]
		if math.IsInf(cost, 1) {
			return Result{}, ErrIncompleteMatrix
		}
		return Result{Tour: []int{0, 1, 0}, Cost: cost}, nil

	case n <= BruteForceMax:
		return BruteForce(dist)

	default:
		return NearestNeighbor(dist)
	}
}

// validate checks the matrix shape and entry domain shared by all solvers.
// Returns the matrix order n.
// Complexity: O(n²).
func validate(dist [][]float64) (int, error) {
	n := len(dist)
	if n == 0 {
		return 0, ErrEmptyMatrix
	}
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, fmt.Errorf("%w: row %d length %d, want %d", ErrNonSquare, i, len(dist[i]), n)
		}
		if dist[i][i] != 0 {
			return 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrBadDiagonal, i, i, dist[i][i])
		}
		for j := 0; j < n; j++ {
			w := dist[i][j]
			if math.IsNaN(w) || w < 0 {
				return 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNegativeDistance, i, j, w)
			}
		}
	}

	return n, nil
}
