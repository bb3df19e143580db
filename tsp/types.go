package tsp

import "errors"

// BruteForceMax is the largest waypoint count handled by exact enumeration;
// above it Solve switches to the nearest-neighbor heuristic. At 8 waypoints
// the exact solver inspects (8−1)! = 5040 permutations.
const BruteForceMax = 8

// Sentinel errors for tour solving.
var (
	// ErrEmptyMatrix indicates a nil or zero-length distance matrix.
	ErrEmptyMatrix = errors.New("tsp: empty distance matrix")
	// ErrNonSquare indicates a row whose length differs from the matrix order.
	ErrNonSquare = errors.New("tsp: distance matrix must be square")
	// ErrBadDiagonal indicates a non-zero self-distance.
	ErrBadDiagonal = errors.New("tsp: self-distance must be 0")
	// ErrNegativeDistance indicates a negative or NaN matrix entry.
	ErrNegativeDistance = errors.New("tsp: distances must be non-negative finite or +Inf")
	// ErrIncompleteMatrix indicates no closed tour exists because every
	// candidate order crosses a missing (+Inf) edge.
	ErrIncompleteMatrix = errors.New("tsp: incomplete distance matrix, no closed tour")
)

// Result holds the outcome of a tour solver.
type Result struct {
	// Tour is the sequence of waypoint indices, starting and ending at 0.
	// For n waypoints, len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
	// Degenerate instances (n ≤ 1) return the identity order without the
	// closing duplicate.
	Tour []int

	// Cost is the total distance of the cycle.
	Cost float64
}
