// Package astar defines core types and sentinel errors for A* grid search.
//
// FindPath computes a minimum-cost path between two cells of an occupancy
// grid. Orthogonal moves cost 1; diagonal moves (Conn8 only) cost √2. The
// heuristic is octile distance under Conn8 and Manhattan distance under
// Conn4 — both admissible and consistent for their move set, so the returned
// path cost is optimal.
//
// Complexity:
//
//	– Time:  O(E log V)   where V = free cells, E ≤ 8·V
//	   • Each cell is finalized at most once (V pops).
//	   • Each relaxation may push into the frontier (up to E pushes).
//	   • Each heap operation costs O(log V).
//	– Space: O(V) for the best-cost map, parent map, and frontier.
//
// Errors (sentinel):
//
//	– ErrNilGrid        if the provided grid pointer is nil.
//	– ErrStartOccupied  if the start cell is occupied or out of bounds.
//	– ErrGoalOccupied   if the goal cell is occupied or out of bounds.
//	– ErrNoPath         if the frontier drains before the goal is reached.
package astar

import "errors"

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOccupied indicates the start cell is an obstacle or lies
	// outside the grid; the search fails immediately without exploring.
	ErrStartOccupied = errors.New("astar: start cell is occupied")

	// ErrGoalOccupied indicates the goal cell is an obstacle or lies
	// outside the grid; the search fails immediately without exploring.
	ErrGoalOccupied = errors.New("astar: goal cell is occupied")

	// ErrNoPath indicates the goal is unreachable from the start: the
	// frontier was exhausted without popping the goal.
	ErrNoPath = errors.New("astar: no path between start and goal")
)
