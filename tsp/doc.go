// Package tsp provides closed-tour Travelling Salesman solvers for
// waypoint ordering.
//
// It includes two interchangeable strategies on a distance matrix
// ([][]float64), dispatched by instance size:
//
//   - BruteForce — exact enumeration of all (n−1)! orders of the non-fixed
//     waypoints (start fixed at index 0).
//
//   - Complexity: O((n−1)!·n)
//
//   - Globally optimal; used for n ≤ BruteForceMax (8), bounding the
//     worst case to 5040 permutations.
//
//   - NearestNeighbor — greedy extension to the closest unvisited waypoint.
//
//   - Complexity: O(n²)
//
//   - No optimality guarantee; deterministic for a fixed matrix (ties
//     broken by the first minimum in ascending index order).
//
// All solvers fix waypoint 0 as both start and end, returning a closed tour
// [0, i1, …, 0] of length n+1 with its total cost:
//   - A distance of math.Inf(1) signals “no direct edge”; a tour forced
//     through one yields ErrIncompleteMatrix.
//   - The diagonal must be zero and no entry may be negative or NaN.
//
// Use Solve for the size-based strategy switch, or call a strategy directly.
package tsp
