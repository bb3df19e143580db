// Package route plans continuous obstacle-aware routes across occupancy
// grids, from single point-to-point legs up to multi-waypoint tours.
//
// What:
//
//   - Between: two-tier point-to-point routing — a Bresenham-rasterized
//     straight segment when the sightline is free, A* otherwise.
//   - DistanceMatrix: all-pairs leg costs between waypoints, the input to
//     the tsp solvers.
//   - Plan: orchestrates matrix construction, tour solving, and per-leg
//     routing into one continuous path with an optional marked return leg.
//
// Why:
//
//   - Straight legs avoid A*'s grid-aligned zig-zag when nothing obstructs
//     the sightline, and keep leg cost proportional to true Euclidean
//     distance; A* guarantees an optimal grid path when something does.
//   - The planner always runs against the inflated grid, so every returned
//     route clears obstacles by the configured safety radius.
//
// Complexity:
//
//   - Between:        O(distance) on the straight tier, O(E log V) via A*.
//   - DistanceMatrix: O(n² × leg cost).
//   - Plan:           matrix + tour solve + n leg routes.
//
// Errors:
//
//   - ErrNilGrid: a nil grid was supplied.
//   - ErrUnreachable: a leg of the main tour (or a matrix pair) admits no
//     path; the whole call fails with no partial output. An unreachable
//     return leg is NOT an error: the plan degrades to no return segment.
//
// Options:
//
//   - WithConnectivity: Conn4/Conn8 move set for A* legs (default Conn8).
//   - WithOrderOptimization: order waypoints by tour solving instead of
//     insertion order.
//   - WithReturnLeg: append a marked leg from the last stop back to the
//     first.
package route
