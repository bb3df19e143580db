// Package grid models a 2D occupancy grid for obstacle-aware route planning.
//
// What:
//
//   - Grid wraps a rectangular boolean field: true = obstacle, false = free.
//   - Two grids typically coexist: a base grid holding raw obstacle truth and
//     an inflated grid derived from it by a safety radius; every planning and
//     collision query runs against the inflated grid.
//   - DiskOffsets/Inflate expand obstacles by a disk-shaped clearance.
//   - IsFree/LineFree answer point and segment free-space queries.
//
// Why:
//
//   - Inflation lets a point-sized planner account for agent size: an
//     inflated grid is a superset of its base, so any path that clears the
//     inflated obstacles clears the real ones with margin.
//   - Segment visibility tests let routers shortcut grid-aligned detours
//     whenever an unobstructed sightline exists.
//
// Complexity:
//
//   - Inflate:      O(obstacles × disk area), Memory: O(W×H).
//   - DiskOffsets:  O(r²).
//   - IsFree:       O(1).
//   - LineFree:     O(segment length).
//
// Errors:
//
//   - ErrEmptyGrid: input field has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell coordinate lies outside the grid.
package grid
