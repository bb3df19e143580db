// Package refine post-processes planned paths for presentation and
// playback.
//
// What:
//
//   - Shortcut — randomized local search that splices straight segments
//     over detours whenever an unobstructed sightline exists between two
//     non-adjacent path points.
//   - Resample — uniform arc-length redistribution of path points, with
//     leftover distance carried across segment boundaries so spacing stays
//     even through bends; fractional output coordinates as orb geometry.
//
// Why:
//
//   - A* legs zig-zag along grid moves; shortcutting removes those detours
//     without re-planning, monotonically shrinking the point count. It is a
//     pure anytime improvement: a fixed iteration budget, no optimality
//     claim.
//   - Animation layers step an agent along the path at constant speed;
//     uniform spacing makes that a simple index walk.
//
// Complexity:
//
//   - Shortcut: O(iterations × sightline length).
//   - Resample: O(input points + output points).
//
// Determinism:
//
//   - Shortcut draws index pairs from a seedable RNG; seed 0 maps to a
//     fixed default seed so default runs are reproducible. Correctness does
//     not depend on the random sequence, only the pair sampler's
//     uniformity over valid (i, j), j ≥ i+2.
package refine
