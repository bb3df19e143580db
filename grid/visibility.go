package grid

import "math"

// LineFree reports whether the straight segment p0→p1 stays in free space.
//
// The segment is sampled at max(2, ceil(distance*2)) evenly spaced parameter
// values, inclusive of both endpoints; each sample is rounded to the nearest
// cell and must be free. Sampling is symmetric in the endpoints, so
// LineFree(p, q) == LineFree(q, p).
//
// This is a supersampled, probabilistic check, not an exact rasterization:
// obstacles thinner than the sampling interval on shallow diagonals can slip
// between samples. That is a documented approximation for cell-scale
// obstacles, not a defect; callers needing exactness must rasterize.
//
// A zero-length segment reports free without sampling its cell.
//
// Complexity: O(distance) time, O(1) memory.
func (g *Grid) LineFree(p0, p1 Coord) bool {
	dy := float64(p1.Y - p0.Y)
	dx := float64(p1.X - p0.X)
	dist := math.Hypot(dy, dx)
	if dist == 0 {
		return true
	}

	steps := int(math.Max(2, math.Ceil(dist*2)))
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		y := float64(p0.Y)*(1-t) + float64(p1.Y)*t
		x := float64(p0.X)*(1-t) + float64(p1.X)*t
		if !g.IsFree(int(math.Round(y)), int(math.Round(x))) {
			return false
		}
	}

	return true
}
