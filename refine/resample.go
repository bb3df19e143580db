package refine

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridroute/grid"
)

// spacingEps absorbs floating drift when an emission lands exactly on a
// segment endpoint, keeping re-resampling at the same step stable.
const spacingEps = 1e-9

// ToLineString converts an integer grid path to planar geometry, mapping
// column→X and row→Y. Complexity: O(len(path)).
func ToLineString(path []grid.Coord) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, c := range path {
		ls[i] = orb.Point{float64(c.X), float64(c.Y)}
	}

	return ls
}

// Resample redistributes the points of line at uniform arc-length intervals
// of step. Leftover distance is carried across segment boundaries as debt,
// so spacing stays uniform through bends; the final interval may be shorter
// than step. The exact first and last input points are always included,
// regardless of step alignment.
//
// Inputs with fewer than 2 points (or a non-positive step) are returned
// unchanged as a fresh copy.
//
// Complexity: O(input points + output points).
func Resample(line orb.LineString, step float64) orb.LineString {
	if len(line) < 2 || step <= 0 {
		out := make(orb.LineString, len(line))
		copy(out, line)

		return out
	}

	out := orb.LineString{line[0]}
	// carry is the arc length already walked since the last emitted point.
	var carry float64

	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		length := planar.Distance(a, b)
		if length == 0 {
			continue
		}
		dir := orb.Point{(b[0] - a[0]) / length, (b[1] - a[1]) / length}

		// pos is the distance walked into the current segment.
		var pos float64
		for step-carry <= length-pos+spacingEps {
			pos += step - carry
			out = append(out, orb.Point{a[0] + dir[0]*pos, a[1] + dir[1]*pos})
			carry = 0
		}
		carry += length - pos
	}

	// Keep the exact final point; replace a coincident last emission rather
	// than duplicating it.
	last := line[len(line)-1]
	if planar.Distance(out[len(out)-1], last) <= spacingEps {
		out[len(out)-1] = last
	} else {
		out = append(out, last)
	}

	return out
}
