package grid

import "math"

// DiskOffsets returns every integer offset (dy,dx) with dy²+dx² ≤ radius².
// A non-positive radius yields exactly {(0,0)}: the origin always satisfies
// 0 ≤ radius² when radius² ≥ 0, so a zero-radius disk still contains itself.
// Offsets are emitted row by row (dy ascending, dx ascending) for determinism.
// Complexity: O(r²) time and memory.
func DiskOffsets(radius float64) []Offset {
	if radius < 0 {
		radius = 0
	}
	maxOffset := int(math.Ceil(radius))
	r2 := radius * radius

	out := make([]Offset, 0, (2*maxOffset+1)*(2*maxOffset+1))
	for dy := -maxOffset; dy <= maxOffset; dy++ {
		for dx := -maxOffset; dx <= maxOffset; dx++ {
			if float64(dx*dx+dy*dy) <= r2 {
				out = append(out, Offset{DY: dy, DX: dx})
			}
		}
	}

	return out
}

// Inflate returns a new grid in which every obstacle of the receiver is
// expanded by a disk of radius baseRadius+extraRadius, clipped at the grid
// boundary. The receiver is never mutated; the result is a superset of the
// receiver's obstacles (the disk always contains the origin offset).
//
// Inflate is recomputed whenever the base grid or the safety radius changes;
// the derived grid must never be edited directly.
//
// Complexity: O(obstacles × disk area) time, O(W×H) memory. Acceptable for
// grids of a few hundred cells per side recomputed only on edits.
func (g *Grid) Inflate(baseRadius, extraRadius float64) *Grid {
	offsets := DiskOffsets(baseRadius + extraRadius)
	out := g.Clone()

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[y][x] {
				continue
			}
			for _, d := range offsets {
				ny, nx := y+d.DY, x+d.DX
				if out.InBounds(ny, nx) {
					out.cells[ny][nx] = true
				}
			}
		}
	}

	return out
}
