package zones

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/gridroute/grid"
)

// Rasterize stamps the zones onto a copy of g: every cell whose lattice
// point lies inside some zone polygon becomes an obstacle. Cells already
// blocked in g stay blocked. The input grid is not modified.
func Rasterize(g *grid.Grid, zs []Zone) (*grid.Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	out := g.Clone()
	if len(zs) == 0 {
		return out, nil
	}

	ix := NewIndex(zs)
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			if out.IsObstacle(y, x) {
				continue
			}
			if ix.Contains(orb.Point{float64(x), float64(y)}) {
				// In bounds by construction, error unreachable.
				_ = out.SetObstacle(y, x, true)
			}
		}
	}
	return out, nil
}
