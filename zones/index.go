package zones

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// bboxEps pads degenerate bounding-box sides; rtreego rejects rectangles
// with non-positive lengths.
const bboxEps = 1e-9

// entry adapts one zone to the rtreego.Spatial interface.
type entry struct {
	zone Zone
	rect rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect { return e.rect }

// Index answers point-in-zone queries through a 2-D R-tree over zone
// bounding boxes. Candidates from the tree still need the exact polygon
// containment test; Contains performs both steps.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an index over the given zones. Zones whose bounding box
// cannot be materialized are dropped.
func NewIndex(zs []Zone) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	for _, z := range zs {
		rect, err := boundRect(z.Polygon.Bound())
		if err != nil {
			continue
		}
		tree.Insert(&entry{zone: z, rect: rect})
	}
	return &Index{tree: tree}
}

// Len reports the number of indexed zones.
func (ix *Index) Len() int { return ix.tree.Size() }

// At returns the zones whose polygon contains pt.
func (ix *Index) At(pt orb.Point) []Zone {
	probe := rtreego.Point{pt[0], pt[1]}.ToRect(bboxEps)

	var hits []Zone
	for _, item := range ix.tree.SearchIntersect(probe) {
		z := item.(*entry).zone
		if planar.PolygonContains(z.Polygon, pt) {
			hits = append(hits, z)
		}
	}
	return hits
}

// Contains reports whether any zone covers pt.
func (ix *Index) Contains(pt orb.Point) bool {
	return len(ix.At(pt)) > 0
}

func boundRect(b orb.Bound) (rtreego.Rect, error) {
	width := b.Max[0] - b.Min[0]
	if width < bboxEps {
		width = bboxEps
	}
	height := b.Max[1] - b.Min[1]
	if height < bboxEps {
		height = bboxEps
	}
	return rtreego.NewRect(rtreego.Point{b.Min[0], b.Min[1]}, []float64{width, height})
}
