package zones_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/zones"
)

// collection covers lattice points {2,3,4}x{2,3,4} with "lake", two unit
// squares around (7,1) and (7,4) with "twin", plus a Point feature that
// must be skipped.
const collection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "lake"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[1.5,1.5],[4.5,1.5],[4.5,4.5],[1.5,4.5],[1.5,1.5]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "twin"},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[6.5,0.5],[7.5,0.5],[7.5,1.5],[6.5,1.5],[6.5,0.5]]],
          [[[6.5,3.5],[7.5,3.5],[7.5,4.5],[6.5,4.5],[6.5,3.5]]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "Point", "coordinates": [0, 0]}
    }
  ]
}`

func TestFromGeoJSON(t *testing.T) {
	zs, err := zones.FromGeoJSON([]byte(collection))
	require.NoError(t, err)
	require.Len(t, zs, 3)
	require.Equal(t, "lake", zs[0].Name)
	require.Equal(t, "twin", zs[1].Name)
	require.Equal(t, "twin", zs[2].Name)
}

func TestFromGeoJSON_Invalid(t *testing.T) {
	_, err := zones.FromGeoJSON([]byte(`{"type": "FeatureCollection", "features": [`))
	require.ErrorIs(t, err, zones.ErrInvalidGeoJSON)
}

func TestIndex_Queries(t *testing.T) {
	zs, err := zones.FromGeoJSON([]byte(collection))
	require.NoError(t, err)

	ix := zones.NewIndex(zs)
	require.Equal(t, 3, ix.Len())

	require.True(t, ix.Contains(orb.Point{3, 3}))
	require.True(t, ix.Contains(orb.Point{7, 1}))
	require.False(t, ix.Contains(orb.Point{0, 0}))
	require.False(t, ix.Contains(orb.Point{7, 2}))

	hits := ix.At(orb.Point{3, 3})
	require.Len(t, hits, 1)
	require.Equal(t, "lake", hits[0].Name)
}

// TestIndex_OverlappingZones verifies At reports every covering zone, not
// just the first bounding-box candidate.
func TestIndex_OverlappingZones(t *testing.T) {
	square := func(minX, minY, side float64) orb.Polygon {
		return orb.Polygon{orb.Ring{
			{minX, minY}, {minX + side, minY},
			{minX + side, minY + side}, {minX, minY + side},
			{minX, minY},
		}}
	}
	ix := zones.NewIndex([]zones.Zone{
		{Name: "outer", Polygon: square(0, 0, 10)},
		{Name: "inner", Polygon: square(4, 4, 2)},
	})

	require.Len(t, ix.At(orb.Point{5, 5}), 2)
	require.Len(t, ix.At(orb.Point{1, 1}), 1)
}

func TestRasterize(t *testing.T) {
	zs, err := zones.FromGeoJSON([]byte(collection))
	require.NoError(t, err)

	base, err := grid.New(8, 9)
	require.NoError(t, err)
	require.NoError(t, base.SetObstacle(0, 0, true))

	out, err := zones.Rasterize(base, zs)
	require.NoError(t, err)

	// 3x3 lake block, two single-cell twins, plus the pre-existing obstacle.
	require.Len(t, out.Obstacles(), 9+2+1)
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			require.True(t, out.IsObstacle(y, x), "lake cell (%d,%d)", y, x)
		}
	}
	require.True(t, out.IsObstacle(1, 7))
	require.True(t, out.IsObstacle(4, 7))
	require.True(t, out.IsObstacle(0, 0))
	require.True(t, out.IsFree(5, 5))

	// The base grid keeps only its original obstacle.
	require.Len(t, base.Obstacles(), 1)
}

func TestRasterize_NoZones(t *testing.T) {
	base, err := grid.New(3, 3)
	require.NoError(t, err)
	out, err := zones.Rasterize(base, nil)
	require.NoError(t, err)
	require.NotSame(t, base, out)
	require.Empty(t, out.Obstacles())
}

func TestRasterize_NilGrid(t *testing.T) {
	_, err := zones.Rasterize(nil, nil)
	require.ErrorIs(t, err, zones.ErrNilGrid)
}
