package zones

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FromGeoJSON parses a FeatureCollection into zones. Polygon features yield
// one Zone each, MultiPolygon features one Zone per member polygon; features
// with any other geometry type are skipped. An empty result is not an error.
func FromGeoJSON(data []byte) ([]Zone, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeoJSON, err)
	}

	var zs []Zone
	for _, f := range fc.Features {
		name := f.Properties.MustString("name", "")
		switch geom := f.Geometry.(type) {
		case orb.Polygon:
			zs = append(zs, Zone{Name: name, Polygon: geom})
		case orb.MultiPolygon:
			for _, poly := range geom {
				zs = append(zs, Zone{Name: name, Polygon: poly})
			}
		}
	}
	return zs, nil
}
