package zones

import (
	"errors"

	"github.com/paulmach/orb"
)

var (
	// ErrInvalidGeoJSON indicates the input could not be parsed as a
	// GeoJSON FeatureCollection.
	ErrInvalidGeoJSON = errors.New("zones: invalid GeoJSON")

	// ErrNilGrid indicates Rasterize was given a nil grid.
	ErrNilGrid = errors.New("zones: nil grid")
)

// Zone is one polygonal obstacle area. A MultiPolygon feature yields one
// Zone per member polygon, all sharing the feature's name.
type Zone struct {
	// Name comes from the feature's "name" property, empty when absent.
	Name string
	// Polygon is the zone outline in grid units (X=column, Y=row).
	Polygon orb.Polygon
}
