// Package zones ingests obstacle polygons as GeoJSON and rasterizes them
// onto an occupancy grid.
//
// What
//
//	FromGeoJSON parses a FeatureCollection into named polygonal zones
//	(Polygon and MultiPolygon geometries; other geometry types are skipped).
//	Index holds the zones in a 2-D R-tree for point queries. Rasterize marks
//	every grid cell whose lattice point falls inside a zone as an obstacle,
//	producing a new grid and leaving the input untouched.
//
// Why
//
//	Planning runs on boolean grids, however they were produced. Polygonal
//	no-go areas are the common external source, and rasterization is the
//	bridge: load zones once, stamp them onto whatever base grid the caller
//	plans on. The R-tree keeps rasterization proportional to covered area
//	instead of zones x cells.
//
// Coordinates
//
//	A cell (y, x) maps to the planar point (X=x, Y=y), the same convention
//	the refine package uses for line strings. GeoJSON input is therefore
//	expected in grid units, not geographic degrees.
//
// Complexity
//
//	FromGeoJSON: O(V) over total vertices. Rasterize: O(H*W * (log Z + C*V'))
//	where C is candidate zones per cell after R-tree pruning.
//
// Errors
//
//	ErrInvalidGeoJSON - input is not a parseable FeatureCollection.
//	ErrNilGrid        - Rasterize received a nil grid.
package zones
