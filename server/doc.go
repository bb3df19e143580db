// Package server exposes grid loading, zone ingestion and path planning
// over HTTP.
//
// What
//
//	Service holds the mutable planning state: a base occupancy grid, the
//	accumulated obstacle zones, and the world grid (base with zones
//	rasterized). Handler returns a gorilla/mux router with four routes:
//
//	  POST /grid   - replace the base grid (height, width, obstacle list)
//	  GET  /grid   - dump the current world grid
//	  POST /zones  - add GeoJSON obstacle zones
//	  POST /plan   - plan a multi-waypoint route, with optional obstacle
//	                 inflation, tour optimization, return leg, shortcut
//	                 smoothing and uniform resampling
//
// Concurrency
//
//	One mutex serializes every request. Grid mutation and planning never
//	interleave, so a plan always sees a consistent world grid. Throughput
//	is bounded by single-flight planning, which is the intended trade.
//
// Post-processing
//
//	Shortcut and resample rewrite the polyline, so emitted indices into
//	the original path stop being meaningful. When either is requested the
//	response omits the return-leg start index.
package server
