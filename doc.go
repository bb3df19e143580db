// Package gridroute is an interactive 2D grid path-planning toolkit —
// occupancy grids, A* search, tour optimization and multi-waypoint
// route building, with polyline post-processing on top.
//
// 🚀 What is gridroute?
//
//	A planning stack for boolean occupancy grids that brings together:
//		• Grid primitives: bounded boolean grids, obstacle inflation, line visibility
//		• Search: A* over 4- or 8-connected cells with an octile heuristic
//		• Routing: straight-line fast path with A* fallback, distance matrices
//		• Tours: exhaustive optimum for small waypoint sets, greedy beyond
//		• Refinement: randomized shortcut smoothing, uniform resampling
//		• Service: GeoJSON obstacle zones and an HTTP planning endpoint
//
// ✨ Why choose gridroute?
//
//   - Deterministic – seedable randomness, reproducible plans
//   - Grid-agnostic – plans on any in-memory boolean grid, however produced
//   - Pure Go core – the planning packages carry no service baggage
//
// Everything is organized under focused subpackages:
//
//	grid/   — occupancy grid, disk inflation, sampled line-of-sight
//	astar/  — A* shortest path over grid cells
//	tsp/    — visiting-order optimization over a distance matrix
//	route/  — point-to-point legs, distance matrices, multi-waypoint plans
//	refine/ — shortcut smoothing and uniform resampling of polylines
//	zones/  — GeoJSON polygon ingestion and rasterization onto grids
//	server/ — HTTP exposure with serialized mutation and planning
//
// Quick ASCII example:
//
//	    S···█···G
//	    ····█····
//	    ·········
//
//	a wall with a gap below it: the route dips under the wall and
//	climbs back, diagonal steps costing √2.
//
//	go get github.com/katalvlaran/gridroute
package gridroute
