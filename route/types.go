// Package route defines core types, options, and sentinel errors
// for the route subpackage of github.com/katalvlaran/gridroute.
package route

import (
	"errors"

	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors for routing operations.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was supplied.
	ErrNilGrid = errors.New("route: grid is nil")
	// ErrUnreachable indicates that a required leg admits no path: either a
	// distance-matrix pair or a main-tour segment. The whole planning call
	// fails; there is no partial or best-effort output.
	ErrUnreachable = errors.New("route: no path for a required leg")
)

// NoReturn is the ReturnStart value of a route without a return segment.
const NoReturn = -1

// Route is a planned multi-waypoint path.
type Route struct {
	// Path is the continuous coordinate sequence visiting every waypoint.
	// Consecutive points are either single grid moves (A* legs) or collinear
	// straight-line steps (Bresenham legs); shared leg endpoints appear once.
	Path []grid.Coord

	// ReturnStart is the index of the first point belonging to the
	// return-to-origin segment, or NoReturn when no return leg exists.
	// It only differentiates rendering; path semantics do not depend on it.
	ReturnStart int
}

// Options configures Plan.
//
// Conn          – move set for A* legs (Conn4 or Conn8).
// OptimizeOrder – solve a tour for the visiting order instead of using the
// waypoints' insertion order.
// IncludeReturn – append a return leg from the last stop to the first.
type Options struct {
	Conn          grid.Connectivity
	OptimizeOrder bool
	IncludeReturn bool
}

// Option represents a functional option for configuring Plan.
type Option func(*Options)

// WithConnectivity selects the move set used by A* legs.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// WithOrderOptimization enables tour solving for the visiting order.
// Without it, waypoints are visited in insertion order.
func WithOrderOptimization() Option {
	return func(o *Options) {
		o.OptimizeOrder = true
	}
}

// WithReturnLeg appends a return leg from the last stop back to the first.
// If only that leg is unreachable, the plan still succeeds and the route
// reports ReturnStart == NoReturn.
func WithReturnLeg() Option {
	return func(o *Options) {
		o.IncludeReturn = true
	}
}

// DefaultOptions returns an Options struct with the planner defaults:
// diagonal movement allowed, insertion-order visiting, no return leg.
func DefaultOptions() Options {
	return Options{
		Conn:          grid.Conn8,
		OptimizeOrder: false,
		IncludeReturn: false,
	}
}
