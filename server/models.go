package server

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// cellJSON is one grid coordinate on the wire, row first.
type cellJSON struct {
	Y int `json:"y"`
	X int `json:"x"`
}

func toCells(path []grid.Coord) []cellJSON {
	out := make([]cellJSON, len(path))
	for i, c := range path {
		out[i] = cellJSON{Y: c.Y, X: c.X}
	}
	return out
}

// pointJSON is one planar point after resampling, column first to match
// the line-string convention.
type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type gridRequest struct {
	Height    int        `json:"height"`
	Width     int        `json:"width"`
	Obstacles []cellJSON `json:"obstacles"`
}

func (r gridRequest) validate() error {
	if r.Height <= 0 || r.Width <= 0 {
		return fmt.Errorf("%w: grid dimensions must be positive", ErrBadRequest)
	}
	return nil
}

type gridResponse struct {
	Height    int        `json:"height"`
	Width     int        `json:"width"`
	Obstacles []cellJSON `json:"obstacles"`
}

type zonesResponse struct {
	Added int `json:"added"`
	Total int `json:"total"`
}

type shortcutParams struct {
	MaxIterations int   `json:"max_iterations"`
	Seed          int64 `json:"seed"`
}

type resampleParams struct {
	Step float64 `json:"step"`
}

type planRequest struct {
	Waypoints     []cellJSON      `json:"waypoints"`
	Connectivity  int             `json:"connectivity"`
	OptimizeOrder bool            `json:"optimize_order"`
	ReturnLeg     bool            `json:"return_leg"`
	BaseRadius    float64         `json:"base_radius"`
	ExtraRadius   float64         `json:"extra_radius"`
	Shortcut      *shortcutParams `json:"shortcut"`
	Resample      *resampleParams `json:"resample"`
}

func (r planRequest) connectivity() (grid.Connectivity, error) {
	switch r.Connectivity {
	case 0, 8:
		return grid.Conn8, nil
	case 4:
		return grid.Conn4, nil
	default:
		return 0, fmt.Errorf("%w: connectivity must be 4 or 8", ErrBadRequest)
	}
}

func (r planRequest) validate() error {
	if r.BaseRadius < 0 || r.ExtraRadius < 0 {
		return fmt.Errorf("%w: inflation radii must be non-negative", ErrBadRequest)
	}
	if r.Resample != nil && r.Resample.Step <= 0 {
		return fmt.Errorf("%w: resample step must be positive", ErrBadRequest)
	}
	if r.Shortcut != nil && r.Shortcut.MaxIterations < 0 {
		return fmt.Errorf("%w: shortcut iterations must be non-negative", ErrBadRequest)
	}
	_, err := r.connectivity()
	return err
}

type planResponse struct {
	Path        []cellJSON  `json:"path"`
	Cost        float64     `json:"cost"`
	ReturnStart *int        `json:"return_start,omitempty"`
	Resampled   []pointJSON `json:"resampled,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
