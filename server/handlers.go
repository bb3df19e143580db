package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/refine"
	"github.com/katalvlaran/gridroute/route"
	"github.com/katalvlaran/gridroute/zones"
)

// Handler returns the HTTP router over the service state.
func (s *Service) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/grid", s.handleSetGrid).Methods(http.MethodPost)
	r.HandleFunc("/grid", s.handleGetGrid).Methods(http.MethodGet)
	r.HandleFunc("/zones", s.handleAddZones).Methods(http.MethodPost)
	r.HandleFunc("/plan", s.handlePlan).Methods(http.MethodPost)
	return r
}

func (s *Service) handleSetGrid(w http.ResponseWriter, r *http.Request) {
	var req gridRequest
	if err := decodeStrict(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.validate(); err != nil {
		s.writeError(w, err)
		return
	}

	g, err := grid.New(req.Height, req.Width)
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	for _, c := range req.Obstacles {
		if err := g.SetObstacle(c.Y, c.X, true); err != nil {
			s.writeError(w, fmt.Errorf("%w: obstacle (%d,%d): %v", ErrBadRequest, c.Y, c.X, err))
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = g
	if err := s.rebuildWorld(); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Printf("grid loaded: %dx%d, %d obstacles", req.Height, req.Width, len(req.Obstacles))
	writeJSON(w, http.StatusOK, s.gridResponseLocked())
}

func (s *Service) handleGetGrid(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.world == nil {
		s.writeError(w, ErrNoGrid)
		return
	}
	writeJSON(w, http.StatusOK, s.gridResponseLocked())
}

// gridResponseLocked snapshots the world grid. Caller holds mu.
func (s *Service) gridResponseLocked() gridResponse {
	return gridResponse{
		Height:    s.world.Height(),
		Width:     s.world.Width(),
		Obstacles: toCells(s.world.Obstacles()),
	}
}

func (s *Service) handleAddZones(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	zs, err := zones.FromGeoJSON(body)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.zs = append(s.zs, zs...)
	if err := s.rebuildWorld(); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Printf("zones added: %d new, %d total", len(zs), len(s.zs))
	writeJSON(w, http.StatusOK, zonesResponse{Added: len(zs), Total: len(s.zs)})
}

func (s *Service) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decodeStrict(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.validate(); err != nil {
		s.writeError(w, err)
		return
	}
	conn, _ := req.connectivity()

	waypoints := make([]grid.Coord, len(req.Waypoints))
	for i, c := range req.Waypoints {
		waypoints[i] = grid.Coord{Y: c.Y, X: c.X}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.world == nil {
		s.writeError(w, ErrNoGrid)
		return
	}

	g := s.world
	if req.BaseRadius > 0 || req.ExtraRadius > 0 {
		g = g.Inflate(req.BaseRadius, req.ExtraRadius)
	}

	opts := []route.Option{route.WithConnectivity(conn)}
	if req.OptimizeOrder {
		opts = append(opts, route.WithOrderOptimization())
	}
	if req.ReturnLeg {
		opts = append(opts, route.WithReturnLeg())
	}

	rt, err := route.Plan(g, waypoints, opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := planResponse{Cost: route.PathCost(rt.Path)}
	path := rt.Path
	if req.Shortcut != nil {
		sOpts := []refine.Option{refine.WithSeed(req.Shortcut.Seed)}
		if req.Shortcut.MaxIterations > 0 {
			sOpts = append(sOpts, refine.WithMaxIterations(req.Shortcut.MaxIterations))
		}
		path = refine.Shortcut(g, path, sOpts...)
	}
	resp.Path = toCells(path)
	if req.Resample != nil {
		line := refine.Resample(refine.ToLineString(path), req.Resample.Step)
		resp.Resampled = make([]pointJSON, len(line))
		for i, p := range line {
			resp.Resampled[i] = pointJSON{X: p[0], Y: p[1]}
		}
	}
	if req.Shortcut == nil && req.Resample == nil && rt.ReturnStart != route.NoReturn {
		start := rt.ReturnStart
		resp.ReturnStart = &start
	}

	s.logger.Printf("plan: %d waypoints, %d points, cost %.3f", len(waypoints), len(resp.Path), resp.Cost)
	writeJSON(w, http.StatusOK, resp)
}

func decodeStrict(r *http.Request, dst any) error {
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

func (s *Service) writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, zones.ErrInvalidGeoJSON):
		code = http.StatusBadRequest
	case errors.Is(err, ErrNoGrid):
		code = http.StatusConflict
	case errors.Is(err, route.ErrUnreachable):
		code = http.StatusUnprocessableEntity
	}
	s.logger.Printf("request failed (%d): %v", code, err)
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
