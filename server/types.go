package server

import (
	"errors"
	"log"
	"sync"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/zones"
)

var (
	// ErrNoGrid indicates a request needs a grid but none was loaded yet.
	ErrNoGrid = errors.New("server: no grid loaded")

	// ErrBadRequest indicates a request body failed validation.
	ErrBadRequest = errors.New("server: bad request")
)

// Service is the shared planning state behind the HTTP handlers.
// All fields below mu are guarded by it.
type Service struct {
	logger *log.Logger

	mu    sync.Mutex
	base  *grid.Grid
	zs    []zones.Zone
	world *grid.Grid
}

// NewService returns a Service with no grid loaded. A nil logger falls
// back to the process-wide default.
func NewService(logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{logger: logger}
}

// rebuildWorld recomputes the world grid from base and zones.
// Caller holds mu.
func (s *Service) rebuildWorld() error {
	if s.base == nil {
		s.world = nil
		return nil
	}
	world, err := zones.Rasterize(s.base, s.zs)
	if err != nil {
		return err
	}
	s.world = world
	return nil
}
