package server_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/server"
)

func newHandler() http.Handler {
	return server.NewService(log.New(io.Discard, "", 0)).Handler()
}

type cell struct {
	Y int `json:"y"`
	X int `json:"x"`
}

type planReply struct {
	Path        []cell  `json:"path"`
	Cost        float64 `json:"cost"`
	ReturnStart *int    `json:"return_start"`
	Resampled   []struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"resampled"`
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func loadGrid(t *testing.T, h http.Handler, height, width int, obstacles string) {
	t.Helper()
	body := fmt.Sprintf(`{"height":%d,"width":%d,"obstacles":[%s]}`, height, width, obstacles)
	rr := do(t, h, http.MethodPost, "/grid", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestPlanBeforeGridLoaded(t *testing.T) {
	h := newHandler()
	rr := do(t, h, http.MethodPost, "/plan", `{"waypoints":[{"y":0,"x":0}]}`)
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestSetAndGetGrid(t *testing.T) {
	h := newHandler()
	loadGrid(t, h, 5, 6, `{"y":2,"x":2}`)

	rr := do(t, h, http.MethodGet, "/grid", "")
	require.Equal(t, http.StatusOK, rr.Code)

	got := decode[struct {
		Height    int    `json:"height"`
		Width     int    `json:"width"`
		Obstacles []cell `json:"obstacles"`
	}](t, rr)
	require.Equal(t, 5, got.Height)
	require.Equal(t, 6, got.Width)
	require.Equal(t, []cell{{Y: 2, X: 2}}, got.Obstacles)
}

func TestSetGrid_Rejections(t *testing.T) {
	h := newHandler()

	// Obstacle outside the grid.
	rr := do(t, h, http.MethodPost, "/grid", `{"height":3,"width":3,"obstacles":[{"y":5,"x":0}]}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// Unknown field.
	rr = do(t, h, http.MethodPost, "/grid", `{"hieght":3,"width":3}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// Non-positive dimensions.
	rr = do(t, h, http.MethodPost, "/grid", `{"height":0,"width":3}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPlan_StraightLine(t *testing.T) {
	h := newHandler()
	loadGrid(t, h, 5, 5, "")

	rr := do(t, h, http.MethodPost, "/plan",
		`{"waypoints":[{"y":0,"x":0},{"y":0,"x":4}]}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	got := decode[planReply](t, rr)
	require.Len(t, got.Path, 5)
	require.InDelta(t, 4.0, got.Cost, 1e-9)
	require.Nil(t, got.ReturnStart)
	require.Equal(t, cell{Y: 0, X: 0}, got.Path[0])
	require.Equal(t, cell{Y: 0, X: 4}, got.Path[4])
}

func TestPlan_ReturnLeg(t *testing.T) {
	h := newHandler()
	loadGrid(t, h, 5, 5, "")

	rr := do(t, h, http.MethodPost, "/plan",
		`{"waypoints":[{"y":0,"x":0},{"y":0,"x":4}],"return_leg":true}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	got := decode[planReply](t, rr)
	require.Len(t, got.Path, 9)
	require.NotNil(t, got.ReturnStart)
	require.Equal(t, 5, *got.ReturnStart)
	require.Equal(t, cell{Y: 0, X: 0}, got.Path[len(got.Path)-1])
}

// TestPlan_ZoneBlocks loads a zone covering the whole middle column and
// expects the plan to fail as unreachable.
func TestPlan_ZoneBlocks(t *testing.T) {
	h := newHandler()
	loadGrid(t, h, 5, 5, "")

	wall := `{
	  "type": "FeatureCollection",
	  "features": [{
	    "type": "Feature",
	    "properties": {"name": "wall"},
	    "geometry": {
	      "type": "Polygon",
	      "coordinates": [[[1.5,-0.5],[2.5,-0.5],[2.5,4.5],[1.5,4.5],[1.5,-0.5]]]
	    }
	  }]
	}`
	rr := do(t, h, http.MethodPost, "/zones", wall)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	added := decode[struct {
		Added int `json:"added"`
		Total int `json:"total"`
	}](t, rr)
	require.Equal(t, 1, added.Added)
	require.Equal(t, 1, added.Total)

	rr = do(t, h, http.MethodPost, "/plan",
		`{"waypoints":[{"y":0,"x":0},{"y":0,"x":4}]}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
}

func TestPlan_ShortcutAndResample(t *testing.T) {
	h := newHandler()
	loadGrid(t, h, 5, 5, "")

	rr := do(t, h, http.MethodPost, "/plan",
		`{"waypoints":[{"y":0,"x":0},{"y":0,"x":4},{"y":4,"x":4}],
		  "return_leg":true,
		  "shortcut":{"seed":7},
		  "resample":{"step":1}}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	got := decode[planReply](t, rr)
	// Post-processing invalidates indices into the original path.
	require.Nil(t, got.ReturnStart)
	require.NotEmpty(t, got.Resampled)
	first := got.Resampled[0]
	require.Equal(t, 0.0, first.X)
	require.Equal(t, 0.0, first.Y)
}

func TestPlan_Rejections(t *testing.T) {
	h := newHandler()
	loadGrid(t, h, 5, 5, "")

	rr := do(t, h, http.MethodPost, "/plan",
		`{"waypoints":[{"y":0,"x":0}],"connectivity":6}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodPost, "/plan",
		`{"waypoints":[{"y":0,"x":0}],"resample":{"step":0}}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

// TestConcurrentRequests exercises the mutation/planning mutual exclusion
// under the race detector.
func TestConcurrentRequests(t *testing.T) {
	h := newHandler()
	loadGrid(t, h, 10, 10, "")

	const rounds = 8
	codes := make(chan int, rounds*2)
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			rr := do(t, h, http.MethodPost, "/grid", `{"height":10,"width":10,"obstacles":[{"y":5,"x":5}]}`)
			codes <- rr.Code
		}()
		go func() {
			defer wg.Done()
			rr := do(t, h, http.MethodPost, "/plan",
				`{"waypoints":[{"y":0,"x":0},{"y":9,"x":9}],"optimize_order":true}`)
			codes <- rr.Code
		}()
	}
	wg.Wait()
	close(codes)
	for code := range codes {
		require.Equal(t, http.StatusOK, code)
	}
}
