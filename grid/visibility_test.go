package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/grid"
)

// wallGrid builds a 7×7 grid with a full-height vertical wall at x=3,
// optionally leaving a one-cell gap.
func wallGrid(t *testing.T, gapY int) *grid.Grid {
	t.Helper()
	g, err := grid.New(7, 7)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for y := 0; y < 7; y++ {
		if y == gapY {
			continue
		}
		if err = g.SetObstacle(y, 3, true); err != nil {
			t.Fatalf("SetObstacle error: %v", err)
		}
	}
	return g
}

// TestLineFree_OpenGrid verifies sightlines across an empty grid.
func TestLineFree_OpenGrid(t *testing.T) {
	g, err := grid.New(10, 10)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	cases := []struct{ p0, p1 grid.Coord }{
		{grid.Coord{Y: 0, X: 0}, grid.Coord{Y: 0, X: 9}},
		{grid.Coord{Y: 0, X: 0}, grid.Coord{Y: 9, X: 9}},
		{grid.Coord{Y: 5, X: 5}, grid.Coord{Y: 5, X: 5}}, // zero-length
	}
	for _, tc := range cases {
		if !g.LineFree(tc.p0, tc.p1) {
			t.Errorf("LineFree(%v,%v)=false on empty grid; want true", tc.p0, tc.p1)
		}
	}
}

// TestLineFree_Blocked verifies a wall interrupts the sightline while a
// detour endpoint pair through the gap row stays free.
func TestLineFree_Blocked(t *testing.T) {
	g := wallGrid(t, 6)

	if g.LineFree(grid.Coord{Y: 0, X: 0}, grid.Coord{Y: 0, X: 6}) {
		t.Error("LineFree across the wall = true; want false")
	}
	if !g.LineFree(grid.Coord{Y: 6, X: 0}, grid.Coord{Y: 6, X: 6}) {
		t.Error("LineFree through the gap row = false; want true")
	}
}

// TestLineFree_Symmetric verifies LineFree(p,q) == LineFree(q,p) across a
// grid mixing free and blocked sightlines. Sampling is symmetric by
// construction, so the orientation must never matter.
func TestLineFree_Symmetric(t *testing.T) {
	g := wallGrid(t, 3)

	points := []grid.Coord{
		{Y: 0, X: 0}, {Y: 0, X: 6}, {Y: 3, X: 0}, {Y: 3, X: 6},
		{Y: 6, X: 1}, {Y: 2, X: 5}, {Y: 5, X: 2},
	}
	for _, p := range points {
		for _, q := range points {
			if g.LineFree(p, q) != g.LineFree(q, p) {
				t.Errorf("LineFree(%v,%v) != LineFree(%v,%v)", p, q, q, p)
			}
		}
	}
}

// TestLineFree_OccupiedEndpoint verifies that a segment ending on an
// obstacle is reported blocked.
func TestLineFree_OccupiedEndpoint(t *testing.T) {
	g, err := grid.New(5, 5)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err = g.SetObstacle(2, 2, true); err != nil {
		t.Fatalf("SetObstacle error: %v", err)
	}

	if g.LineFree(grid.Coord{Y: 0, X: 0}, grid.Coord{Y: 2, X: 2}) {
		t.Error("LineFree into an obstacle = true; want false")
	}
}
