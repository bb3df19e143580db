package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridroute/tsp"
	"github.com/stretchr/testify/require"
)

// TestNearestNeighbor_GreedyWalk follows the greedy chain by hand:
// 0→1 (1), 1→3 (2), 3→2 (3), close 2→0 (6) = 12.
func TestNearestNeighbor_GreedyWalk(t *testing.T) {
	dist := [][]float64{
		{0, 1, 6, 5},
		{1, 0, 4, 2},
		{6, 4, 0, 3},
		{5, 2, 3, 0},
	}
	res, err := tsp.NearestNeighbor(dist)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2, 0}, res.Tour)
	require.Equal(t, 12.0, res.Cost)
}

// TestNearestNeighbor_TieBreak verifies equal distances resolve to the
// smallest index (first minimum in iteration order).
func TestNearestNeighbor_TieBreak(t *testing.T) {
	dist := [][]float64{
		{0, 2, 2, 2},
		{2, 0, 2, 2},
		{2, 2, 0, 2},
		{2, 2, 2, 0},
	}
	res, err := tsp.NearestNeighbor(dist)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
	require.Equal(t, 8.0, res.Cost)
}

// TestNearestNeighbor_Deterministic verifies identical runs produce
// identical tours on a fixed matrix.
func TestNearestNeighbor_Deterministic(t *testing.T) {
	dist := makeCycleDist(11)
	first, err := tsp.NearestNeighbor(dist)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := tsp.NearestNeighbor(dist)
		require.NoError(t, err)
		require.Equal(t, first.Tour, again.Tour)
		require.Equal(t, first.Cost, again.Cost)
	}
}

func TestNearestNeighbor_Incomplete(t *testing.T) {
	inf := math.Inf(1)
	dist := [][]float64{
		{0, 1, inf, 2},
		{1, 0, inf, 3},
		{inf, inf, 0, inf},
		{2, 3, inf, 0},
	}
	_, err := tsp.NearestNeighbor(dist)
	require.ErrorIs(t, err, tsp.ErrIncompleteMatrix)
}
