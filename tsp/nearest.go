package tsp

import "math"

// NearestNeighbor builds a closed tour greedily: starting from waypoint 0,
// repeatedly extend to the closest unvisited waypoint by matrix lookup, then
// close the loop back to the start.
//
// Deterministic for a fixed matrix: distance ties are broken by the first
// minimum encountered in ascending index order. No optimality guarantee.
//
// Returns ErrIncompleteMatrix when the greedy walk is forced across a
// missing (+Inf) edge.
//
// Time complexity:  O(n²)
// Memory complexity: O(n)
func NearestNeighbor(dist [][]float64) (Result, error) {
	n, err := validate(dist)
	if err != nil {
		return Result{}, err
	}
	if n <= 2 {
		return Solve(dist)
	}

	visited := make([]bool, n)
	tour := make([]int, 0, n+1)

	current := 0
	visited[0] = true
	tour = append(tour, 0)

	var total float64
	for len(tour) < n {
		nearest := -1
		nearestDist := math.Inf(1)
		for cand := 0; cand < n; cand++ {
			if visited[cand] {
				continue
			}
			if d := dist[current][cand]; d < nearestDist {
				nearestDist = d
				nearest = cand
			}
		}
		if nearest < 0 || math.IsInf(nearestDist, 1) {
			return Result{}, ErrIncompleteMatrix
		}

		visited[nearest] = true
		tour = append(tour, nearest)
		total += nearestDist
		current = nearest
	}

	// Close the loop back to the start.
	back := dist[current][0]
	if math.IsInf(back, 1) {
		return Result{}, ErrIncompleteMatrix
	}
	tour = append(tour, 0)
	total += back

	return Result{Tour: tour, Cost: total}, nil
}
