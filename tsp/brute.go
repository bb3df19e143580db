package tsp

import "math"

// BruteForce solves the closed-tour problem exactly by enumerating every
// permutation of the non-fixed waypoints 1..n−1, summing edge costs
// including the closing edge back to 0, and keeping the minimum.
//
// The start waypoint 0 is fixed as both tour start and end. Degenerate
// instances (n ≤ 2) are answered without enumeration.
//
// Returns ErrIncompleteMatrix when every candidate order crosses a missing
// (+Inf) edge, i.e. no Hamiltonian cycle exists.
//
// Time complexity:  O((n−1)!·n)
// Memory complexity: O(n)
//
// The enumeration is iterative Heap's algorithm over the suffix 1..n−1;
// permutation order does not matter for the minimum, only completeness.
func BruteForce(dist [][]float64) (Result, error) {
	n, err := validate(dist)
	if err != nil {
		return Result{}, err
	}
	if n <= 2 {
		return Solve(dist)
	}

	// perm holds the mutable middle of the tour: waypoints 1..n−1.
	perm := make([]int, n-1)
	for i := range perm {
		perm[i] = i + 1
	}

	bestCost := math.Inf(1)
	bestOrder := make([]int, 0, n-1)

	// consider scores the current permutation and keeps it when cheaper.
	consider := func() {
		total := dist[0][perm[0]]
		for i := 0; i+1 < len(perm); i++ {
			total += dist[perm[i]][perm[i+1]]
		}
		total += dist[perm[len(perm)-1]][0] // closing edge back to start
		if total < bestCost {
			bestCost = total
			bestOrder = append(bestOrder[:0], perm...)
		}
	}

	// Heap's algorithm, iterative form.
	consider()
	counters := make([]int, len(perm))
	for i := 0; i < len(perm); {
		if counters[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[counters[i]], perm[i] = perm[i], perm[counters[i]]
			}
			consider()
			counters[i]++
			i = 0
		} else {
			counters[i] = 0
			i++
		}
	}

	if math.IsInf(bestCost, 1) {
		return Result{}, ErrIncompleteMatrix
	}

	tour := make([]int, 0, n+1)
	tour = append(tour, 0)
	tour = append(tour, bestOrder...)
	tour = append(tour, 0)

	return Result{Tour: tour, Cost: bestCost}, nil
}
