// Package astar implements A* shortest-path search on occupancy grids.
//
// Notes on implementation choices:
//
//   - The frontier is a container/heap min-heap ordered by f = g + h with a
//     “lazy” decrease-key strategy: shorter rediscoveries push duplicates and
//     stale entries are skipped on pop via the best-cost map.
//   - Ties in f follow heap pop order; this picks one of several equal-cost
//     optimal paths and does not affect the returned cost.
//   - Termination: popping the goal finalizes it (consistent heuristic), so
//     the path is reconstructed by walking parent pointers and reversing.
package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridroute/grid"
)

// move is one step of the search move set with its traversal cost.
type move struct {
	dy, dx int
	cost   float64
}

// sqrt2 is the diagonal step cost.
var sqrt2 = math.Sqrt(2)

// orthogonalMoves are the 4 unit-cost moves shared by both connectivities.
var orthogonalMoves = []move{
	{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
}

// diagonalMoves extend the move set under Conn8 at cost √2.
var diagonalMoves = []move{
	{1, 1, sqrt2}, {1, -1, sqrt2}, {-1, 1, sqrt2}, {-1, -1, sqrt2},
}

// moveSet returns the move list for the requested connectivity.
func moveSet(conn grid.Connectivity) []move {
	if conn == grid.Conn8 {
		return append(append(make([]move, 0, 8), orthogonalMoves...), diagonalMoves...)
	}

	return orthogonalMoves
}

// heuristic estimates the remaining cost from a to b: octile distance under
// Conn8 (D·(dy+dx) + (D2−2·D)·min(dy,dx) with D=1, D2=√2), Manhattan
// distance under Conn4. Both are admissible and consistent for their move
// set, which guarantees optimal-cost paths and safe goal-pop termination.
// Complexity: O(1).
func heuristic(a, b grid.Coord, conn grid.Connectivity) float64 {
	dy := math.Abs(float64(a.Y - b.Y))
	dx := math.Abs(float64(a.X - b.X))
	if conn == grid.Conn8 {
		return (dy + dx) + (sqrt2-2)*math.Min(dy, dx)
	}

	return dy + dx
}

// FindPath runs A* from start to goal on g under the given connectivity.
//
// Returns the path as a coordinate sequence from start to goal inclusive,
// where every consecutive pair is a single move of the chosen move set.
// The path cost is optimal for that move set.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must be a free in-bounds cell (ErrStartOccupied).
//  3. goal must be a free in-bounds cell (ErrGoalOccupied).
//
// Unreachability is a normal result, surfaced as ErrNoPath; callers must
// branch on it after every search.
//
// Complexity: O(E log V) time, O(V) memory.
func FindPath(g *grid.Grid, start, goal grid.Coord, conn grid.Connectivity) ([]grid.Coord, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.IsFree(start.Y, start.X) {
		return nil, ErrStartOccupied
	}
	if !g.IsFree(goal.Y, goal.X) {
		return nil, ErrGoalOccupied
	}

	moves := moveSet(conn)

	// bestCost holds the cheapest known g-value per discovered cell.
	bestCost := map[grid.Coord]float64{start: 0}
	// parent holds the predecessor used to reach each finalized cell.
	parent := make(map[grid.Coord]grid.Coord)
	// closed marks cells whose optimal cost is finalized.
	closed := make(map[grid.Coord]bool)

	pq := make(nodePQ, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{coord: start, g: 0, f: heuristic(start, goal, conn)})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		cur := item.coord

		// Skip stale frontier duplicates (lazy decrease-key).
		if closed[cur] {
			continue
		}
		closed[cur] = true

		if cur == goal {
			return reconstruct(parent, start, goal), nil
		}

		for _, m := range moves {
			next := grid.Coord{Y: cur.Y + m.dy, X: cur.X + m.dx}
			if !g.IsFree(next.Y, next.X) {
				continue
			}

			ng := item.g + m.cost
			if prev, seen := bestCost[next]; seen && ng >= prev {
				continue
			}
			bestCost[next] = ng
			parent[next] = cur
			heap.Push(&pq, &nodeItem{coord: next, g: ng, f: ng + heuristic(next, goal, conn)})
		}
	}

	return nil, ErrNoPath
}

// reconstruct walks parent pointers from goal back to start and reverses.
// Complexity: O(path length).
func reconstruct(parent map[grid.Coord]grid.Coord, start, goal grid.Coord) []grid.Coord {
	path := []grid.Coord{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	// Reverse in place: parent walking yields goal→start order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is one frontier entry: a cell with its g-value and priority f.
type nodeItem struct {
	coord grid.Coord
	g     float64 // cost from start
	f     float64 // g + heuristic-to-goal
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending, used with the
// lazy-decrease-key pattern: improved rediscoveries push duplicates and the
// closed set filters stale pops.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
