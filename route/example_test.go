// File: route/example_test.go
package route_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/route"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Plan
////////////////////////////////////////////////////////////////////////////////

// ExamplePlan demonstrates a full planning call on an open 5×5 grid:
// three waypoints with tour ordering and a marked return leg.
// Scenario:
//
//   - No obstacles, so every leg uses the straight tier.
//   - Forward legs: (0,0)→(4,4) diagonal (5 points) and (4,4)→(0,4)
//     (4 more points after dropping the shared endpoint).
//   - Return leg: (0,4)→(0,0), 4 more points; it starts at index 9.
func ExamplePlan() {
	g, _ := grid.New(5, 5)
	wp := []grid.Coord{
		{Y: 0, X: 0}, {Y: 4, X: 4}, {Y: 0, X: 4},
	}

	r, _ := route.Plan(g, wp,
		route.WithOrderOptimization(),
		route.WithReturnLeg(),
	)

	fmt.Println("points:", len(r.Path))
	fmt.Println("return starts at:", r.ReturnStart)
	fmt.Println("first:", r.Path[0], "last:", r.Path[len(r.Path)-1])

	// Output:
	// points: 13
	// return starts at: 9
	// first: {0 0} last: {0 0}
}
