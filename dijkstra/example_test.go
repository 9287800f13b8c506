package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/grid"
)

// ExampleSearch demonstrates Dijkstra walking around a Mud cell that a
// breadth-first search would cross.
// Complexity: O(N log N), N = rows×cols.
func ExampleSearch() {
	g, err := grid.ParseString(`
SmF
...
`, grid.DefaultNodeTypes())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.Search(g, g.Start(), g.Finish())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Printf("length=%d cost=%.0f\n", res.PathLength, res.TotalCost)
	// Output:
	// path: [(0,0) (1,0) (1,1) (1,2) (0,2)]
	// length=4 cost=4
}
