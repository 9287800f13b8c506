package astar_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/grid"
)

// ExampleSearch contrasts A* and Greedy Best-first on a grid with a Mud gap.
func ExampleSearch() {
	g, _ := grid.ParseString(`
SmF
...
`, grid.DefaultNodeTypes())

	opt, _ := astar.Search(g, g.Start(), g.Finish())
	fmt.Printf("A*:     visited=%d length=%d cost=%.0f\n", opt.NodesVisited, opt.PathLength, opt.TotalCost)

	fast, _ := astar.Greedy(g, g.Start(), g.Finish())
	fmt.Printf("Greedy: visited=%d length=%d cost=%.0f\n", fast.NodesVisited, fast.PathLength, fast.TotalCost)
	// Output:
	// A*:     visited=4 length=4 cost=4
	// Greedy: visited=2 length=2 cost=51
}
