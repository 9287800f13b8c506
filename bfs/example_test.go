package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/bfs"
	"github.com/katalvlaran/pathviz/grid"
)

// ExampleSearch runs BFS around a wall. Weights are ignored, so the path
// goes straight through the grass.
func ExampleSearch() {
	g, _ := grid.ParseString(`
S.#..
.g#..
.gg.F
`, grid.DefaultNodeTypes())

	res, _ := bfs.Search(g, g.Start(), g.Finish())
	fmt.Println("visited:", res.NodesVisited)
	fmt.Println("length:", res.PathLength)
	fmt.Println("path:", res.Path)
	// Output:
	// visited: 9
	// length: 6
	// path: [(0,0) (1,0) (2,0) (2,1) (2,2) (2,3) (2,4)]
}
