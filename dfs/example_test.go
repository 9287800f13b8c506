package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/dfs"
	"github.com/katalvlaran/pathviz/grid"
)

// ExampleSearch shows depth-first search taking a detour the breadth-first
// search would not.
func ExampleSearch() {
	g, _ := grid.ParseString(`
....
S..F
`, grid.DefaultNodeTypes())

	res, _ := dfs.Search(g, g.Start(), g.Finish())
	fmt.Println("length:", res.PathLength)
	fmt.Println("path:", res.Path)
	// Output:
	// length: 7
	// path: [(1,0) (0,0) (0,1) (1,1) (1,2) (0,2) (0,3) (1,3)]
}
