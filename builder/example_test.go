package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// ExampleMaze carves a 5×7 maze. Any seed gives 12 rooms joined by 11
// openings, so the wall count and the corner placement are fixed.
func ExampleMaze() {
	g, _ := grid.New(5, 7, grid.DefaultNodeTypes())
	if err := builder.Maze(g, builder.WithSeed(2024)); err != nil {
		fmt.Println(err)
		return
	}
	res, _ := search.Run(search.BreadthFirst, g.Clone(), g.Start(), g.Finish())

	fmt.Println("start", g.Start(), "finish", g.Finish())
	fmt.Println("walls", g.Walls())
	fmt.Println("solvable", res.Found())
	// Output:
	// start (0,0) finish (4,6)
	// walls 12
	// solvable true
}
