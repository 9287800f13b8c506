package animation_test

import (
	"testing"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/bfs"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildSteps_Found drops Start and Finish from the visited reveals.
func TestBuildSteps_Found(t *testing.T) {
	g, err := grid.ParseString("S..F", grid.DefaultNodeTypes())
	require.NoError(t, err)
	res, err := bfs.Search(g, g.Start(), g.Finish())
	require.NoError(t, err)

	steps := animation.BuildSteps(res)
	want := []animation.Step{
		{Coord: grid.Coord{Row: 0, Col: 1}, Kind: animation.Visited},
		{Coord: grid.Coord{Row: 0, Col: 2}, Kind: animation.Visited},
		{Coord: grid.Coord{Row: 0, Col: 0}, Kind: animation.OnShortestPath},
		{Coord: grid.Coord{Row: 0, Col: 1}, Kind: animation.OnShortestPath},
		{Coord: grid.Coord{Row: 0, Col: 2}, Kind: animation.OnShortestPath},
		{Coord: grid.Coord{Row: 0, Col: 3}, Kind: animation.OnShortestPath},
	}
	assert.Equal(t, want, steps)
}

// TestBuildSteps_Unreachable has visited reveals only.
func TestBuildSteps_Unreachable(t *testing.T) {
	res := grid.Result{
		Visited:      []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}},
		NodesVisited: 2,
	}
	steps := animation.BuildSteps(res)
	require.Len(t, steps, 2)
	for _, s := range steps {
		assert.Equal(t, animation.Visited, s.Kind)
	}
	assert.Empty(t, animation.BuildSteps(grid.Result{}))
}

func TestStep_String(t *testing.T) {
	s := animation.Step{Coord: grid.Coord{Row: 2, Col: 3}, Kind: animation.OnShortestPath}
	assert.Equal(t, "OnShortestPath (2,3)", s.String())
	assert.Equal(t, "Kind(7)", animation.Kind(7).String())
}
