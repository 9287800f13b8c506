package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathviz/bfs"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(s, grid.DefaultNodeTypes())
	require.NoError(t, err)
	return g
}

// TestSearch_Errors verifies that invalid inputs are rejected.
func TestSearch_Errors(t *testing.T) {
	if _, err := bfs.Search(nil, grid.Coord{}, grid.Coord{}); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	g := mustParse(t, "S..F")
	if _, err := bfs.Search(g, grid.Coord{Row: -1}, g.Finish()); !errors.Is(err, bfs.ErrStartOutOfBounds) {
		t.Errorf("bad start: want ErrStartOutOfBounds, got %v", err)
	}
	if _, err := bfs.Search(g, g.Start(), grid.Coord{Col: 4}); !errors.Is(err, bfs.ErrFinishOutOfBounds) {
		t.Errorf("bad finish: want ErrFinishOutOfBounds, got %v", err)
	}
}

// TestSearch_SingleRow covers the 1×5 corridor.
func TestSearch_SingleRow(t *testing.T) {
	g := mustParse(t, "S...F")
	res, err := bfs.Search(g, g.Start(), g.Finish())
	require.NoError(t, err)

	assert.Equal(t, 4, res.PathLength)
	assert.Equal(t, 4, res.NodesVisited)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}, res.Path)
	assert.Equal(t, g.Start(), res.Visited[0])
}

// TestSearch_IgnoresWeights takes the short muddy route over the long clear one.
func TestSearch_IgnoresWeights(t *testing.T) {
	g := mustParse(t, `
S.mm.F
.####.
......
`)
	res, err := bfs.Search(g, g.Start(), g.Finish())
	require.NoError(t, err)
	assert.Equal(t, 5, res.PathLength)
	assert.Equal(t, 103.0, res.TotalCost, "two mud cells at 50 plus three default cells")
}

// TestSearch_Layering checks the visit order on an open 3×3 grid.
func TestSearch_Layering(t *testing.T) {
	g := mustParse(t, `
S..
...
..F
`)
	res, err := bfs.Search(g, g.Start(), g.Finish())
	require.NoError(t, err)
	// up, down, left, right from (0,0): down (1,0) first, then right (0,1)
	want := []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}
	assert.Equal(t, want, res.Visited)
	assert.Equal(t, 4, res.PathLength)
}

// TestSearch_Unreachable reports the full reachable trace and an empty path.
func TestSearch_Unreachable(t *testing.T) {
	g := mustParse(t, `
.#.
#F#
S#.
`)
	res, err := bfs.Search(g, g.Start(), g.Finish())
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.Equal(t, 0, res.PathLength)
	assert.Equal(t, []grid.Coord{{Row: 2, Col: 0}}, res.Visited)
	assert.Equal(t, 0, res.NodesVisited)
}

// TestSearch_Hooks counts enqueues and dequeues and resets stale scratch.
func TestSearch_Hooks(t *testing.T) {
	g := mustParse(t, "S.#F")
	g.At(grid.Coord{Row: 0, Col: 1}).Visited = true // stale scratch from a previous run

	var enq, deq []grid.Coord
	res, err := bfs.Search(g, g.Start(), g.Finish(),
		bfs.WithOnEnqueue(func(c grid.Coord) { enq = append(enq, c) }),
		bfs.WithOnDequeue(func(c grid.Coord) { deq = append(deq, c) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, enq)
	assert.Equal(t, res.Visited, deq)
	assert.False(t, res.Found())
}
