// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, weight-optimal paths, MaxDistance and
// the unreachable outcome.
package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathviz/dijkstra"
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

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestSearch_NilGrid(t *testing.T) {
	_, err := dijkstra.Search(nil, grid.Coord{}, grid.Coord{})
	assert.ErrorIs(t, err, dijkstra.ErrGridNil)
}

func TestSearch_OutOfBounds(t *testing.T) {
	g := mustParse(t, "S.F")
	_, err := dijkstra.Search(g, grid.Coord{Row: -1}, g.Finish())
	assert.ErrorIs(t, err, dijkstra.ErrStartOutOfBounds)
	_, err = dijkstra.Search(g, g.Start(), grid.Coord{Col: 3})
	assert.ErrorIs(t, err, dijkstra.ErrFinishOutOfBounds)
}

func TestSearch_BadMaxDistance(t *testing.T) {
	g := mustParse(t, "S.F")
	assert.Panics(t, func() {
		_, _ = dijkstra.Search(g, g.Start(), g.Finish(), dijkstra.WithMaxDistance(-1))
	})
}

// ------------------------------------------------------------------------
// 2. Shortest-path behavior.
// ------------------------------------------------------------------------

// TestSearch_SingleRow: uniform weights, one simple path.
func TestSearch_SingleRow(t *testing.T) {
	g := mustParse(t, "S...F")
	res, err := dijkstra.Search(g, g.Start(), g.Finish())
	require.NoError(t, err)
	assert.Equal(t, 4, res.PathLength)
	assert.Equal(t, 4, res.NodesVisited)
	assert.Equal(t, 4.0, res.TotalCost)
}

// TestSearch_AvoidsMud prefers a longer detour over a heavy node.
func TestSearch_AvoidsMud(t *testing.T) {
	g := mustParse(t, `
SmF
...
`)
	res, err := dijkstra.Search(g, g.Start(), g.Finish())
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 0, Col: 2}}, res.Path)
	assert.Equal(t, 4, res.PathLength)
	assert.Equal(t, 4.0, res.TotalCost)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 0, Col: 2}}, res.Visited)
	assert.Equal(t, 4.0, g.At(g.Finish()).Distance)
}

// TestSearch_ThroughCheapTerrain crosses Grass when walking around costs more.
func TestSearch_ThroughCheapTerrain(t *testing.T) {
	g := mustParse(t, `
SgF
mmm
`)
	res, err := dijkstra.Search(g, g.Start(), g.Finish())
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, res.Path)
	assert.Equal(t, 6.0, res.TotalCost)
}

// TestSearch_MaxDistance stops before the finish becomes reachable.
func TestSearch_MaxDistance(t *testing.T) {
	g := mustParse(t, `
SmF
...
`)
	res, err := dijkstra.Search(g, g.Start(), g.Finish(), dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}, res.Visited)
}

// TestSearch_Unreachable reports the whole reachable region and no path.
func TestSearch_Unreachable(t *testing.T) {
	g := mustParse(t, `
S..#.
...#F
`)
	var hooked int
	res, err := dijkstra.Search(g, g.Start(), g.Finish(),
		dijkstra.WithOnVisit(func(grid.Coord) { hooked++ }))
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.Equal(t, 0, res.PathLength)
	assert.Equal(t, 0.0, res.TotalCost)
	assert.Len(t, res.Visited, 6)
	assert.Equal(t, 5, res.NodesVisited)
	assert.Equal(t, 6, hooked)
}

// TestSearch_ResetsScratch runs twice on the same grid with identical results.
func TestSearch_ResetsScratch(t *testing.T) {
	g := mustParse(t, `
S.m.
.#..
...F
`)
	first, err := dijkstra.Search(g, g.Start(), g.Finish())
	require.NoError(t, err)
	second, err := dijkstra.Search(g, g.Start(), g.Finish())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
