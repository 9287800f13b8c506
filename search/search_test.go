package search_test

import (
	"testing"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(s, grid.DefaultNodeTypes())
	require.NoError(t, err)
	return g
}

func TestAlgorithm_Names(t *testing.T) {
	want := []string{
		"Breadth-first Search",
		"Depth-first Search",
		"Dijkstra's Algorithm",
		"A* Search",
		"Greedy Best-first Search",
	}
	var got []string
	for _, a := range search.All() {
		got = append(got, a.String())
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "Algorithm(9)", search.Algorithm(9).String())
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"bfs":                      search.BreadthFirst,
		"DFS":                      search.DepthFirst,
		"Dijkstra's Algorithm":     search.Dijkstra,
		" astar ":                  search.AStar,
		"a* search":                search.AStar,
		"gbfs":                     search.GreedyBestFirst,
		"Greedy Best-first Search": search.GreedyBestFirst,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseAlgorithm("bogosort")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithm_Text(t *testing.T) {
	b, err := search.AStar.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "astar", string(b))

	var a search.Algorithm
	require.NoError(t, a.UnmarshalText([]byte("gbfs")))
	assert.Equal(t, search.GreedyBestFirst, a)
	assert.ErrorIs(t, a.UnmarshalText([]byte("?")), search.ErrUnknownAlgorithm)

	_, err = search.Algorithm(-1).MarshalText()
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithm_Flags(t *testing.T) {
	assert.True(t, search.Dijkstra.Weighted())
	assert.True(t, search.AStar.Weighted())
	assert.False(t, search.GreedyBestFirst.Weighted())
	assert.True(t, search.BreadthFirst.Optimal())
	assert.False(t, search.DepthFirst.Optimal())
	assert.False(t, search.GreedyBestFirst.Optimal())
	assert.Equal(t, search.BreadthFirst, search.GreedyBestFirst.Next())
}

func TestFunc_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { search.Algorithm(42).Func() })
	assert.Panics(t, func() {
		g := mustParse(t, "SF")
		_, _ = search.Run(search.Algorithm(-3), g, g.Start(), g.Finish())
	})
}

// TestRun_SingleRow: one row, five columns, no walls.
func TestRun_SingleRow(t *testing.T) {
	g := mustParse(t, "S...F")
	for _, a := range search.All() {
		t.Run(a.Alias(), func(t *testing.T) {
			res, err := search.Run(a, g, g.Start(), g.Finish())
			require.NoError(t, err)
			assert.Equal(t, 4, res.PathLength)
			assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}, res.Path)
		})
	}
}

// TestRun_WalledFinish: Finish boxed in on all four sides.
func TestRun_WalledFinish(t *testing.T) {
	g := mustParse(t, `
S#.
#F#
.#.
`)
	for _, a := range search.All() {
		t.Run(a.Alias(), func(t *testing.T) {
			res, err := search.Run(a, g, g.Start(), g.Finish())
			require.NoError(t, err)
			assert.Empty(t, res.Path)
			assert.Equal(t, 0, res.PathLength)
			assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}}, res.Visited)
			assert.Equal(t, 0, res.NodesVisited)
		})
	}
}

// TestRun_WalledFinishOpenField: the reachable region is still fully traced.
func TestRun_WalledFinishOpenField(t *testing.T) {
	g := mustParse(t, `
S....
...#.
..#F#
...#.
`)
	for _, a := range search.All() {
		t.Run(a.Alias(), func(t *testing.T) {
			res, err := search.Run(a, g, g.Start(), g.Finish())
			require.NoError(t, err)
			assert.False(t, res.Found())
			assert.Len(t, res.Visited, 16)
			assert.Equal(t, g.Start(), res.Visited[0])
		})
	}
}

// TestRun_SnapshotIsolation runs on a clone so the live grid keeps clean scratch.
func TestRun_SnapshotIsolation(t *testing.T) {
	g := mustParse(t, "S.m.F")
	snap := g.Clone()
	_, err := search.Run(search.Dijkstra, snap, snap.Start(), snap.Finish())
	require.NoError(t, err)
	assert.False(t, g.At(g.Finish()).Visited)
	assert.True(t, snap.At(snap.Finish()).Visited)
}
