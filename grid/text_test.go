package grid_test

import (
	"testing"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMap = `
; a small walled field
S.#..
.m#w.
..g.F
`

// TestParse_Sample reads roles, terrain and weights from a text map.
func TestParse_Sample(t *testing.T) {
	g, err := grid.ParseString(sampleMap, grid.DefaultNodeTypes())
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, g.Start())
	assert.Equal(t, grid.Coord{Row: 2, Col: 4}, g.Finish())
	assert.Equal(t, grid.Wall, g.At(grid.Coord{Row: 1, Col: 2}).Terrain)
	assert.Equal(t, 50.0, g.At(grid.Coord{Row: 1, Col: 1}).Weight)
	assert.Equal(t, 30.0, g.At(grid.Coord{Row: 1, Col: 3}).Weight)
	assert.Equal(t, 2, g.Walls())
}

// TestParse_RoundTrip checks String is the inverse of Parse.
func TestParse_RoundTrip(t *testing.T) {
	g, err := grid.ParseString(sampleMap, grid.DefaultNodeTypes())
	require.NoError(t, err)
	again, err := grid.ParseString(g.String(), grid.DefaultNodeTypes())
	require.NoError(t, err)
	assert.Equal(t, g.String(), again.String())
	assert.Equal(t, "S.#..\n.m#w.\n..g.F\n", g.String())
}

// TestParse_Errors verifies malformed maps are rejected with the right sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "\n; only a comment\n", grid.ErrEmptyGrid},
		{"Ragged", "S..\n.F\n", grid.ErrNonRectangular},
		{"NoStart", "...\n..F\n", grid.ErrMissingStart},
		{"NoFinish", "S..\n...\n", grid.ErrMissingFinish},
		{"TwoStarts", "S.S\n..F\n", grid.ErrDuplicateStart},
		{"TwoFinishes", "S.F\n..F\n", grid.ErrDuplicateFinish},
		{"UnknownSymbol", "S?F\n", grid.ErrUnknownSymbol},
		{"SingleCell", "S\n", grid.ErrGridTooSmall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ParseString(tc.in, grid.DefaultNodeTypes())
			assert.ErrorIs(t, err, tc.err)
		})
	}
	_, err := grid.ParseString("SF", nil)
	assert.ErrorIs(t, err, grid.ErrNilTable)
}
