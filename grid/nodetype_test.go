package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultNodeTypes checks order and weights of the built-in table.
func TestDefaultNodeTypes(t *testing.T) {
	table := grid.DefaultNodeTypes()
	assert.Equal(t, []string{"Wall", "Mud", "Water", "Sand", "Grass"}, table.Names())
	assert.True(t, math.IsInf(table.Weight(grid.Wall), 1))
	assert.Equal(t, 50.0, table.Weight("Mud"))
	assert.Equal(t, grid.DefaultWeight, table.Weight(""))
	assert.Equal(t, grid.DefaultWeight, table.Weight(grid.Air))

	nt, ok := table.BySymbol('w')
	require.True(t, ok)
	assert.Equal(t, "Water", nt.Name)
	assert.Equal(t, 'g', table.Symbol("Grass"))
}

// TestSetWeight_Validation covers Wall immutability, range and unknown names.
func TestSetWeight_Validation(t *testing.T) {
	table := grid.DefaultNodeTypes()
	assert.ErrorIs(t, table.SetWeight(grid.Wall, 5), grid.ErrImmutableType)
	assert.ErrorIs(t, table.SetWeight("Mud", 0), grid.ErrWeightRange)
	assert.ErrorIs(t, table.SetWeight("Mud", 101), grid.ErrWeightRange)
	assert.ErrorIs(t, table.SetWeight("Mud", math.NaN()), grid.ErrWeightRange)
	assert.ErrorIs(t, table.SetWeight("Lava", 5), grid.ErrUnknownNodeType)

	require.NoError(t, table.SetWeight("Grass", 1))
	assert.Equal(t, 1.0, table.Weight("Grass"))
}

// TestTypes_ReturnsCopy ensures callers cannot mutate the table through Types.
func TestTypes_ReturnsCopy(t *testing.T) {
	table := grid.DefaultNodeTypes()
	types := table.Types()
	types[1].Weight = 99
	assert.Equal(t, 50.0, table.Weight("Mud"))

	clone := table.Clone()
	require.NoError(t, clone.SetWeight("Mud", 7))
	assert.Equal(t, 50.0, table.Weight("Mud"))
}
