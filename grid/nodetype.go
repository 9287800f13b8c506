package grid

import (
	"fmt"
	"math"
)

const (
	// Wall is the blocking node type; its weight is always +Inf.
	Wall = "Wall"
	// Air names the default terrain, stored on nodes as "".
	Air = "Air"

	// DefaultWeight is the traversal cost of default terrain.
	DefaultWeight = 1.0
	// MinWeight and MaxWeight bound user-editable weights.
	MinWeight = 1.0
	MaxWeight = 100.0

	// AirSymbol renders default terrain in text maps.
	AirSymbol = '.'
	// StartSymbol and FinishSymbol render the special nodes in text maps.
	StartSymbol  = 'S'
	FinishSymbol = 'F'
)

// NodeType is a named terrain category with a traversal weight.
type NodeType struct {
	Name   string
	Weight float64
	Symbol rune
}

// NodeTypeTable is an ordered name → weight mapping.
// It is not safe for concurrent mutation.
type NodeTypeTable struct {
	types []NodeType
}

// DefaultNodeTypes returns Wall=+Inf, Mud=50, Water=30, Sand=10, Grass=5.
func DefaultNodeTypes() *NodeTypeTable {
	return &NodeTypeTable{types: []NodeType{
		{Name: Wall, Weight: math.Inf(1), Symbol: '#'},
		{Name: "Mud", Weight: 50, Symbol: 'm'},
		{Name: "Water", Weight: 30, Symbol: 'w'},
		{Name: "Sand", Weight: 10, Symbol: 's'},
		{Name: "Grass", Weight: 5, Symbol: 'g'},
	}}
}

// Types returns a copy of the entries in table order.
func (t *NodeTypeTable) Types() []NodeType {
	out := make([]NodeType, len(t.types))
	copy(out, t.types)
	return out
}

// Names returns the type names in table order.
func (t *NodeTypeTable) Names() []string {
	names := make([]string, len(t.types))
	for i, nt := range t.types {
		names[i] = nt.Name
	}
	return names
}

// Lookup finds a type by name.
func (t *NodeTypeTable) Lookup(name string) (NodeType, bool) {
	for _, nt := range t.types {
		if nt.Name == name {
			return nt, true
		}
	}
	return NodeType{}, false
}

// BySymbol finds a type by its map symbol.
func (t *NodeTypeTable) BySymbol(r rune) (NodeType, bool) {
	for _, nt := range t.types {
		if nt.Symbol == r {
			return nt, true
		}
	}
	return NodeType{}, false
}

// Weight returns the weight for name; "" and Air map to DefaultWeight.
// Unknown names also fall back to DefaultWeight.
func (t *NodeTypeTable) Weight(name string) float64 {
	if name == "" || name == Air {
		return DefaultWeight
	}
	if nt, ok := t.Lookup(name); ok {
		return nt.Weight
	}
	return DefaultWeight
}

// Symbol returns the map symbol for name, AirSymbol for default terrain.
func (t *NodeTypeTable) Symbol(name string) rune {
	if nt, ok := t.Lookup(name); ok {
		return nt.Symbol
	}
	return AirSymbol
}

// SetWeight changes the weight of a non-Wall type.
// Grids using this table must call RecomputeWeights afterwards.
func (t *NodeTypeTable) SetWeight(name string, w float64) error {
	if name == Wall {
		return fmt.Errorf("%w: %s", ErrImmutableType, name)
	}
	if math.IsNaN(w) || w < MinWeight || w > MaxWeight {
		return fmt.Errorf("%w: %s=%v (want %v..%v)", ErrWeightRange, name, w, MinWeight, MaxWeight)
	}
	for i := range t.types {
		if t.types[i].Name == name {
			t.types[i].Weight = w
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownNodeType, name)
}

// Clone returns an independent copy of the table.
func (t *NodeTypeTable) Clone() *NodeTypeTable {
	return &NodeTypeTable{types: t.Types()}
}
