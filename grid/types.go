// Package grid defines core types, sentinel errors and neighbor orderings
// for the pathfinding grid model.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a requested grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrGridTooSmall indicates a grid with a single cell, which cannot hold distinct Start and Finish nodes.
	ErrGridTooSmall = errors.New("grid: grid must have at least two cells")
	// ErrNonRectangular indicates map rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNilTable indicates a nil node-type table was supplied.
	ErrNilTable = errors.New("grid: node-type table is nil")
	// ErrUnknownNodeType indicates a terrain name absent from the node-type table.
	ErrUnknownNodeType = errors.New("grid: unknown node type")
	// ErrImmutableType indicates an attempt to change the weight of the Wall type.
	ErrImmutableType = errors.New("grid: node type weight is immutable")
	// ErrWeightRange indicates a weight outside [MinWeight, MaxWeight].
	ErrWeightRange = errors.New("grid: weight out of range")
	// ErrUnknownSymbol indicates an unrecognised rune in a text map.
	ErrUnknownSymbol = errors.New("grid: unknown map symbol")
	// ErrMissingStart indicates a text map without a Start cell.
	ErrMissingStart = errors.New("grid: map has no start cell")
	// ErrMissingFinish indicates a text map without a Finish cell.
	ErrMissingFinish = errors.New("grid: map has no finish cell")
	// ErrDuplicateStart indicates a text map with more than one Start cell.
	ErrDuplicateStart = errors.New("grid: map has more than one start cell")
	// ErrDuplicateFinish indicates a text map with more than one Finish cell.
	ErrDuplicateFinish = errors.New("grid: map has more than one finish cell")
)

// NoPrev marks a node without a predecessor on the search tree.
const NoPrev = -1

// Coord addresses a single cell by row and column.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent reports whether o is one of c's four orthogonal neighbors.
func (c Coord) Adjacent(o Coord) bool {
	return c.Manhattan(o) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Role distinguishes the two special nodes from ordinary cells.
type Role int

const (
	// Normal is an ordinary paintable cell.
	Normal Role = iota
	// Start is the single search origin.
	Start
	// Finish is the single search target.
	Finish
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case Normal:
		return "Normal"
	case Start:
		return "Start"
	case Finish:
		return "Finish"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// offset returns the (Δrow, Δcol) of the direction.
func (d Direction) offset() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		panic(fmt.Sprintf("grid: unknown direction %d", int(d)))
	}
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Order is a neighbor enumeration order. Changing it changes tie-breaking
// and therefore the observable visitation order of every algorithm.
type Order [4]Direction

var (
	// DefaultOrder is used by every algorithm unless overridden: up, down, left, right.
	DefaultOrder = Order{Up, Down, Left, Right}
	// DownRightUpLeft is the order the first depth-first implementation used.
	DownRightUpLeft = Order{Down, Right, Up, Left}
)

// Node is one cell of the grid. Terrain and role persist across runs;
// Visited, Distance, Heuristic, FScore and Prev are search scratch space
// reset by ResetScratch.
type Node struct {
	Coord
	Role    Role
	Terrain string  // "" is default terrain
	Weight  float64 // +Inf marks a blocking node

	Visited   bool
	Distance  float64 // cost so far (g)
	Heuristic float64 // estimate to finish (h)
	FScore    float64 // queue priority
	Prev      int     // row-major index of the predecessor, NoPrev if none

	covered string // terrain hidden under Start/Finish
}

// Blocking reports whether the node can never be entered.
func (n *Node) Blocking() bool {
	return math.IsInf(n.Weight, 1)
}

// Special reports whether the node is Start or Finish.
func (n *Node) Special() bool {
	return n.Role != Normal
}

func (n *Node) resetScratch() {
	n.Visited = false
	n.Distance = math.Inf(1)
	n.Heuristic = math.Inf(1)
	n.FScore = math.Inf(1)
	n.Prev = NoPrev
}
