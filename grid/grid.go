// Package grid provides the mutable 2D node array that every search
// algorithm runs on. It supports:
//
//   - Start/Finish designation owned by the Grid instance
//   - Terrain painting backed by an ordered NodeTypeTable
//   - Fixed-order 4-directional neighbor enumeration
//   - Scratch reset between runs and back-link path reconstruction
//
// Nodes whose weight is +Inf (Wall) are blocking and never expanded.
package grid

import "math"

// Grid is a fixed-size rows×cols array of Nodes stored row-major.
// It is not safe for concurrent use; one search borrows it at a time.
type Grid struct {
	rows, cols int
	nodes      []Node
	table      *NodeTypeTable
	start      Coord
	finish     Coord
	revision   uint64
}

// New allocates a rows×cols grid of default nodes and places Start and
// Finish at size-proportional offsets on the middle row.
// Returns ErrEmptyGrid if rows or cols < 1, ErrGridTooSmall for a 1×1 grid
// and ErrNilTable if table is nil.
// Complexity: O(rows×cols).
func New(rows, cols int, table *NodeTypeTable) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	if rows*cols < 2 {
		return nil, ErrGridTooSmall
	}
	if table == nil {
		return nil, ErrNilTable
	}
	g := newBlank(rows, cols, table)
	g.start, g.finish = defaultPlacement(rows, cols)
	g.At(g.start).Role = Start
	g.At(g.finish).Role = Finish

	return g, nil
}

func newBlank(rows, cols int, table *NodeTypeTable) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		nodes: make([]Node, rows*cols),
		table: table,
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		n.Coord = g.CoordOf(i)
		n.Weight = DefaultWeight
		n.resetScratch()
	}
	return g
}

// defaultPlacement puts Start at 25% and Finish at 75% of the width on the
// middle row, falling back to the height for single-column grids.
func defaultPlacement(rows, cols int) (Coord, Coord) {
	if cols >= 2 {
		return Coord{rows / 2, cols / 4}, Coord{rows / 2, cols * 3 / 4}
	}
	return Coord{rows / 4, 0}, Coord{rows * 3 / 4, 0}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid) Len() int { return len(g.nodes) }

// Start returns the Start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Finish returns the Finish coordinate.
func (g *Grid) Finish() Coord { return g.finish }

// Table returns the node-type table the grid weighs terrain with.
func (g *Grid) Table() *NodeTypeTable { return g.table }

// Revision increases on every terrain, weight or start/finish mutation.
func (g *Grid) Revision() uint64 { return g.revision }

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index: Row*Cols + Col.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// CoordOf converts a row-major index back to a coordinate.
func (g *Grid) CoordOf(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the node at c, or nil when c is out of bounds.
func (g *Grid) At(c Coord) *Node {
	if !g.InBounds(c) {
		return nil
	}
	return &g.nodes[g.Index(c)]
}

// Node returns the node at a row-major index.
func (g *Grid) Node(idx int) *Node {
	return &g.nodes[idx]
}

// Passable reports whether c is in bounds and not blocking.
func (g *Grid) Passable(c Coord) bool {
	n := g.At(c)
	return n != nil && !n.Blocking()
}

// Neighbors returns up to four in-bounds neighbors of c in DefaultOrder.
// Blocking neighbors are included; callers filter them.
func (g *Grid) Neighbors(c Coord) []Coord {
	return g.NeighborsInOrder(c, DefaultOrder)
}

// NeighborsInOrder returns the in-bounds neighbors of c in the given order.
func (g *Grid) NeighborsInOrder(c Coord, order Order) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range order {
		dr, dc := d.offset()
		nc := Coord{Row: c.Row + dr, Col: c.Col + dc}
		if g.InBounds(nc) {
			out = append(out, nc)
		}
	}
	return out
}

// SetTerrain paints c with the named type. An empty name (or Air) clears
// the cell; painting the type the cell already has toggles it back to
// default. It is a no-op returning false on Start, Finish or out of bounds.
// Returns ErrUnknownNodeType for names missing from the table.
func (g *Grid) SetTerrain(c Coord, name string) (bool, error) {
	n := g.At(c)
	if n == nil || n.Special() {
		return false, nil
	}
	if name == "" || name == Air || n.Terrain == name {
		if n.Terrain == "" {
			return false, nil
		}
		n.Terrain = ""
		n.Weight = DefaultWeight
		g.revision++
		return true, nil
	}
	nt, ok := g.table.Lookup(name)
	if !ok {
		return false, ErrUnknownNodeType
	}
	n.Terrain = nt.Name
	n.Weight = nt.Weight
	g.revision++

	return true, nil
}

// MoveStart relocates Start to c. See moveSpecial for the rules.
func (g *Grid) MoveStart(c Coord) bool {
	return g.moveSpecial(&g.start, Start, c)
}

// MoveFinish relocates Finish to c. See moveSpecial for the rules.
func (g *Grid) MoveFinish(c Coord) bool {
	return g.moveSpecial(&g.finish, Finish, c)
}

// moveSpecial fails on out-of-bounds, the other special node, a blocking
// node or the current cell. The vacated cell gets back the terrain it had
// before becoming special; the destination's terrain is covered until the
// special node leaves again.
func (g *Grid) moveSpecial(at *Coord, role Role, c Coord) bool {
	dst := g.At(c)
	if dst == nil || dst.Special() || dst.Blocking() {
		return false
	}
	src := g.At(*at)
	src.Role = Normal
	src.Terrain, src.covered = src.covered, ""
	src.Weight = g.table.Weight(src.Terrain)

	dst.Role = role
	dst.covered, dst.Terrain = dst.Terrain, ""
	dst.Weight = DefaultWeight
	*at = c
	g.revision++

	return true
}

// ResetScratch clears Visited, Distance, Heuristic, FScore and Prev on
// every node. Terrain is left untouched.
func (g *Grid) ResetScratch() {
	for i := range g.nodes {
		g.nodes[i].resetScratch()
	}
}

// ClearTerrain resets every node, including terrain covered by Start and
// Finish, to default terrain.
func (g *Grid) ClearTerrain() {
	for i := range g.nodes {
		n := &g.nodes[i]
		n.Terrain, n.covered = "", ""
		n.Weight = DefaultWeight
	}
	g.revision++
}

// RemoveWalls clears only Wall terrain.
func (g *Grid) RemoveWalls() {
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.Terrain == Wall {
			n.Terrain = ""
			n.Weight = DefaultWeight
		}
	}
	g.revision++
}

// RecomputeWeights adopts table (when non-nil) and reassigns every node's
// weight from its terrain. Start and Finish always weigh DefaultWeight.
// Complexity: O(rows×cols×types).
func (g *Grid) RecomputeWeights(table *NodeTypeTable) {
	if table != nil {
		g.table = table
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.Special() {
			n.Weight = DefaultWeight
			continue
		}
		n.Weight = g.table.Weight(n.Terrain)
	}
	g.revision++
}

// Clone returns a deep copy of the grid, including its table, suitable
// for handing to a search as a snapshot.
func (g *Grid) Clone() *Grid {
	c := *g
	c.nodes = make([]Node, len(g.nodes))
	copy(c.nodes, g.nodes)
	c.table = g.table.Clone()
	return &c
}

// Walls returns the number of blocking nodes.
func (g *Grid) Walls() int {
	count := 0
	for i := range g.nodes {
		if math.IsInf(g.nodes[i].Weight, 1) {
			count++
		}
	}
	return count
}
