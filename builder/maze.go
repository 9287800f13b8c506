package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Maze turns g into a perfect maze. Rooms sit on even rows and columns;
// the cells between them are walls unless the walk opened them. Existing
// terrain is cleared first. Start moves to the top-left room and Finish
// to the bottom-right one. The grid's table must carry Wall; otherwise
// ErrUnknownNodeType is returned and g is left as it was.
//
// Complexity: expected O(rows×cols) cell updates; the random walks take
// expected time polynomial in the room count.
func Maze(g *grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return ErrNeedRandSource
	}
	m := mazer{g: g, rows: (g.Rows() + 1) / 2, cols: (g.Cols() + 1) / 2}
	if m.rows*m.cols < 2 {
		return fmt.Errorf("%w: %dx%d", ErrTooFewRooms, g.Rows(), g.Cols())
	}
	if _, ok := g.Table().Lookup(grid.Wall); !ok {
		return fmt.Errorf("%w: %q", grid.ErrUnknownNodeType, grid.Wall)
	}

	g.ClearTerrain()
	m.place()
	for idx := 0; idx < g.Len(); idx++ {
		n := g.Node(idx)
		if n.Special() {
			continue
		}
		if _, err := g.SetTerrain(n.Coord, grid.Wall); err != nil {
			return fmt.Errorf("builder: wall %v: %w", n.Coord, err)
		}
	}
	return m.carve(&cfg)
}

// mazer works in room coordinates: room r maps to cell 2r.
type mazer struct {
	g          *grid.Grid
	rows, cols int
}

func (m *mazer) cell(room int) grid.Coord {
	return grid.Coord{Row: 2 * (room / m.cols), Col: 2 * (room % m.cols)}
}

// place moves Start to the first room and Finish to the last one.
func (m *mazer) place() {
	first, last := m.cell(0), m.cell(m.rows*m.cols-1)
	g := m.g
	if g.Start() == last || g.Finish() == first {
		// park Start off both targets so neither move collides
		for idx := 0; idx < g.Len(); idx++ {
			c := g.CoordOf(idx)
			if c != first && c != last && g.MoveStart(c) {
				break
			}
		}
	}
	g.MoveFinish(last)
	g.MoveStart(first)
}

// carve runs Wilson's algorithm over the rooms.
func (m *mazer) carve(cfg *config) error {
	n := m.rows * m.cols
	inMaze := make([]bool, n)
	walk := make([]int, n)

	root := cfg.rng.Intn(n)
	inMaze[root] = true
	if err := m.open(m.cell(root)); err != nil {
		return err
	}

	for _, start := range cfg.rng.Perm(n) {
		if inMaze[start] {
			continue
		}
		// random walk until the maze is hit; revisits overwrite walk[],
		// which erases loops
		for cur := start; !inMaze[cur]; {
			nbs := m.neighbors(cur)
			walk[cur] = nbs[cfg.rng.Intn(len(nbs))]
			cur = walk[cur]
		}
		for cur := start; !inMaze[cur]; cur = walk[cur] {
			inMaze[cur] = true
			a, b := m.cell(cur), m.cell(walk[cur])
			if err := m.open(a); err != nil {
				return err
			}
			if err := m.open(grid.Coord{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *mazer) neighbors(room int) []int {
	r, c := room/m.cols, room%m.cols
	out := make([]int, 0, 4)
	if r > 0 {
		out = append(out, room-m.cols)
	}
	if r < m.rows-1 {
		out = append(out, room+m.cols)
	}
	if c > 0 {
		out = append(out, room-1)
	}
	if c < m.cols-1 {
		out = append(out, room+1)
	}
	return out
}

func (m *mazer) open(c grid.Coord) error {
	if m.g.At(c).Terrain != grid.Wall {
		return nil
	}
	if _, err := m.g.SetTerrain(c, ""); err != nil {
		return fmt.Errorf("builder: open %v: %w", c, err)
	}
	return nil
}
