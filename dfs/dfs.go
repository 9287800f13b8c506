// Package dfs implements depth-first search on grid.Grid.
// It returns the first path the descent discovers, which is valid but
// generally not shortest.
//
// Key features:
//   - Search(g, start, finish, opts...): descend from start until finish is entered
//   - Hooks: OnVisit (pre-order) & OnExit (post-order backtrack)
//   - Neighbor order: WithNeighborOrder
//
// Complexity:
//
//   - Time:   O(N) where N = rows×cols.
//   - Memory: O(N) for the recursion stack and trace.
package dfs

import (
	"github.com/katalvlaran/pathviz/grid"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid    *grid.Grid   // grid borrowed for scratch
	opts    DFSOptions   // traversal options
	finish  int          // row-major index of finish
	visited []grid.Coord // trace in entry order
}

// Search performs depth-first search on g from start. Nodes are marked
// visited on entry and neighbors are explored in opts.Order; reaching
// finish short-circuits every enclosing call. Scratch fields are reset
// first. An unreachable finish is not an error.
func Search(g *grid.Grid, start, finish grid.Coord, opts ...Option) (grid.Result, error) {
	// 1. Validate input grid
	if g == nil {
		return grid.Result{}, ErrGridNil
	}
	if !g.InBounds(start) {
		return grid.Result{}, ErrStartOutOfBounds
	}
	if !g.InBounds(finish) {
		return grid.Result{}, ErrFinishOutOfBounds
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Traverse
	g.ResetScratch()
	walker := &dfsWalker{
		grid:    g,
		opts:    dopts,
		finish:  g.Index(finish),
		visited: make([]grid.Coord, 0, g.Len()),
	}
	found := walker.traverse(g.Index(start), grid.NoPrev)

	return g.Collect(walker.visited, finish, found), nil
}

// traverse enters node idx from parent and recurses into unvisited,
// passable neighbors. It reports whether finish was reached.
func (w *dfsWalker) traverse(idx, parent int) bool {
	// 1. Mark visited, link and record
	n := w.grid.Node(idx)
	n.Visited = true
	n.Prev = parent
	w.visited = append(w.visited, n.Coord)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(n.Coord)
	}
	if idx == w.finish {
		return true
	}

	// 2. Explore each neighbor; the visited check happens at descent time
	// because an earlier sibling's subtree may already have claimed it.
	for _, nc := range w.grid.NeighborsInOrder(n.Coord, w.opts.Order) {
		nb := w.grid.At(nc)
		if nb.Visited || nb.Blocking() {
			continue
		}
		if w.traverse(w.grid.Index(nc), idx) {
			return true
		}
	}

	// 3. Post-order hook
	if w.opts.OnExit != nil {
		w.opts.OnExit(n.Coord)
	}
	return false
}
