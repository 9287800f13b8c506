// Package bfs provides breadth-first search over a grid.Grid,
// returning the visitation trace and an edge-count shortest path.
//
// BFS ignores weights; blocking nodes are never enqueued.
package bfs

import (
	"github.com/katalvlaran/pathviz/grid"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *grid.Grid
	opts    BFSOptions
	queue   []int
	visited []grid.Coord
	finish  int
}

// Search runs breadth-first search on g from start until finish is
// dequeued or the frontier is exhausted. Scratch fields are reset first.
// Nodes are marked visited on enqueue so each is enqueued at most once.
// Returns ErrGridNil, ErrStartOutOfBounds or ErrFinishOutOfBounds for
// invalid input; an unreachable finish is not an error.
// Complexity: O(rows×cols) time and memory.
func Search(g *grid.Grid, start, finish grid.Coord, opts ...Option) (grid.Result, error) {
	if g == nil {
		return grid.Result{}, ErrGridNil
	}
	if !g.InBounds(start) {
		return grid.Result{}, ErrStartOutOfBounds
	}
	if !g.InBounds(finish) {
		return grid.Result{}, ErrFinishOutOfBounds
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g.ResetScratch()
	w := &walker{
		grid:    g,
		opts:    o,
		queue:   make([]int, 0, g.Len()),
		visited: make([]grid.Coord, 0, g.Len()),
		finish:  g.Index(finish),
	}

	// Seed queue with start (no parent)
	w.enqueue(g.Index(start), grid.NoPrev)
	found := w.loop()

	return g.Collect(w.visited, finish, found), nil
}

// enqueue marks idx visited, records its parent and adds it to the queue.
func (w *walker) enqueue(idx, parent int) {
	n := w.grid.Node(idx)
	n.Visited = true
	n.Prev = parent
	w.opts.OnEnqueue(n.Coord)
	w.queue = append(w.queue, idx)
}

// loop processes the queue until finish is dequeued or the queue is empty.
func (w *walker) loop() bool {
	for len(w.queue) > 0 {
		idx := w.dequeue()
		if idx == w.finish {
			return true
		}
		w.enqueueNeighbors(idx)
	}
	return false
}

// dequeue pops the first item and appends it to the trace.
func (w *walker) dequeue() int {
	idx := w.queue[0]
	w.queue = w.queue[1:]
	c := w.grid.Node(idx).Coord
	w.visited = append(w.visited, c)
	w.opts.OnDequeue(c)
	return idx
}

// enqueueNeighbors enqueues every unseen, passable neighbor of idx.
func (w *walker) enqueueNeighbors(idx int) {
	cur := w.grid.Node(idx).Coord
	for _, nc := range w.grid.NeighborsInOrder(cur, w.opts.Order) {
		n := w.grid.At(nc)
		if n.Visited || n.Blocking() {
			continue
		}
		w.enqueue(w.grid.Index(nc), idx)
	}
}
