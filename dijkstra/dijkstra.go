// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// weighted grid.Grid.
//
// The cost of a step is the weight of the node being entered; Start
// itself costs nothing. Blocking (infinite-weight) nodes are never
// relaxed. Nodes are processed in order of increasing distance using a
// min-heap priority queue with a stable tie-break.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Finish is detected when it is popped, so its distance is final.
package dijkstra

import (
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/pq"
)

// Search computes the minimum-weight path from start to finish on g.
//
// Returns the visitation trace in pop order (start first), the path
// reconstructed from Prev back-links and its edge count. An unreachable
// finish is a normal outcome: the path is nil and the full reachable
// region is in the trace.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGridNil).
//  2. start must lie on the grid (ErrStartOutOfBounds).
//  3. finish must lie on the grid (ErrFinishOutOfBounds).
//
// Complexity:
//
//   - Time:  O(N log N), N = rows×cols (at most 4N pushes).
//   - Space: O(N)
func Search(g *grid.Grid, start, finish grid.Coord, opts ...Option) (grid.Result, error) {
	// 1) Validate input
	if g == nil {
		return grid.Result{}, ErrGridNil
	}
	if !g.InBounds(start) {
		return grid.Result{}, ErrStartOutOfBounds
	}
	if !g.InBounds(finish) {
		return grid.Result{}, ErrFinishOutOfBounds
	}

	// 2) Build options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 3) Initialize runner and run main loop
	r := &runner{
		g:       g,
		options: cfg,
		finish:  g.Index(finish),
		pq:      pq.New(g.Len()),
		visited: make([]grid.Coord, 0, g.Len()),
	}
	r.init(g.Index(start))
	found := r.process()

	return g.Collect(r.visited, finish, found), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid   // Scratch space; terrain is read-only here.
	options Options      // Configuration options.
	finish  int          // Row-major index of finish.
	pq      *pq.Queue    // Min-heap keyed on Distance.
	visited []grid.Coord // Trace in pop order.
}

// init resets scratch and pushes source with distance 0.
func (r *runner) init(source int) {
	r.g.ResetScratch()
	n := r.g.Node(source)
	n.Distance = 0
	n.FScore = 0
	r.pq.Push(source, 0)
}

// process is the core loop: pop the closest node, finalize it, relax its
// neighbors. It reports whether finish was popped.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := r.pq.Pop()
		n := r.g.Node(item.Node)

		// 2) Skip stale heap entries for finalized nodes.
		if n.Visited {
			continue
		}

		// 3) Past the cap nothing further can be finalized.
		if item.Priority > r.options.MaxDistance {
			break
		}

		// 4) Finalize.
		n.Visited = true
		r.visited = append(r.visited, n.Coord)
		if r.options.OnVisit != nil {
			r.options.OnVisit(n.Coord)
		}
		if item.Node == r.finish {
			return true
		}

		// 5) Relax all neighbors.
		r.relax(item.Node)
	}

	return false
}

// relax offers d(u)+w(v) to every unvisited, passable neighbor v of u and
// pushes v on strict improvement.
func (r *runner) relax(u int) {
	cur := r.g.Node(u)
	var v *grid.Node
	var newDist float64
	for _, nc := range r.g.NeighborsInOrder(cur.Coord, r.options.Order) {
		v = r.g.At(nc)
		if v.Visited || v.Blocking() {
			continue
		}

		newDist = cur.Distance + v.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict “<” keeps the first-discovered parent on ties.
		if newDist >= v.Distance {
			continue
		}

		v.Distance = newDist
		v.FScore = newDist
		v.Prev = u
		r.pq.Push(r.g.Index(nc), newDist)
	}
}
