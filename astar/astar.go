package astar

import (
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/pq"
)

// Search runs A* from start to finish on g.
// Scratch fields are reset first; Heuristic and FScore of every queued
// node are left on the grid for inspection.
func Search(g *grid.Grid, start, finish grid.Coord, opts ...Option) (grid.Result, error) {
	return run(g, start, finish, false, opts)
}

// Greedy runs Greedy Best-first Search from start to finish on g.
func Greedy(g *grid.Grid, start, finish grid.Coord, opts ...Option) (grid.Result, error) {
	return run(g, start, finish, true, opts)
}

// runner holds the state of one heuristic search.
type runner struct {
	g       *grid.Grid
	opts    Options
	goal    grid.Coord
	finish  int
	open    *pq.Queue
	visited []grid.Coord
	greedy  bool // order by h only
}

func run(g *grid.Grid, start, finish grid.Coord, greedy bool, opts []Option) (grid.Result, error) {
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
	if o.Heuristic == nil {
		return grid.Result{}, ErrNilHeuristic
	}

	r := &runner{
		g:       g,
		opts:    o,
		goal:    finish,
		finish:  g.Index(finish),
		open:    pq.New(g.Len()),
		visited: make([]grid.Coord, 0, g.Len()),
		greedy:  greedy,
	}
	r.seed(g.Index(start))
	found := r.loop()

	return g.Collect(r.visited, finish, found), nil
}

// seed resets scratch and queues the start node. For Greedy the g value
// is informational only.
func (r *runner) seed(idx int) {
	r.g.ResetScratch()
	n := r.g.Node(idx)
	n.Distance = 0
	n.Heuristic = r.opts.Heuristic(n.Coord, r.goal)
	if r.greedy {
		n.FScore = n.Heuristic
	} else {
		n.FScore = n.Distance + n.Heuristic
	}
	r.open.Push(idx, n.FScore)
}

// loop pops until finish is visited or the frontier is exhausted.
func (r *runner) loop() bool {
	for r.open.Len() > 0 {
		item := r.open.Pop()
		n := r.g.Node(item.Node)
		if n.Visited {
			continue
		}

		n.Visited = true
		r.visited = append(r.visited, n.Coord)
		if r.opts.OnVisit != nil {
			r.opts.OnVisit(n.Coord)
		}
		if item.Node == r.finish {
			return true
		}

		for _, nc := range r.g.NeighborsInOrder(n.Coord, r.opts.Order) {
			v := r.g.At(nc)
			if v.Visited || v.Blocking() {
				continue
			}
			if r.greedy {
				r.relaxGreedy(item.Node, v)
			} else {
				r.relaxCost(item.Node, v)
			}
		}
	}
	return false
}

// relaxCost is the A* rule: improve on g, queue by g + h.
func (r *runner) relaxCost(u int, v *grid.Node) {
	cur := r.g.Node(u)
	newG := cur.Distance + v.Weight
	if newG >= v.Distance {
		return
	}
	v.Distance = newG
	v.Heuristic = r.opts.Heuristic(v.Coord, r.goal)
	v.FScore = v.Distance + v.Heuristic
	v.Prev = u
	r.open.Push(r.g.Index(v.Coord), v.FScore)
}

// relaxGreedy is the greedy rule: every discovery re-links v to u and
// queues it by h. The earlier entry keeps its place in the heap, so only
// the back-link changes.
func (r *runner) relaxGreedy(u int, v *grid.Node) {
	v.Distance = r.g.Node(u).Distance + v.Weight
	v.Heuristic = r.opts.Heuristic(v.Coord, r.goal)
	v.FScore = v.Heuristic
	v.Prev = u
	r.open.Push(r.g.Index(v.Coord), v.FScore)
}
