package astar

import (
	"errors"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors for A* and Greedy Best-first Search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds is returned when the start coordinate is off the grid.
	ErrStartOutOfBounds = errors.New("astar: start out of bounds")

	// ErrFinishOutOfBounds is returned when the finish coordinate is off the grid.
	ErrFinishOutOfBounds = errors.New("astar: finish out of bounds")

	// ErrNilHeuristic is returned when WithHeuristic(nil) was applied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")
)

// Heuristic returns the estimated cost from node a to node b.
type Heuristic func(from, to grid.Coord) float64

// Manhattan is |Δrow| + |Δcol|. Every step on a grid costs at least
// grid.MinWeight (1), so it never overestimates and A* stays optimal.
func Manhattan(from, to grid.Coord) float64 {
	return float64(from.Manhattan(to))
}

// Zero estimates nothing; A* with Zero expands exactly like Dijkstra.
func Zero(grid.Coord, grid.Coord) float64 {
	return 0
}

// Option is a function that modifies Options.
type Option func(*Options)

// Options holds parameters and callbacks for the heuristic searches.
type Options struct {
	// Heuristic estimates the remaining cost; defaults to Manhattan.
	Heuristic Heuristic

	// Order is the neighbor enumeration order; defaults to grid.DefaultOrder.
	Order grid.Order

	// OnVisit, if non-nil, is called when a node is popped and marked visited.
	OnVisit func(c grid.Coord)
}

// DefaultOptions returns the Manhattan heuristic, grid.DefaultOrder and no hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		Order:     grid.DefaultOrder,
	}
}

// WithHeuristic replaces the Manhattan estimate. An inadmissible heuristic
// forfeits the optimality guarantee of Search.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithNeighborOrder overrides the neighbor enumeration order.
func WithNeighborOrder(order grid.Order) Option {
	return func(o *Options) { o.Order = order }
}

// WithOnVisit installs a hook called for every visited node.
func WithOnVisit(fn func(grid.Coord)) Option {
	return func(o *Options) { o.OnVisit = fn }
}
