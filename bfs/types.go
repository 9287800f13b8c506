// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"errors"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start coordinate is off the grid.
	ErrStartOutOfBounds = errors.New("bfs: start out of bounds")

	// ErrFinishOutOfBounds is returned when the finish coordinate is off the grid.
	ErrFinishOutOfBounds = errors.New("bfs: finish out of bounds")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnEnqueue is called when a node is marked visited and enqueued.
	OnEnqueue func(c grid.Coord)

	// OnDequeue is called when a node is taken off the queue and
	// appended to the visitation trace.
	OnDequeue func(c grid.Coord)

	// Order is the neighbor enumeration order.
	Order grid.Order
}

// DefaultOptions returns a BFSOptions with no-op hooks and grid.DefaultOrder.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue: func(grid.Coord) {},
		OnDequeue: func(grid.Coord) {},
		Order:     grid.DefaultOrder,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Coord)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c grid.Coord)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithNeighborOrder overrides the neighbor enumeration order.
func WithNeighborOrder(order grid.Order) Option {
	return func(o *BFSOptions) {
		o.Order = order
	}
}
