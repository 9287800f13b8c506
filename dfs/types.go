// Package dfs defines types and options for depth-first search over a
// grid.Grid, including pre-/post-order hooks and neighbor ordering.
package dfs

import (
	"errors"

	"github.com/katalvlaran/pathviz/grid"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to Search.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrStartOutOfBounds indicates that the start coordinate is off the grid.
	ErrStartOutOfBounds = errors.New("dfs: start out of bounds")

	// ErrFinishOutOfBounds indicates that the finish coordinate is off the grid.
	ErrFinishOutOfBounds = errors.New("dfs: finish out of bounds")
)

// Option configures optional behavior of DFS traversal.
// Use with Search(g, start, finish, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a node is entered (pre-order).
	OnVisit func(c grid.Coord)

	// OnExit, if non-nil, is invoked after all descendants of a node were
	// explored without reaching finish (post-order backtrack).
	OnExit func(c grid.Coord)

	// Order is the neighbor enumeration order; defaults to grid.DefaultOrder.
	Order grid.Order
}

// DefaultOptions returns a DFSOptions struct with:
//   - No pre-/post-order hooks
//   - grid.DefaultOrder neighbor enumeration
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnVisit: nil,
		OnExit:  nil,
		Order:   grid.DefaultOrder,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(c grid.Coord)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called when the walk backtracks out of a dead end.
func WithOnExit(fn func(c grid.Coord)) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithNeighborOrder returns an Option that changes the order neighbors
// are descended into. grid.DownRightUpLeft reproduces the order of the
// first depth-first implementation.
func WithNeighborOrder(order grid.Order) Option {
	return func(o *DFSOptions) {
		o.Order = order
	}
}
