// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search on a weighted grid.Grid.
//
// Options:
//
//	– MaxDistance:  optional cap on distances to explore; nodes beyond are never visited.
//	– Order:        neighbor enumeration order (grid.DefaultOrder unless overridden).
//	– OnVisit:      hook invoked whenever a node is finalized.
//
// Errors (sentinel):
//
//	– ErrGridNil            if the provided grid pointer is nil.
//	– ErrStartOutOfBounds   if the start coordinate is off the grid.
//	– ErrFinishOutOfBounds  if the finish coordinate is off the grid.
//	– ErrBadMaxDistance     if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed to Search.
	ErrGridNil = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates that the start coordinate is off the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start out of bounds")

	// ErrFinishOutOfBounds indicates that the finish coordinate is off the grid.
	ErrFinishOutOfBounds = errors.New("dijkstra: finish out of bounds")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra search.
//
// MaxDistance – optional cap on cumulative weight (nodes beyond are not visited).
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64          // Maximum distance to explore
	Order       grid.Order       // Neighbor enumeration order
	OnVisit     func(grid.Coord) // Called when a node's distance is finalized
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored,
// so a finish beyond the cap is reported as unreachable.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithNeighborOrder overrides the neighbor enumeration order. The order
// decides which of several equal-cost paths is reported.
func WithNeighborOrder(order grid.Order) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// WithOnVisit installs a hook called each time a node is popped and finalized.
func WithOnVisit(fn func(grid.Coord)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxDistance: +Inf (no distance limit; explore all reachable).
//   - Order:       grid.DefaultOrder.
//   - OnVisit:     nil.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		Order:       grid.DefaultOrder,
		OnVisit:     nil,
	}
}
