package controller

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Summary is one run-log entry.
type Summary struct {
	ID           uuid.UUID
	Algorithm    search.Algorithm
	NodesVisited int
	PathLength   int
	TotalCost    float64
	Found        bool
}

// NewSummary describes res as produced by alg under a fresh run id.
func NewSummary(alg search.Algorithm, res grid.Result) Summary {
	return Summary{
		ID:           uuid.New(),
		Algorithm:    alg,
		NodesVisited: res.NodesVisited,
		PathLength:   res.PathLength,
		TotalCost:    res.TotalCost,
		Found:        res.Found(),
	}
}

// String renders the line shown in the run log.
func (s Summary) String() string {
	head := fmt.Sprintf("%s visited %d nodes.", s.Algorithm, s.NodesVisited)
	if !s.Found {
		return head + " Could not find the finish node."
	}
	return fmt.Sprintf("%s Shortest Path Length: %d.", head, s.PathLength)
}
