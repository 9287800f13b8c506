package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/bfs"
	"github.com/katalvlaran/pathviz/dfs"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/grid"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for an unrecognized name.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Func is the uniform signature every algorithm is dispatched through.
type Func func(g *grid.Grid, start, finish grid.Coord) (grid.Result, error)

// Algorithm is the closed set of supported searches.
type Algorithm int

const (
	BreadthFirst Algorithm = iota
	DepthFirst
	Dijkstra
	AStar
	GreedyBestFirst

	numAlgorithms
)

var names = [numAlgorithms]string{
	BreadthFirst:    "Breadth-first Search",
	DepthFirst:      "Depth-first Search",
	Dijkstra:        "Dijkstra's Algorithm",
	AStar:           "A* Search",
	GreedyBestFirst: "Greedy Best-first Search",
}

var aliases = [numAlgorithms]string{
	BreadthFirst:    "bfs",
	DepthFirst:      "dfs",
	Dijkstra:        "dijkstra",
	AStar:           "astar",
	GreedyBestFirst: "gbfs",
}

// All returns every algorithm in menu order.
func All() []Algorithm {
	out := make([]Algorithm, 0, numAlgorithms)
	for a := Algorithm(0); a < numAlgorithms; a++ {
		out = append(out, a)
	}
	return out
}

// Valid reports whether a is one of the enumerated algorithms.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < numAlgorithms
}

// String returns the display name.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return names[a]
}

// Alias returns the short command-line name.
func (a Algorithm) Alias() string {
	if !a.Valid() {
		return ""
	}
	return aliases[a]
}

// Weighted reports whether the algorithm takes node weights into account.
func (a Algorithm) Weighted() bool {
	return a == Dijkstra || a == AStar
}

// Optimal reports whether the returned path is guaranteed shortest:
// by weight for weighted algorithms, by edge count for BreadthFirst.
func (a Algorithm) Optimal() bool {
	return a == BreadthFirst || a == Dijkstra || a == AStar
}

// Next returns the following algorithm, wrapping around.
func (a Algorithm) Next() Algorithm {
	return (a + 1) % numAlgorithms
}

// ParseAlgorithm accepts a display name or an alias, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for a := Algorithm(0); a < numAlgorithms; a++ {
		if key == aliases[a] || key == strings.ToLower(names[a]) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler using the alias.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(aliases[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Func returns the search procedure for a. It panics on a value outside
// the enumeration.
func (a Algorithm) Func() Func {
	switch a {
	case BreadthFirst:
		return func(g *grid.Grid, s, f grid.Coord) (grid.Result, error) { return bfs.Search(g, s, f) }
	case DepthFirst:
		return func(g *grid.Grid, s, f grid.Coord) (grid.Result, error) { return dfs.Search(g, s, f) }
	case Dijkstra:
		return func(g *grid.Grid, s, f grid.Coord) (grid.Result, error) { return dijkstra.Search(g, s, f) }
	case AStar:
		return func(g *grid.Grid, s, f grid.Coord) (grid.Result, error) { return astar.Search(g, s, f) }
	case GreedyBestFirst:
		return func(g *grid.Grid, s, f grid.Coord) (grid.Result, error) { return astar.Greedy(g, s, f) }
	default:
		panic(fmt.Sprintf("search: unknown algorithm %d", int(a)))
	}
}

// Run executes a on g between start and finish.
func Run(a Algorithm, g *grid.Grid, start, finish grid.Coord) (grid.Result, error) {
	return a.Func()(g, start, finish)
}
