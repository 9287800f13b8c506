// Package search closes the set of grid search algorithms into one
// enumerated type with a uniform entry point.
//
// Every Algorithm maps to a Func with the same signature:
//
//	func(g *grid.Grid, start, finish grid.Coord) (grid.Result, error)
//
// Run dispatches on the enum. Adding an algorithm means adding a constant
// and a case to Func; an out-of-range value is a programming error and
// panics.
//
// Names accepted by ParseAlgorithm:
//
//	Breadth-first Search      bfs
//	Depth-first Search        dfs
//	Dijkstra's Algorithm      dijkstra
//	A* Search                 astar
//	Greedy Best-first Search  gbfs
package search
