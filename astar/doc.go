// Package astar implements the two heuristic-guided searches over a
// grid.Grid: A* Search and Greedy Best-first Search.
//
// Both share one queue/relax loop over a stable min-heap:
//
//   - Search (A*) orders the frontier by FScore = g + h, where g is the
//     accumulated weight and h the heuristic estimate to Finish. A
//     neighbor is relaxed when its g improves, never when only its FScore
//     would, so the result stays weight-optimal under an admissible h.
//   - Greedy orders the frontier by h alone. Every unvisited neighbor is
//     re-linked to the node being expanded and queued again, so the path
//     follows the last discoverer. It usually visits far fewer nodes and
//     carries no optimality guarantee.
//
// The default heuristic is Manhattan distance, admissible on a
// 4-connected grid whose cheapest step costs 1.
//
// Complexity: O(N log N) time and O(N) memory, N = rows×cols.
//
// Example:
//
//	res, err := astar.Search(g, g.Start(), g.Finish())
//	greedy, err := astar.Greedy(g, g.Start(), g.Finish())
package astar
