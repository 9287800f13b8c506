// Package dfs implements depth-first search on a grid.Grid.
//
// What:
//
//   - Search descends from Start, marking nodes visited on entry and
//     exploring neighbors in a fixed order. The first descent that enters
//     Finish wins and the result propagates up the call stack.
//   - Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - A configurable neighbor order (WithNeighborOrder)
//
// Why:
//
//   - Shows the contrast with breadth-first layering: the path is a valid
//     connected sequence of passable nodes but carries no optimality
//     guarantee.
//
// Neighbor order:
//
//	Every algorithm in this module uses grid.DefaultOrder (up, down, left,
//	right). The first depth-first implementation used down, right, up,
//	left; grid.DownRightUpLeft reproduces it. On asymmetric grids the two
//	orders discover different paths.
//
// Complexity:
//
//   - Time:   O(N), N = rows×cols.
//   - Memory: O(N) recursion depth in the worst case (a serpentine corridor).
//
// Errors:
//
//   - ErrGridNil            if g is nil.
//   - ErrStartOutOfBounds   if start is off the grid.
//   - ErrFinishOutOfBounds  if finish is off the grid.
package dfs
