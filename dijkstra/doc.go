// Package dijkstra provides Dijkstra's shortest-path search over a
// weighted grid.Grid.
//
// Overview:
//
//   - Search computes the minimum-weight path from Start to Finish, where
//     entering a node costs its weight (default terrain 1, Grass 5, Sand 10,
//     Water 30, Mud 50; Walls are impassable).
//   - It relies on a stable min-heap (internal/pq) to always expand the
//     next-closest node; equal distances pop in insertion order.
//   - The returned path is weight-optimal; its edge count may exceed the
//     breadth-first path when cheaper terrain lies on a detour.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - OnVisit: observe nodes as they are finalized.
//   - Order: neighbor enumeration order, grid.DefaultOrder by default.
//
// Performance and complexity:
//
//   - Time:  O(N log N), N = rows×cols.
//   - Each node is finalized at most once.
//   - Each relaxation may push one new entry (at most 4 per node).
//   - Space: O(N) for the heap and the visitation trace.
//
// Error handling (sentinel errors):
//
//   - ErrGridNil, ErrStartOutOfBounds, ErrFinishOutOfBounds for invalid input.
//   - ErrBadMaxDistance (via panic) if MaxDistance is negative.
//
// An unreachable finish is not an error: Result.Path is nil and
// Result.Visited holds every reachable node.
//
// Example:
//
//	res, err := dijkstra.Search(g, g.Start(), g.Finish())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.PathLength, res.TotalCost)
package dijkstra
