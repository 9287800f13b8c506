// Package bfs provides breadth-first search over a grid.Grid,
// returning the visitation trace and an edge-count shortest path.
//
// What
//
//   - Explore nodes in non-decreasing edge distance from Start.
//   - Returns a grid.Result containing:
//   - Visited: nodes in dequeue order, Start first
//   - Path: Start..Finish inclusive via Prev back-links, nil if unreachable
//   - PathLength: edge count of Path
//   - Supports hooks at two stages:
//   - OnEnqueue (node marked visited and queued)
//   - OnDequeue (node appended to the trace)
//
// Why
//
//   - The unweighted baseline: the path is edge-count minimal and terrain
//     weights are ignored entirely, which makes the contrast with Dijkstra
//     visible on weighted grids.
//
// State machine per node
//
//	Unvisited → Queued (Visited=true, Prev set) → dequeued (terminal)
//
//	Marking on enqueue rather than dequeue guarantees each node enters the
//	queue at most once. Finish is detected on dequeue.
//
// Determinism
//
//	Neighbors are enqueued in grid.DefaultOrder (up, down, left, right)
//	unless WithNeighborOrder says otherwise, so the trace is reproducible.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)
//   - Memory: O(N)
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrStartOutOfBounds   if start is off the grid.
//   - ErrFinishOutOfBounds  if finish is off the grid.
package bfs
