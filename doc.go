// Package pathviz is a grid pathfinding engine built for visualizing how
// classic search algorithms explore a map, step by step.
//
// 🚀 What is pathviz?
//
//	A small, deterministic engine that brings together:
//		• Grid model: Start/Finish, walls and weighted terrain (Mud, Water, Sand, Grass)
//		• Unweighted search: breadth-first (BFS), depth-first (DFS)
//		• Weighted search: Dijkstra, A* with a Manhattan heuristic
//		• Heuristic search: Greedy Best-first
//		• Animation scheduler: timed replay with pause, resume, restart, skip and speed
//		• Interaction controller: edit locking, run log, reset modes
//
// ✨ Why pathviz?
//
//   - Deterministic: a fixed grid and neighbor order always produce the same trace
//   - Synchronous: every search runs to completion before playback starts
//   - Presentation-agnostic: playback emits discrete steps through callbacks
//   - Testable: the scheduler is driven by a Host, so tests own the clock
//
// Packages:
//
//	grid/        Coord, Node, node-type table, Grid editing, text maps, Result
//	bfs/ dfs/    unweighted traversals
//	dijkstra/    lazy-heap shortest paths
//	astar/       A* and Greedy Best-first
//	search/      Algorithm enumeration and dispatch
//	animation/   Step list, speeds and delays, Scheduler, event Loop
//	controller/  Session tying a grid, a scheduler and the run log together
//	builder/     seeded maze and terrain generators
//	cmd/pathviz  command line: run, play (TUI), algorithms, config
//
// Quick ASCII example:
//
//	S..#....
//	.m.#.ww.
//	...#....
//	.......F
//
// S is the Start, F the Finish, # a wall and m/w/s/g weighted terrain.
//
//	go install github.com/katalvlaran/pathviz/cmd/pathviz@latest
package pathviz
