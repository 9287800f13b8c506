// Package controller mediates user input between a presentation layer
// and the engine.
//
// A Session owns one grid.Grid, the selected algorithm and paint type, an
// animation.Scheduler and the append-only run log. Grid edits are refused
// while playback is Running or Paused; transport commands (Start, Pause,
// Resume, Restart, Skip, Reset) map onto the scheduler. Each run searches
// a snapshot of the grid, so the live grid's scratch fields stay clean.
//
// A Session is not safe for concurrent use. Call it from the same event
// loop that hosts its scheduler.
package controller
