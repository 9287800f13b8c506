// Package animation turns a search result into a replayable sequence of
// reveal steps and plays them back under a pausable timer.
//
// BuildSteps flattens a grid.Result into Visited reveals (trace order,
// Start and Finish excluded) followed by OnShortestPath reveals (path
// order, both ends included).
//
// A Scheduler walks that list one step per tick:
//
//	Idle ──Start──▶ Running ──(last step)──▶ Done
//	                 │  ▲
//	           Pause │  │ Resume
//	                 ▼  │
//	                Paused
//
// Cancel returns to Idle from Running, Paused or Done. Restart replays the
// retained list from the first step. Skip runs every remaining step
// synchronously. Calls that do not apply to the current state are ignored.
//
// Timing is delegated to a Host. The host must run every callback on one
// goroutine; the Scheduler itself holds no locks. Loop is such a host for
// headless use, and animationtest.ManualHost is a fake clock for tests.
package animation
