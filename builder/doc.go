// Package builder generates grid layouts for demos, tests and benchmarks.
//
// Two generators are provided:
//
//   - Scatter paints random terrain over every ordinary cell, drawing each
//     cell's type from per-type densities.
//   - Maze carves a perfect maze (exactly one route between any two open
//     cells) with Wilson's loop-erased random walk, then places Start in
//     the top-left room and Finish in the bottom-right room.
//
// Both are stochastic and require a random source (WithSeed or WithRand);
// a fixed seed always yields the same layout. Generators edit the grid
// through its public editing operations, so the grid revision advances
// and Start/Finish keep their usual protections.
//
// Errors:
//
//   - ErrNilGrid            if the grid is nil.
//   - ErrNeedRandSource     if no random source was configured.
//   - ErrInvalidProbability if the densities sum to more than 1.
//   - ErrTooFewRooms        if the grid cannot hold two maze rooms.
//
// Option constructors panic on meaningless inputs (nil RNG, a density
// outside [0,1]); generators themselves only return errors.
package builder
