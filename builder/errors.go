package builder

import "errors"

var (
	// ErrNilGrid is returned when a generator receives a nil grid.
	ErrNilGrid = errors.New("builder: grid is nil")

	// ErrNeedRandSource is returned when no random source is configured.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrInvalidProbability is returned when densities sum past 1.
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrTooFewRooms is returned when a maze would have fewer than two rooms.
	ErrTooFewRooms = errors.New("builder: grid too small for a maze")
)
