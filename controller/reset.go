package controller

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownResetMode is returned by ParseResetMode.
var ErrUnknownResetMode = errors.New("controller: unknown reset mode")

// ResetMode selects what Reset clears besides the animation.
type ResetMode int

const (
	// Reset stops playback and clears the overlay; terrain stays.
	Reset ResetMode = iota
	// ClearGrid also clears every terrain type.
	ClearGrid
	// RemoveWalls also clears Wall terrain, keeping weighted terrain.
	RemoveWalls
)

// ResetModes returns every mode in menu order.
func ResetModes() []ResetMode {
	return []ResetMode{Reset, ClearGrid, RemoveWalls}
}

// String returns the menu label.
func (m ResetMode) String() string {
	switch m {
	case Reset:
		return "Reset"
	case ClearGrid:
		return "Clear Grid"
	case RemoveWalls:
		return "Remove Walls"
	default:
		return fmt.Sprintf("ResetMode(%d)", int(m))
	}
}

// ParseResetMode accepts a menu label case-insensitively.
func ParseResetMode(s string) (ResetMode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, m := range ResetModes() {
		if key == strings.ToLower(m.String()) {
			return m, nil
		}
	}
	return Reset, fmt.Errorf("%w: %q", ErrUnknownResetMode, s)
}
