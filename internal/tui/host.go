package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fireMsg delivers an armed timer back to Update.
type fireMsg struct{ id uint64 }

type timer struct {
	d  time.Duration
	fn func()
}

// Host implements animation.Host on top of the bubbletea loop. It is not
// safe for concurrent use; all calls happen inside Update.
type Host struct {
	next    uint64
	timers  map[uint64]timer
	pending []uint64
}

// NewHost returns a Host with no armed timers.
func NewHost() *Host {
	return &Host{timers: make(map[uint64]timer)}
}

// AfterFunc arms fn to run once d has elapsed. The returned stop func
// reports whether it disarmed a timer that had not fired yet.
func (h *Host) AfterFunc(d time.Duration, fn func()) func() bool {
	h.next++
	id := h.next
	h.timers[id] = timer{d: d, fn: fn}
	h.pending = append(h.pending, id)
	return func() bool {
		if _, ok := h.timers[id]; !ok {
			return false
		}
		delete(h.timers, id)
		return true
	}
}

// Armed returns the number of timers that have not fired or been stopped.
func (h *Host) Armed() int { return len(h.timers) }

// Cmd turns the timers armed since the previous call into tick commands.
func (h *Host) Cmd() tea.Cmd {
	if len(h.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(h.pending))
	for _, id := range h.pending {
		t, ok := h.timers[id]
		if !ok {
			continue
		}
		cmds = append(cmds, tea.Tick(t.d, func(time.Time) tea.Msg {
			return fireMsg{id: id}
		}))
	}
	h.pending = h.pending[:0]
	return tea.Batch(cmds...)
}

// fire runs the timer with the given id unless it was stopped.
func (h *Host) fire(id uint64) bool {
	t, ok := h.timers[id]
	if !ok {
		return false
	}
	delete(h.timers, id)
	t.fn()
	return true
}
