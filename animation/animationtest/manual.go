// Package animationtest provides a deterministic animation.Host for tests.
package animationtest

import (
	"sort"
	"time"
)

type timer struct {
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// ManualHost is a fake clock. Scheduled callbacks run only when the test
// calls Fire or FireAll, on the test goroutine.
type ManualHost struct {
	now    time.Duration
	seq    int
	timers []*timer
	delays []time.Duration
}

// NewManualHost returns a host at time zero.
func NewManualHost() *ManualHost {
	return &ManualHost{}
}

// AfterFunc records fn to run at now+d.
func (h *ManualHost) AfterFunc(d time.Duration, fn func()) func() bool {
	t := &timer{at: h.now + d, seq: h.seq, fn: fn}
	h.seq++
	h.timers = append(h.timers, t)
	h.delays = append(h.delays, d)
	return func() bool {
		if t.stopped || t.fired {
			return false
		}
		t.stopped = true
		return true
	}
}

// Pending returns the number of armed callbacks.
func (h *ManualHost) Pending() int {
	n := 0
	for _, t := range h.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Fire advances the clock to the earliest armed callback and runs it.
// It reports false when nothing is pending.
func (h *ManualHost) Fire() bool {
	live := h.timers[:0]
	for _, t := range h.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	h.timers = live
	if len(live) == 0 {
		return false
	}
	sort.SliceStable(live, func(i, j int) bool {
		if live[i].at != live[j].at {
			return live[i].at < live[j].at
		}
		return live[i].seq < live[j].seq
	})
	t := live[0]
	t.fired = true
	if t.at > h.now {
		h.now = t.at
	}
	t.fn()
	return true
}

// FireN fires up to n callbacks and returns how many ran.
func (h *ManualHost) FireN(n int) int {
	ran := 0
	for ran < n && h.Fire() {
		ran++
	}
	return ran
}

// FireAll fires until nothing is pending and returns how many ran.
func (h *ManualHost) FireAll() int {
	ran := 0
	for h.Fire() {
		ran++
	}
	return ran
}

// Now returns the fake clock.
func (h *ManualHost) Now() time.Duration { return h.now }

// Delays returns every delay requested so far, in request order.
func (h *ManualHost) Delays() []time.Duration {
	out := make([]time.Duration, len(h.delays))
	copy(out, h.delays)
	return out
}

// LastDelay returns the most recently requested delay.
func (h *ManualHost) LastDelay() time.Duration {
	if len(h.delays) == 0 {
		return 0
	}
	return h.delays[len(h.delays)-1]
}
