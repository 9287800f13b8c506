package animation

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathviz/grid"
)

// Host schedules fn to run once after d on the host's event loop.
// The returned stop function cancels a pending call and reports whether
// it did so.
type Host interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// State is the playback state of a Scheduler.
type State int

const (
	Idle State = iota
	Running
	Paused
	Done
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Active reports whether playback is in progress (Running or Paused).
func (s State) Active() bool {
	return s == Running || s == Paused
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithOnStep installs the per-step callback of the presentation layer.
func WithOnStep(fn func(Step)) Option {
	return func(s *Scheduler) { s.onStep = fn }
}

// WithOnDone installs a callback fired once when the last step has run.
func WithOnDone(fn func()) Option {
	return func(s *Scheduler) { s.onDone = fn }
}

// WithSpeed sets the initial speed.
func WithSpeed(sp Speed) Option {
	return func(s *Scheduler) { s.speed = sp }
}

// WithDelays replaces the delay table.
func WithDelays(t DelayTable) Option {
	return func(s *Scheduler) { s.delays = t }
}

// WithLogger routes state transitions to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// Scheduler replays a step list one tick at a time. It is not safe for
// concurrent use; every method and every tick must run on the host loop.
type Scheduler struct {
	host   Host
	steps  []Step
	cur    int
	state  State
	speed  Speed
	delays DelayTable

	gen  uint64      // bumped to invalidate ticks already posted
	stop func() bool // cancels the pending tick, nil if none

	onStep func(Step)
	onDone func()
	log    *slog.Logger
}

// NewScheduler returns an Idle scheduler driven by host.
func NewScheduler(host Host, opts ...Option) *Scheduler {
	s := &Scheduler{
		host:   host,
		speed:  Normal,
		delays: DefaultDelays(),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current playback state.
func (s *Scheduler) State() State { return s.state }

// Current returns how many steps have been executed.
func (s *Scheduler) Current() int { return s.cur }

// Len returns the number of steps in the retained list.
func (s *Scheduler) Len() int { return len(s.steps) }

// Steps returns a copy of the retained step list.
func (s *Scheduler) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Speed returns the current speed.
func (s *Scheduler) Speed() Speed { return s.speed }

// SetSpeed changes the speed. A tick that is already scheduled keeps its
// delay; the new speed applies from the next one.
func (s *Scheduler) SetSpeed(sp Speed) {
	if !sp.Valid() {
		return
	}
	s.speed = sp
}

// Start builds the step list from res and begins playback.
// Ignored unless Idle or Done.
func (s *Scheduler) Start(res grid.Result) {
	s.StartSteps(BuildSteps(res))
}

// StartSteps begins playback of steps. Ignored unless Idle or Done.
func (s *Scheduler) StartSteps(steps []Step) {
	if s.state != Idle && s.state != Done {
		return
	}
	s.steps = steps
	s.begin()
}

// Pause cancels the pending tick and keeps the position. Running only.
func (s *Scheduler) Pause() {
	if s.state != Running {
		return
	}
	s.halt()
	s.transition(Paused)
}

// Resume continues from the current position. Paused only.
func (s *Scheduler) Resume() {
	if s.state != Paused {
		return
	}
	s.transition(Running)
	if s.cur >= len(s.steps) {
		// paused by the callback of the last step
		s.finish()
		return
	}
	s.schedule()
}

// Restart replays the retained list from the first step.
// Ignored when Idle.
func (s *Scheduler) Restart() {
	if s.state == Idle {
		return
	}
	s.halt()
	s.begin()
}

// Skip executes every remaining step synchronously, then completes.
// Running or Paused only.
func (s *Scheduler) Skip() {
	if !s.state.Active() {
		return
	}
	s.halt()
	gen := s.gen
	for s.cur < len(s.steps) {
		s.exec()
		if gen != s.gen {
			return
		}
	}
	s.finish()
}

// Cancel drops the step list and returns to Idle. Steps already
// revealed are left to the caller to clear.
func (s *Scheduler) Cancel() {
	if s.state == Idle {
		return
	}
	s.halt()
	s.steps = nil
	s.cur = 0
	s.transition(Idle)
}

// begin rewinds and enters Running.
func (s *Scheduler) begin() {
	s.cur = 0
	s.transition(Running)
	if len(s.steps) == 0 {
		s.finish()
		return
	}
	s.schedule()
}

// schedule arms one tick for the next step at the current speed.
func (s *Scheduler) schedule() {
	gen := s.gen
	d := s.delays.Lookup(s.speed).For(s.steps[s.cur].Kind)
	s.stop = s.host.AfterFunc(d, func() { s.tick(gen) })
}

// tick executes one step unless it was invalidated after being armed.
func (s *Scheduler) tick(gen uint64) {
	if gen != s.gen || s.state != Running {
		return
	}
	s.stop = nil
	s.exec()
	if gen != s.gen || s.state != Running {
		// the step callback paused, cancelled or restarted us
		return
	}
	if s.cur >= len(s.steps) {
		s.finish()
		return
	}
	s.schedule()
}

// exec runs the current step and advances.
func (s *Scheduler) exec() {
	step := s.steps[s.cur]
	s.cur++
	if s.onStep != nil {
		s.onStep(step)
	}
}

// halt cancels any pending tick and invalidates ticks already in flight.
func (s *Scheduler) halt() {
	s.gen++
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

func (s *Scheduler) finish() {
	s.transition(Done)
	if s.onDone != nil {
		s.onDone()
	}
}

func (s *Scheduler) transition(to State) {
	s.log.Debug("animation state", "from", s.state, "to", to, "step", s.cur, "steps", len(s.steps))
	s.state = to
}
