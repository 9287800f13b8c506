package controller

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

var (
	// ErrNilGrid is returned by New for a nil grid.
	ErrNilGrid = errors.New("controller: grid is nil")
	// ErrNilHost is returned by New for a nil animation host.
	ErrNilHost = errors.New("controller: host is nil")
)

// Option configures a Session.
type Option func(*Session)

// WithAlgorithm sets the initially selected algorithm.
func WithAlgorithm(a search.Algorithm) Option {
	return func(s *Session) { s.alg = a }
}

// WithSpeed sets the initial playback speed.
func WithSpeed(sp animation.Speed) Option {
	return func(s *Session) { s.speed = sp }
}

// WithDelays replaces the scheduler's delay table.
func WithDelays(t animation.DelayTable) Option {
	return func(s *Session) { s.delays = t }
}

// WithOnStep forwards every animation step to fn.
func WithOnStep(fn func(animation.Step)) Option {
	return func(s *Session) { s.onStep = fn }
}

// WithOnDone is called when playback completes.
func WithOnDone(fn func()) Option {
	return func(s *Session) { s.onDone = fn }
}

// WithOnReset is called whenever revealed steps must be cleared from the
// display: on Reset and before a restart replays.
func WithOnReset(fn func(ResetMode)) Option {
	return func(s *Session) { s.onReset = fn }
}

// WithLogger sets the logger for run records and scheduler transitions.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session is the interaction controller for one grid.
type Session struct {
	grid   *grid.Grid
	sched  *animation.Scheduler
	alg    search.Algorithm
	paint  string
	speed  animation.Speed
	delays animation.DelayTable

	runs    []Summary
	last    grid.Result
	lastAlg search.Algorithm
	lastRev uint64
	ran     bool

	onStep  func(animation.Step)
	onDone  func()
	onReset func(ResetMode)
	log     *slog.Logger
}

// New binds a session to g with playback timed by host.
func New(g *grid.Grid, host animation.Host, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if host == nil {
		return nil, ErrNilHost
	}
	s := &Session{
		grid:   g,
		alg:    search.Dijkstra,
		paint:  grid.Wall,
		speed:  animation.Normal,
		delays: animation.DefaultDelays(),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.alg.Valid() {
		panic(fmt.Sprintf("controller: unknown algorithm %d", int(s.alg)))
	}
	s.sched = animation.NewScheduler(host,
		animation.WithSpeed(s.speed),
		animation.WithDelays(s.delays),
		animation.WithLogger(s.log),
		animation.WithOnStep(func(st animation.Step) {
			if s.onStep != nil {
				s.onStep(st)
			}
		}),
		animation.WithOnDone(func() {
			if s.onDone != nil {
				s.onDone()
			}
		}),
	)
	return s, nil
}

// Grid returns the live grid.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Scheduler returns the playback scheduler.
func (s *Session) Scheduler() *animation.Scheduler { return s.sched }

// State is shorthand for Scheduler().State().
func (s *Session) State() animation.State { return s.sched.State() }

// Algorithm returns the selected algorithm.
func (s *Session) Algorithm() search.Algorithm { return s.alg }

// NodeType returns the selected paint type.
func (s *Session) NodeType() string { return s.paint }

// Speed returns the playback speed.
func (s *Session) Speed() animation.Speed { return s.sched.Speed() }

// Log returns a copy of the run log, oldest first.
func (s *Session) Log() []Summary {
	out := make([]Summary, len(s.runs))
	copy(out, s.runs)
	return out
}

// Result returns the most recent search result.
func (s *Session) Result() (grid.Result, bool) { return s.last, s.ran }

// Editable reports whether grid edits are currently accepted.
func (s *Session) Editable() bool { return !s.sched.State().Active() }

// ------------------------------------------------------------------------
// Edits
// ------------------------------------------------------------------------

// Paint applies the selected type at c; painting the same type twice
// clears it. It reports whether the grid changed.
func (s *Session) Paint(c grid.Coord) bool {
	return s.setTerrain(c, s.paint)
}

// Erase clears the terrain at c.
func (s *Session) Erase(c grid.Coord) bool {
	return s.setTerrain(c, "")
}

func (s *Session) setTerrain(c grid.Coord, name string) bool {
	if !s.Editable() {
		return false
	}
	changed, err := s.grid.SetTerrain(c, name)
	if err != nil {
		s.log.Warn("paint rejected", "cell", c, "type", name, "err", err)
		return false
	}
	return changed
}

// MoveStart drags Start to c.
func (s *Session) MoveStart(c grid.Coord) bool {
	if !s.Editable() {
		return false
	}
	return s.grid.MoveStart(c)
}

// MoveFinish drags Finish to c.
func (s *Session) MoveFinish(c grid.Coord) bool {
	if !s.Editable() {
		return false
	}
	return s.grid.MoveFinish(c)
}

// ------------------------------------------------------------------------
// Selection
// ------------------------------------------------------------------------

// SelectAlgorithm chooses the algorithm for the next Start. It panics on
// a value outside the enumeration.
func (s *Session) SelectAlgorithm(a search.Algorithm) {
	if !a.Valid() {
		panic(fmt.Sprintf("controller: unknown algorithm %d", int(a)))
	}
	s.alg = a
}

// SelectNodeType chooses the paint type. "" and grid.Air select erasing.
func (s *Session) SelectNodeType(name string) error {
	if name == "" || name == grid.Air {
		s.paint = ""
		return nil
	}
	if _, ok := s.grid.Table().Lookup(name); !ok {
		return fmt.Errorf("%w: %q", grid.ErrUnknownNodeType, name)
	}
	s.paint = name
	return nil
}

// SetWeight changes a type's weight and recomputes every node weight.
func (s *Session) SetWeight(name string, w float64) error {
	if err := s.grid.Table().SetWeight(name, w); err != nil {
		return err
	}
	s.grid.RecomputeWeights(nil)
	return nil
}

// SetSpeed changes the playback speed from the next tick on.
func (s *Session) SetSpeed(sp animation.Speed) {
	s.sched.SetSpeed(sp)
}

// ------------------------------------------------------------------------
// Transport
// ------------------------------------------------------------------------

// Start runs the selected algorithm on a snapshot of the grid, appends
// the summary to the log and begins playback. It returns false while
// playback is active.
func (s *Session) Start() (Summary, bool) {
	if !s.Editable() {
		return Summary{}, false
	}
	sum, ok := s.compute()
	if !ok {
		return Summary{}, false
	}
	s.sched.Start(s.last)
	return sum, true
}

// compute runs the search and records the outcome.
func (s *Session) compute() (Summary, bool) {
	snap := s.grid.Clone()
	res, err := search.Run(s.alg, snap, snap.Start(), snap.Finish())
	if err != nil {
		s.log.Error("search failed", "algorithm", s.alg, "err", err)
		return Summary{}, false
	}
	sum := NewSummary(s.alg, res)
	s.runs = append(s.runs, sum)
	s.last, s.lastAlg, s.lastRev, s.ran = res, s.alg, s.grid.Revision(), true
	s.log.Info("run finished",
		"id", sum.ID,
		"algorithm", sum.Algorithm.String(),
		"visited", sum.NodesVisited,
		"path_length", sum.PathLength,
		"found", sum.Found,
	)
	return sum, true
}

// Pause suspends playback.
func (s *Session) Pause() { s.sched.Pause() }

// Resume continues paused playback.
func (s *Session) Resume() { s.sched.Resume() }

// TogglePause pauses a running animation or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.sched.State() {
	case animation.Running:
		s.sched.Pause()
	case animation.Paused:
		s.sched.Resume()
	}
}

// Skip reveals every remaining step at once.
func (s *Session) Skip() { s.sched.Skip() }

// Restart replays the last run from its first step. When the grid or the
// selected algorithm changed since that run, the search is recomputed
// and a new summary is logged first. It returns false when nothing has
// run yet.
func (s *Session) Restart() bool {
	if !s.ran {
		return false
	}
	stale := s.grid.Revision() != s.lastRev || s.alg != s.lastAlg
	if s.onReset != nil {
		s.onReset(Reset)
	}
	if stale {
		s.sched.Cancel()
		if _, ok := s.compute(); !ok {
			return false
		}
		s.sched.Start(s.last)
		return true
	}
	if s.sched.State() == animation.Idle {
		s.sched.Start(s.last)
		return true
	}
	s.sched.Restart()
	return true
}

// Reset cancels playback and applies mode to the grid. It panics on a
// mode outside the enumeration.
func (s *Session) Reset(mode ResetMode) {
	switch mode {
	case Reset:
	case ClearGrid:
		s.grid.ClearTerrain()
	case RemoveWalls:
		s.grid.RemoveWalls()
	default:
		panic(fmt.Sprintf("controller: unknown reset mode %d", int(mode)))
	}
	s.sched.Cancel()
	s.grid.ResetScratch()
	s.log.Debug("reset", "mode", mode.String())
	if s.onReset != nil {
		s.onReset(mode)
	}
}
