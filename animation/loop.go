package animation

import (
	"context"
	"sync"
	"time"
)

// Loop is a single-goroutine event loop implementing Host. Callbacks
// posted from any goroutine run one at a time inside Run.
type Loop struct {
	events chan func()
	done   chan struct{}
	once   sync.Once
}

// NewLoop returns a loop ready to Run.
func NewLoop() *Loop {
	return &Loop{
		events: make(chan func(), 64),
		done:   make(chan struct{}),
	}
}

// Post queues fn for the loop goroutine. It reports false once the loop
// has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

// AfterFunc implements Host on top of time.AfterFunc and Post.
func (l *Loop) AfterFunc(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, func() { l.Post(fn) })
	return t.Stop
}

// Run services callbacks until Stop is called or ctx ends. It returns
// ctx.Err() when the context ended the loop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.events:
			fn()
		}
	}
}

// Stop ends Run. Safe to call more than once and from a callback.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.done) })
}

// Done is closed when the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
