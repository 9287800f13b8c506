package animation_test

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoop_DrivesScheduler plays a short list in real time on the loop.
func TestLoop_DrivesScheduler(t *testing.T) {
	loop := animation.NewLoop()
	var ran []int
	s := animation.NewScheduler(loop,
		animation.WithDelays(animation.NewDelayTable(animation.Delay{Visited: time.Millisecond, Path: time.Millisecond})),
		animation.WithOnStep(func(st animation.Step) { ran = append(ran, st.Coord.Col) }),
		animation.WithOnDone(loop.Stop),
	)
	require.True(t, loop.Post(func() { s.StartSteps(numbered(5)) }))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, loop.Run(ctx))

	assert.Equal(t, seq(1, 5), ran)
	assert.Equal(t, animation.Done, s.State())
	assert.False(t, loop.Post(func() {}))
}

// TestLoop_ContextCancel returns the context error.
func TestLoop_ContextCancel(t *testing.T) {
	loop := animation.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, loop.Run(ctx), context.Canceled)

	select {
	case <-loop.Done():
	default:
		t.Fatal("loop should be stopped")
	}
	loop.Stop()
}
