package controller_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/controller"
	"github.com/katalvlaran/pathviz/search"
)

// PlaybackSuite plays every algorithm through a session on the same field.
type PlaybackSuite struct {
	suite.Suite
	h *harness
}

func (s *PlaybackSuite) SetupTest() {
	s.h = newHarness(s.T(), field)
}

// TestEveryAlgorithmPlaysToDone: each run reveals exactly its step list once.
func (s *PlaybackSuite) TestEveryAlgorithmPlaysToDone() {
	for i, a := range search.All() {
		s.h.s.SelectAlgorithm(a)
		s.h.steps = nil

		sum, ok := s.h.s.Start()
		require.True(s.T(), ok, a.Alias())
		require.True(s.T(), sum.Found, a.Alias())
		require.Equal(s.T(), a, sum.Algorithm)

		s.h.host.FireAll()
		require.Equal(s.T(), animation.Done, s.h.s.State(), a.Alias())

		res, _ := s.h.s.Result()
		require.Equal(s.T(), animation.BuildSteps(res), s.h.steps, a.Alias())
		require.Equal(s.T(), i+1, s.h.dones)
		require.Len(s.T(), s.h.s.Log(), i+1)
	}
}

// TestLogKeepsOrder: summaries are appended oldest first with distinct ids.
func (s *PlaybackSuite) TestLogKeepsOrder() {
	for _, a := range []search.Algorithm{search.AStar, search.BreadthFirst} {
		s.h.s.SelectAlgorithm(a)
		_, ok := s.h.s.Start()
		require.True(s.T(), ok)
		s.h.s.Skip()
	}
	log := s.h.s.Log()
	require.Len(s.T(), log, 2)
	require.Equal(s.T(), search.AStar, log[0].Algorithm)
	require.Equal(s.T(), search.BreadthFirst, log[1].Algorithm)
	require.NotEqual(s.T(), log[0].ID, log[1].ID)
}

// TestResetBetweenRuns: Reset returns to Idle and a new Start works.
func (s *PlaybackSuite) TestResetBetweenRuns() {
	_, ok := s.h.s.Start()
	require.True(s.T(), ok)
	s.h.host.Fire()

	s.h.s.Reset(controller.Reset)
	require.Equal(s.T(), animation.Idle, s.h.s.State())
	require.Zero(s.T(), s.h.host.Pending())
	require.Equal(s.T(), []controller.ResetMode{controller.Reset}, s.h.resets)

	_, ok = s.h.s.Start()
	require.True(s.T(), ok)
	require.Equal(s.T(), animation.Running, s.h.s.State())
}

func TestPlaybackSuite(t *testing.T) {
	suite.Run(t, new(PlaybackSuite))
}
