package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"arena/game"
)

func newTestSampler(seed uint64) *Sampler {
	return NewSampler(rand.New(rand.NewSource(seed)))
}

func TestSampleDegenerateDistribution(t *testing.T) {
	s := newTestSampler(1)
	outcomes := []game.Outcome{{Action: 5, Prob: 0}, {Action: 7, Prob: 1}}

	for i := 0; i < 50; i++ {
		action, err := s.Sample(outcomes)
		require.NoError(t, err)
		require.Equal(t, game.Action(7), action, "the sole positive outcome must always be drawn")
	}
}

func TestSampleDegenerateConsumesNoRandomness(t *testing.T) {
	uniform := []game.Outcome{{Action: 0, Prob: 0.5}, {Action: 1, Prob: 0.5}}
	single := []game.Outcome{{Action: 9, Prob: 1}}

	a := newTestSampler(42)
	_, err := a.Sample(single)
	require.NoError(t, err)
	got, err := a.Sample(uniform)
	require.NoError(t, err)

	b := newTestSampler(42)
	want, err := b.Sample(uniform)
	require.NoError(t, err)

	require.Equal(t, want, got, "a degenerate draw must not advance the random source")
}

func TestSampleReproducible(t *testing.T) {
	outcomes := []game.Outcome{
		{Action: 0, Prob: 0.2},
		{Action: 1, Prob: 0.3},
		{Action: 2, Prob: 0.5},
	}

	a := newTestSampler(7)
	b := newTestSampler(7)
	for i := 0; i < 100; i++ {
		x, err := a.Sample(outcomes)
		require.NoError(t, err)
		y, err := b.Sample(outcomes)
		require.NoError(t, err)
		require.Equal(t, x, y, "same seed must give the same draw sequence")
	}
}

func TestSampleRejectsBadDistributions(t *testing.T) {
	s := newTestSampler(1)

	_, err := s.Sample(nil)
	require.Error(t, err, "empty distribution")

	_, err = s.Sample([]game.Outcome{{Action: 0, Prob: -0.5}, {Action: 1, Prob: 1.5}})
	require.Error(t, err, "negative probability")

	_, err = s.Sample([]game.Outcome{{Action: 0, Prob: 0}})
	require.Error(t, err, "no positive outcome")
}
