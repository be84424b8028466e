package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"arena/game"
	"arena/game/pig"
	"arena/game/tictactoe"
)

func seededUCT(seed uint64, options ...Option) *UCT {
	options = append([]Option{WithRand(rand.New(rand.NewSource(seed)))}, options...)
	return NewUCT(options...)
}

func TestDecideFindsImmediateWin(t *testing.T) {
	// x holds a1 and b1; c1 (action 2) wins on the spot.
	state := tictactoe.Game{}.NewInitialState()
	for _, a := range []game.Action{0, 3, 1, 4} {
		state.Apply(a)
	}

	u := seededUCT(17, WithEpisodes(2000))
	action, err := u.Decide(state)

	require.NoError(t, err)
	require.Equal(t, game.Action(2), action, "the search must find the one-ply win")
}

func TestDecideHandlesChanceNodes(t *testing.T) {
	state := pig.Game{}.NewInitialState()

	u := seededUCT(3, WithEpisodes(200))
	action, err := u.Decide(state)

	require.NoError(t, err)
	require.Contains(t, state.LegalActions(), action)
}

func TestDecideIsReproducible(t *testing.T) {
	state := pig.Game{}.NewInitialState()

	first, err := seededUCT(11, WithEpisodes(150)).Decide(state)
	require.NoError(t, err)
	second, err := seededUCT(11, WithEpisodes(150)).Decide(state)
	require.NoError(t, err)

	require.Equal(t, first, second, "same seed and budget must pick the same move")
}

// flatState is a state without Clone support.
type flatState struct {
	game.State
}

func TestDecideRequiresCloneableState(t *testing.T) {
	u := seededUCT(1)
	_, err := u.Decide(flatState{tictactoe.Game{}.NewInitialState()})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cloneable")
}

func TestRolloutCutoffScoresAsDraw(t *testing.T) {
	evaluate := Rollout(1, 1)
	rng := rand.New(rand.NewSource(1))

	// Pig cannot finish within one ply, so the cutoff always triggers.
	scores := evaluate(pig.Game{}.NewInitialState(), rng)
	require.Equal(t, []float64{0, 0}, scores)
}

func TestRolloutReachesTerminalScores(t *testing.T) {
	// One move from a forced end: all rollouts finish and report real scores.
	state := tictactoe.Game{}.NewInitialState()
	for _, a := range []game.Action{0, 4, 8, 1, 7, 6, 2, 5} {
		state.Apply(a)
	}
	require.Len(t, state.LegalActions(), 1)

	evaluate := Rollout(5, 0)
	scores := evaluate(state, rand.New(rand.NewSource(2)))
	require.Equal(t, []float64{0, 0}, scores, "the only continuation is a draw")
}
