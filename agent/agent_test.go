package agent

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"arena/engine"
	"arena/game"
	"arena/game/tictactoe"
)

func TestRandomPicksLegalActions(t *testing.T) {
	a := NewRandom(rand.New(rand.NewSource(1)))
	state := tictactoe.Game{}.NewInitialState()

	for i := 0; i < 20; i++ {
		action, err := a.Decide(state)
		require.NoError(t, err)
		require.Contains(t, state.LegalActions(), action)
	}
}

func TestRandomIsSeedDeterministic(t *testing.T) {
	state := tictactoe.Game{}.NewInitialState()

	pick := func() []game.Action {
		a := NewRandom(rand.New(rand.NewSource(9)))
		var actions []game.Action
		for i := 0; i < 10; i++ {
			action, err := a.Decide(state)
			require.NoError(t, err)
			actions = append(actions, action)
		}
		return actions
	}

	require.Equal(t, pick(), pick())
}

func TestHumanResolvesLabel(t *testing.T) {
	var out bytes.Buffer
	a := NewHuman(strings.NewReader("b1\n"), &out)

	action, err := a.Decide(tictactoe.Game{}.NewInitialState())
	require.NoError(t, err)
	require.Equal(t, game.Action(1), action)
	require.Contains(t, out.String(), "Legal moves:")
}

func TestHumanRepromptsOnBadLabel(t *testing.T) {
	var out bytes.Buffer
	a := NewHuman(strings.NewReader("z9\nb1\n"), &out)

	action, err := a.Decide(tictactoe.Game{}.NewInitialState())
	require.NoError(t, err)
	require.Equal(t, game.Action(1), action, "a bad label is retried, not fatal")
	require.Contains(t, out.String(), `Invalid move "z9"`)
}

func TestHumanReportsClosedInput(t *testing.T) {
	var out bytes.Buffer
	a := NewHuman(strings.NewReader(""), &out)

	_, err := a.Decide(tictactoe.Game{}.NewInitialState())
	require.ErrorIs(t, err, engine.ErrInputClosed)
}

func TestBuildKnownKinds(t *testing.T) {
	opts := Options{
		RNG:         rand.New(rand.NewSource(1)),
		Simulations: 10,
		Input:       strings.NewReader(""),
		Output:      &bytes.Buffer{},
	}

	for _, kind := range []Kind{KindRandom, KindHuman, KindMCTS} {
		a, err := Build(kind, opts)
		require.NoError(t, err, "kind %s", kind)
		require.NotNil(t, a)
	}
}

func TestBuildUnknownKind(t *testing.T) {
	_, err := Build("alphabeta", Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown agent kind")
}

func TestBuildMissingParameters(t *testing.T) {
	_, err := Build(KindPolicy, Options{})
	require.Error(t, err, "policy without a file path")

	_, err = Build(KindProcess, Options{})
	require.Error(t, err, "process without a binary path")
}
