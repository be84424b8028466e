package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"arena/game"
)

func TestResolveAction(t *testing.T) {
	state := &toyState{}

	t.Run("present label resolves to its action", func(t *testing.T) {
		action, ok := ResolveAction(state, 0, "B")
		require.True(t, ok)
		require.Equal(t, game.Action(1), action)
	})

	t.Run("absent label is not found", func(t *testing.T) {
		_, ok := ResolveAction(state, 0, "Z")
		require.False(t, ok, "a label outside the legal set must not resolve")
	})

	t.Run("resolution has no side effects", func(t *testing.T) {
		ResolveAction(state, 0, "A")
		require.Empty(t, state.applied, "resolving must not apply anything")
	})
}

func TestLegalLabels(t *testing.T) {
	require.Equal(t, []string{"A", "B", "C"}, LegalLabels(&toyState{}, 0))
}
