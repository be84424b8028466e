package agent

import (
	"golang.org/x/exp/rand"

	"arena/game"
)

// Random picks uniformly among the legal actions.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (a *Random) Decide(state game.State) (game.Action, error) {
	legal := state.LegalActions()
	return legal[a.rng.Intn(len(legal))], nil
}

func (a *Random) Observe(game.State, game.Seat, game.Action) {}

func (a *Random) Reset() {}
