package searcher

import (
	"golang.org/x/exp/rand"

	"arena/game"
)

// Evaluator estimates final per-seat scores for a non-terminal state. The
// state passed in is a scratch copy the evaluator may clone but not keep.
type Evaluator func(state game.State, rng *rand.Rand) []float64

// Rollout evaluates by playing count uniform-random games to completion,
// averaging the final scores. A playout that exceeds cutoff plies is scored
// as a draw. cutoff <= 0 means no depth limit.
func Rollout(count, cutoff int) Evaluator {
	if count < 1 {
		count = 1
	}
	return func(state game.State, rng *rand.Rand) []float64 {
		totals := make([]float64, numSeats)
		for i := 0; i < count; i++ {
			scratch := state.(game.Cloner).Clone()
			for s, v := range playout(scratch, rng, cutoff) {
				totals[s] += v
			}
		}
		for s := range totals {
			totals[s] /= float64(count)
		}
		return totals
	}
}

const numSeats = 2

func playout(state game.State, rng *rand.Rand, cutoff int) []float64 {
	for depth := 0; !state.Terminal(); depth++ {
		if cutoff > 0 && depth >= cutoff {
			return make([]float64, numSeats)
		}
		state.Apply(randomAction(state, rng))
	}
	return state.Scores()
}

func randomAction(state game.State, rng *rand.Rand) game.Action {
	if state.Kind() == game.KindChance {
		outcomes := state.ChanceOutcomes()
		r := rng.Float64()
		acc := 0.0
		for _, o := range outcomes {
			acc += o.Prob
			if r < acc {
				return o.Action
			}
		}
		return outcomes[len(outcomes)-1].Action
	}
	legal := state.LegalActions()
	return legal[rng.Intn(len(legal))]
}
