package engine

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"arena/game"
)

// Sampler draws chance outcomes from the single session-scoped random
// source. The source is consumed sequentially, never concurrently, so a
// fixed seed reproduces the same draws at the same chance points.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample draws one action from a discrete distribution. A distribution with
// a single positive-probability outcome is resolved deterministically
// without consuming randomness. Probabilities are trusted to sum to one;
// they are not renormalized here.
func (s *Sampler) Sample(outcomes []game.Outcome) (game.Action, error) {
	sole := -1
	positive := 0
	for i, o := range outcomes {
		if o.Prob < 0 {
			return 0, errors.Errorf("negative probability %v for action %d", o.Prob, o.Action)
		}
		if o.Prob > 0 {
			sole = i
			positive++
		}
	}
	if positive == 0 {
		return 0, errors.New("chance distribution has no positive outcome")
	}
	if positive == 1 {
		return outcomes[sole].Action, nil
	}

	r := s.rng.Float64()
	acc := 0.0
	for _, o := range outcomes {
		acc += o.Prob
		if r < acc {
			return o.Action, nil
		}
	}
	// Floating residue: fall back to the last positive outcome.
	return outcomes[sole].Action, nil
}
