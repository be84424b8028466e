package searcher

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"arena/game"
)

// Policy maps a rendered position (game.State.String) to estimated per-seat
// scores. It stands in for an externally trained evaluation model: positions
// the model has no opinion on evaluate as a draw.
type Policy map[string][]float64

// LoadPolicy reads a Policy from a YAML file and wraps it as an Evaluator.
func LoadPolicy(path string) (Evaluator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading policy %s", path)
	}
	var p Policy
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, errors.Wrapf(err, "parsing policy %s", path)
	}
	return p.Evaluate, nil
}

func (p Policy) Evaluate(state game.State, _ *rand.Rand) []float64 {
	if scores, ok := p[state.String()]; ok {
		return scores
	}
	return make([]float64, numSeats)
}
