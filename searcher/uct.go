// Package searcher implements a Monte Carlo tree search agent over the
// driver's game contract. The tree distinguishes decision nodes (UCB
// selection) from chance nodes (outcome sampling); leaves are scored by a
// pluggable Evaluator, random rollouts by default.
package searcher

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"arena/game"
)

const (
	DefaultExploration = 1.4
	DefaultEpisodes    = 100
)

type Option func(*UCT)

func WithExploration(c float64) Option {
	return func(u *UCT) {
		if c > 0 {
			u.exploration = c
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(u *UCT) {
		if episodes > 0 {
			u.episodes = episodes
		}
	}
}

func WithEvaluator(evaluate Evaluator) Option {
	return func(u *UCT) {
		if evaluate != nil {
			u.evaluate = evaluate
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(u *UCT) {
		if rng != nil {
			u.rng = rng
		}
	}
}

// UCT is a search agent. It rebuilds its tree on every decision, so
// observing the opponent's moves requires no bookkeeping.
type UCT struct {
	exploration float64
	episodes    int
	evaluate    Evaluator
	rng         *rand.Rand
}

func NewUCT(options ...Option) *UCT {
	u := &UCT{
		exploration: DefaultExploration,
		episodes:    DefaultEpisodes,
	}
	for _, option := range options {
		option(u)
	}
	if u.evaluate == nil {
		u.evaluate = Rollout(1, 0)
	}
	if u.rng == nil {
		u.rng = rand.New(rand.NewSource(rand.Uint64()))
	}
	return u
}

func (u *UCT) Decide(state game.State) (game.Action, error) {
	cloner, ok := state.(game.Cloner)
	if !ok {
		return 0, errors.Errorf("state %T is not cloneable, search needs scratch copies", state)
	}

	root := newNode(state)
	if root.terminal() {
		return 0, errors.New("no legal actions to search")
	}
	for ep := 0; ep < u.episodes; ep++ {
		u.episode(root, cloner.Clone())
	}

	best := root.mostVisited()
	log.Debug().
		Int("episodes", u.episodes).
		Float64("visits", root.visits[best]).
		Float64("value", root.rewards[best]/root.visits[best]).
		Msgf("search picked action %d", root.actions[best])
	return root.actions[best], nil
}

func (u *UCT) Observe(game.State, game.Seat, game.Action) {}

func (u *UCT) Reset() {}

type step struct {
	n   *node
	idx int
}

// episode walks the tree once: select down to an unexpanded child, expand
// and evaluate it, then back the scores up the walked path.
func (u *UCT) episode(root *node, state game.State) {
	var path []step
	var scores []float64

	n := root
	for {
		if n.terminal() {
			scores = state.Scores()
			break
		}

		var idx int
		if n.kind == game.KindChance {
			idx = u.sampleOutcome(n)
		} else {
			idx = n.pickUCB(u.exploration)
		}
		state.Apply(n.actions[idx])
		path = append(path, step{n, idx})

		if n.children[idx] == nil {
			n.children[idx] = newNode(state)
			if state.Terminal() {
				scores = state.Scores()
			} else {
				scores = u.evaluate(state, u.rng)
			}
			break
		}
		n = n.children[idx]
	}

	for _, s := range path {
		s.n.backup(s.idx, scores)
	}
}

func (u *UCT) sampleOutcome(n *node) int {
	r := u.rng.Float64()
	acc := 0.0
	for i, p := range n.probs {
		acc += p
		if r < acc {
			return i
		}
	}
	return len(n.probs) - 1
}
