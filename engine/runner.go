package engine

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"arena/game"
)

// Runner plays single games to completion.
type Runner struct {
	Sampler *Sampler
}

func NewRunner(sampler *Sampler) *Runner {
	return &Runner{Sampler: sampler}
}

// Play runs one game from its initial state through the forced opening
// labels and then agent-driven play until terminal. Both agents are reset
// before Play returns, whatever the outcome, so no agent carries residue
// into the next game.
func (r *Runner) Play(ctx context.Context, g game.Game, agents [2]Agent, opening []string) (Result, error) {
	state := g.NewInitialState()
	d := NewDispatcher(state, agents, r.Sampler, opening)

	defer func() {
		for _, a := range agents {
			a.Reset()
		}
	}()

	log.Debug().Str("game", g.Name()).Strs("opening", opening).Msg("game started")

	if err := d.Run(ctx); err != nil {
		return Result{History: d.History}, err
	}

	result := Result{Scores: state.Scores(), History: d.History}
	log.Info().
		Floats64("returns", result.Scores).
		Str("actions", result.Trajectory()).
		Msg("game over")
	return result, nil
}

// Trajectory is the history's concatenated label string, the key under which
// distinct games are counted.
func (r Result) Trajectory() string {
	return strings.Join(r.History, " ")
}
