// Package session runs a configured number of games and aggregates their
// outcomes. It owns the agent seats and the session random source; both are
// only touched between games, never while one is in progress.
package session

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"arena/engine"
	"arena/game"
)

// Config is the immutable session configuration, built once at startup.
type Config struct {
	// NumGames is how many games to play.
	NumGames int
	// Opening is the forced opening, applied to every game.
	Opening []string
	// RandomFirst draws a fresh random first move per game instead of a
	// fixed opening. Mutually exclusive with Opening.
	RandomFirst bool
}

// Substitution replaces a seat's agent before the given game index. It is a
// complete replacement: the previous agent is simply dropped.
type Substitution struct {
	Game  int
	Seat  game.Seat
	Agent engine.Agent
	// Name describes the incoming agent for the log.
	Name string
}

type Controller struct {
	cfg    Config
	game   game.Game
	agents [2]engine.Agent
	subs   []Substitution
	runner *engine.Runner
	rng    *rand.Rand
}

// New validates the configuration and builds a session controller. The rng
// is the single session source feeding the chance sampler and random
// openings.
func New(cfg Config, g game.Game, agents [2]engine.Agent, subs []Substitution, rng *rand.Rand) (*Controller, error) {
	if g.Seats() > 2 {
		return nil, errors.Errorf("game %s has %d seats, only two-seat games are supported", g.Name(), g.Seats())
	}
	if cfg.RandomFirst && len(cfg.Opening) > 0 {
		return nil, errors.New("a random first move and a forced opening are mutually exclusive")
	}
	for _, sub := range subs {
		if sub.Seat != 0 && sub.Seat != 1 {
			return nil, errors.Errorf("substitution targets seat %d, must be 0 or 1", sub.Seat)
		}
	}
	return &Controller{
		cfg:    cfg,
		game:   g,
		agents: agents,
		subs:   subs,
		runner: engine.NewRunner(engine.NewSampler(rng)),
		rng:    rng,
	}, nil
}

// Run plays the session. Interruption (ctx cancellation or an interactive
// agent's input ending) stops the loop at the next clean boundary and is not
// an error: the stats accumulated from completed games are returned as-is.
// Any other failure aborts the session and is returned alongside the stats
// gathered so far.
func (c *Controller) Run(ctx context.Context) (Stats, error) {
	stats := NewStats()

	for i := 0; i < c.cfg.NumGames; i++ {
		select {
		case <-ctx.Done():
			log.Info().Int("completed", stats.Completed).Msg("session interrupted, stopping early")
			return stats, nil
		default:
		}

		for _, sub := range c.subs {
			if sub.Game == i {
				c.agents[sub.Seat] = sub.Agent
				log.Info().Int("game", i).Int("seat", int(sub.Seat)).Str("agent", sub.Name).
					Msg("substituting agent")
			}
		}

		opening := c.cfg.Opening
		if c.cfg.RandomFirst {
			opening = c.randomOpening()
		}

		result, err := c.runner.Play(ctx, c.game, c.agents, opening)
		if err != nil {
			if errors.Is(err, engine.ErrInterrupted) {
				log.Info().Int("completed", stats.Completed).Msg("session interrupted, stopping early")
				return stats, nil
			}
			return stats, err
		}
		stats.Record(result)
	}
	return stats, nil
}

// randomOpening renders one uniformly random first move as a forced opening
// label. Games that open on a chance node get no forced opening.
func (c *Controller) randomOpening() []string {
	state := c.game.NewInitialState()
	if state.Terminal() || state.Kind() != game.KindDecision {
		return nil
	}
	legal := state.LegalActions()
	action := legal[c.rng.Intn(len(legal))]
	return []string{state.ActionLabel(state.Seat(), action)}
}
