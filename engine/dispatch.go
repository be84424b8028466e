package engine

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"arena/game"
)

// Dispatcher runs the per-ply state machine over one game state. It holds no
// state across plies beyond the state and history references.
type Dispatcher struct {
	State   game.State
	Agents  [2]Agent
	Sampler *Sampler

	// History accumulates the applied action labels, one per ply.
	History []string

	// opening holds forced labels still to be replayed at decision nodes.
	opening []string
}

func NewDispatcher(state game.State, agents [2]Agent, sampler *Sampler, opening []string) *Dispatcher {
	return &Dispatcher{
		State:   state,
		Agents:  agents,
		Sampler: sampler,
		opening: opening,
	}
}

// Run loops Step until the state is terminal.
func (d *Dispatcher) Run(ctx context.Context) error {
	for !d.State.Terminal() {
		if err := d.Step(ctx); err != nil {
			return err
		}
	}
	if len(d.opening) > 0 {
		return errors.Wrapf(ErrBadOpening, "game ended with %d opening labels unplayed", len(d.opening))
	}
	return nil
}

// Step performs one ply: classify the pending decision, obtain an action,
// apply it, notify the non-acting agents and record the label. Interruption
// is honored only here, at the ply boundary, never mid-decision.
func (d *Dispatcher) Step(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return errors.Wrap(ErrInterrupted, ctx.Err().Error())
	default:
	}

	seat := d.State.Seat()
	var action game.Action

	switch d.State.Kind() {
	case game.KindSimultaneous:
		return ErrSimultaneous

	case game.KindChance:
		drawn, err := d.Sampler.Sample(d.State.ChanceOutcomes())
		if err != nil {
			return errors.Wrap(err, "resolving chance node")
		}
		action = drawn

	default:
		obtained, err := d.nextAction(seat)
		if err != nil {
			return err
		}
		action = obtained
	}

	label := d.State.ActionLabel(seat, action)
	d.State.Apply(action)

	for s := range d.Agents {
		if game.Seat(s) != seat {
			d.Agents[s].Observe(d.State, seat, action)
		}
	}
	d.History = append(d.History, label)

	log.Debug().
		Int("ply", len(d.History)).
		Int("seat", int(seat)).
		Str("action", label).
		Msg(d.State.String())
	return nil
}

// nextAction obtains the action for a decision node: a forced opening label
// when one is pending, the seat's agent otherwise.
func (d *Dispatcher) nextAction(seat game.Seat) (game.Action, error) {
	if len(d.opening) > 0 {
		label := d.opening[0]
		action, ok := ResolveAction(d.State, seat, label)
		if !ok {
			return 0, errors.Wrapf(ErrBadOpening, "label %q, legal %v", label, LegalLabels(d.State, seat))
		}
		d.opening = d.opening[1:]
		return action, nil
	}

	action, err := d.Agents[seat].Decide(d.State)
	if err != nil {
		if errors.Is(err, ErrInputClosed) {
			return 0, errors.Wrap(ErrInterrupted, err.Error())
		}
		return 0, errors.Wrapf(err, "agent for seat %d", seat)
	}
	if !legal(d.State, action) {
		return 0, errors.Errorf("agent for seat %d chose illegal action %d", seat, action)
	}
	return action, nil
}

func legal(state game.State, action game.Action) bool {
	for _, a := range state.LegalActions() {
		if a == action {
			return true
		}
	}
	return false
}
