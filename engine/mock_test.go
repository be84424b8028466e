package engine

import (
	"fmt"

	"arena/game"
)

// toyState is a deterministic two-ply game: seat 0 then seat 1 pick one of
// three actions labeled "A", "B", "C", then the game ends 1:-1.
type toyState struct {
	applied []game.Action
}

func (s *toyState) Seat() game.Seat                { return game.Seat(len(s.applied) % 2) }
func (s *toyState) Kind() game.Kind                { return game.KindDecision }
func (s *toyState) LegalActions() []game.Action    { return []game.Action{0, 1, 2} }
func (s *toyState) ChanceOutcomes() []game.Outcome { return nil }
func (s *toyState) Apply(a game.Action)            { s.applied = append(s.applied, a) }
func (s *toyState) Terminal() bool                 { return len(s.applied) == 2 }
func (s *toyState) Scores() []float64              { return []float64{1, -1} }
func (s *toyState) String() string                 { return fmt.Sprintf("toy%v", s.applied) }
func (s *toyState) pliesApplied() int              { return len(s.applied) }

func (s *toyState) ActionLabel(_ game.Seat, a game.Action) string {
	return string(rune('A' + a))
}

type toyGame struct{}

func (toyGame) Name() string                { return "toy" }
func (toyGame) Seats() int                  { return 2 }
func (toyGame) NewInitialState() game.State { return &toyState{} }

// chanceState is a single-ply game resolved entirely by one chance draw.
type chanceState struct {
	outcomes []game.Outcome
	applied  []game.Action
}

func (s *chanceState) Seat() game.Seat { return game.ChanceSeat }
func (s *chanceState) Kind() game.Kind { return game.KindChance }

func (s *chanceState) LegalActions() []game.Action {
	actions := make([]game.Action, len(s.outcomes))
	for i, o := range s.outcomes {
		actions[i] = o.Action
	}
	return actions
}

func (s *chanceState) ChanceOutcomes() []game.Outcome { return s.outcomes }
func (s *chanceState) Apply(a game.Action)            { s.applied = append(s.applied, a) }
func (s *chanceState) Terminal() bool                 { return len(s.applied) == 1 }
func (s *chanceState) Scores() []float64              { return []float64{0, 0} }
func (s *chanceState) String() string                 { return fmt.Sprintf("chance%v", s.applied) }
func (s *chanceState) pliesApplied() int              { return len(s.applied) }

func (s *chanceState) ActionLabel(_ game.Seat, a game.Action) string {
	return fmt.Sprintf("c%d", a)
}

// simultaneousState classifies its only node as simultaneous.
type simultaneousState struct {
	toyState
}

func (s *simultaneousState) Kind() game.Kind { return game.KindSimultaneous }

// observation records one Observe call as the scripted agent saw it.
type observation struct {
	seat   game.Seat
	action game.Action
	// plies is the state's applied count at observation time, to check
	// that Observe sees the post-apply state.
	plies int
}

type plyCounter interface {
	pliesApplied() int
}

// scripted is a controllable test agent. It plays its scripted actions in
// order, falling back to the first legal action, and records everything the
// dispatcher tells it.
type scripted struct {
	actions  []game.Action
	err      error
	decides  int
	observed []observation
	resets   int
}

func (a *scripted) Decide(state game.State) (game.Action, error) {
	if a.err != nil {
		return 0, a.err
	}
	a.decides++
	if len(a.actions) > 0 {
		next := a.actions[0]
		a.actions = a.actions[1:]
		return next, nil
	}
	return state.LegalActions()[0], nil
}

func (a *scripted) Observe(state game.State, seat game.Seat, action game.Action) {
	a.observed = append(a.observed, observation{
		seat:   seat,
		action: action,
		plies:  state.(plyCounter).pliesApplied(),
	})
}

func (a *scripted) Reset() { a.resets++ }
