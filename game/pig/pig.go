// Package pig implements the dice game Pig for two seats. A seat repeatedly
// chooses to roll or hold; each roll is a chance node over the six die faces.
// Rolling a 1 forfeits the turn total, holding banks it. First seat to reach
// the target score wins.
package pig

import (
	"fmt"

	"arena/game"
)

const (
	target = 20
	faces  = 6
)

func init() {
	game.Register("pig", func() game.Game { return Game{} })
}

type Game struct{}

func (Game) Name() string { return "pig" }
func (Game) Seats() int   { return 2 }

func (Game) NewInitialState() game.State {
	return &State{}
}

// Decision actions.
const (
	actRoll game.Action = 0
	actHold game.Action = 1
)

// Chance actions are the die faces themselves. Decision and chance actions
// never share a state, so their numeric ranges may overlap.
func faceAction(face int) game.Action { return game.Action(face) }

type State struct {
	banked    [2]int
	turnTotal int
	seat      game.Seat
	rolling   bool // a roll was chosen, die outcome pending
	won       game.Seat
	over      bool
}

func (s *State) Seat() game.Seat {
	if s.rolling {
		return game.ChanceSeat
	}
	return s.seat
}

func (s *State) Kind() game.Kind {
	if s.rolling {
		return game.KindChance
	}
	return game.KindDecision
}

func (s *State) LegalActions() []game.Action {
	if s.rolling {
		actions := make([]game.Action, faces)
		for i := range actions {
			actions[i] = faceAction(i + 1)
		}
		return actions
	}
	return []game.Action{actRoll, actHold}
}

func (s *State) ActionLabel(_ game.Seat, action game.Action) string {
	if s.rolling {
		return fmt.Sprintf("%d", int(action))
	}
	if action == actRoll {
		return "roll"
	}
	return "hold"
}

func (s *State) ChanceOutcomes() []game.Outcome {
	outcomes := make([]game.Outcome, faces)
	for i := range outcomes {
		outcomes[i] = game.Outcome{Action: faceAction(i + 1), Prob: 1.0 / faces}
	}
	return outcomes
}

func (s *State) Apply(action game.Action) {
	if s.rolling {
		s.rolling = false
		face := int(action)
		if face == 1 {
			s.turnTotal = 0
			s.seat = 1 - s.seat
			return
		}
		s.turnTotal += face
		return
	}
	switch action {
	case actRoll:
		s.rolling = true
	case actHold:
		s.banked[s.seat] += s.turnTotal
		s.turnTotal = 0
		if s.banked[s.seat] >= target {
			s.won = s.seat
			s.over = true
			return
		}
		s.seat = 1 - s.seat
	}
}

func (s *State) Terminal() bool { return s.over }

func (s *State) Scores() []float64 {
	scores := []float64{-1, -1}
	scores[s.won] = 1
	return scores
}

func (s *State) Clone() game.State {
	c := *s
	return &c
}

func (s *State) String() string {
	if s.over {
		return fmt.Sprintf("banked %d:%d, seat %d wins", s.banked[0], s.banked[1], s.won)
	}
	node := fmt.Sprintf("seat %d to act", s.seat)
	if s.rolling {
		node = fmt.Sprintf("seat %d rolling", s.seat)
	}
	return fmt.Sprintf("banked %d:%d, turn total %d, %s", s.banked[0], s.banked[1], s.turnTotal, node)
}
