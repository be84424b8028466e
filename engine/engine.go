// Package engine drives one game of a two-seat turn-based game: it classifies
// each pending decision, routes it to the right collaborator, applies the
// chosen action and fans the outcome out to the non-acting agents.
package engine

import (
	"arena/game"
)

// Agent is one decision-making collaborator. Decide is only called when the
// agent's seat is the acting seat; Observe is called for every action the
// agent did not choose itself, after the action has been applied. Reset is
// called once a game concludes so no agent-internal memory leaks into the
// next game.
type Agent interface {
	Decide(state game.State) (game.Action, error)
	Observe(state game.State, seat game.Seat, action game.Action)
	Reset()
}

// Result is the immutable record of one completed game.
type Result struct {
	// Scores holds the final score per seat, ordered by seat.
	Scores []float64
	// History holds the applied action labels in order.
	History []string
}
