// Package tictactoe implements the 3x3 game on the driver's engine contract.
// Seat 0 plays x, seat 1 plays o. Actions are cell indexes 0..8 labeled in
// algebraic form ("a1".."c3", column then row).
package tictactoe

import (
	"fmt"
	"strings"

	"arena/game"
)

func init() {
	game.Register("tictactoe", func() game.Game { return Game{} })
}

type Game struct{}

func (Game) Name() string { return "tictactoe" }
func (Game) Seats() int   { return 2 }

func (Game) NewInitialState() game.State {
	s := &State{}
	for i := range s.cells {
		s.cells[i] = empty
	}
	return s
}

const (
	empty byte = '.'
	markX byte = 'x'
	markO byte = 'o'
)

type State struct {
	cells [9]byte
	seat  game.Seat
	moves int
}

func (s *State) Seat() game.Seat { return s.seat }

func (s *State) Kind() game.Kind { return game.KindDecision }

func (s *State) LegalActions() []game.Action {
	var actions []game.Action
	for i, c := range s.cells {
		if c == empty {
			actions = append(actions, game.Action(i))
		}
	}
	return actions
}

// ActionLabel is seat-independent: a cell reads the same from either side.
func (s *State) ActionLabel(_ game.Seat, action game.Action) string {
	col := int(action) % 3
	row := int(action) / 3
	return fmt.Sprintf("%c%d", 'a'+col, row+1)
}

func (s *State) ChanceOutcomes() []game.Outcome { return nil }

func (s *State) Apply(action game.Action) {
	mark := markX
	if s.seat == 1 {
		mark = markO
	}
	s.cells[action] = mark
	s.moves++
	s.seat = 1 - s.seat
}

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func (s *State) winner() (byte, bool) {
	for _, ln := range lines {
		c := s.cells[ln[0]]
		if c != empty && c == s.cells[ln[1]] && c == s.cells[ln[2]] {
			return c, true
		}
	}
	return empty, false
}

func (s *State) Terminal() bool {
	if _, ok := s.winner(); ok {
		return true
	}
	return s.moves == len(s.cells)
}

func (s *State) Scores() []float64 {
	mark, ok := s.winner()
	switch {
	case !ok:
		return []float64{0, 0}
	case mark == markX:
		return []float64{1, -1}
	default:
		return []float64{-1, 1}
	}
}

func (s *State) Clone() game.State {
	c := *s
	return &c
}

func (s *State) String() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.Write(s.cells[row*3 : row*3+3])
		if row < 2 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
