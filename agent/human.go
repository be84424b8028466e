package agent

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"arena/engine"
	"arena/game"
)

// Human reads action labels from an input stream. A label that does not
// resolve to a legal action is re-prompted, not fatal; end of input is
// reported as engine.ErrInputClosed so the session can stop cleanly.
type Human struct {
	in     *bufio.Reader
	out    io.Writer
	prompt bool
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	prompt := false
	if f, ok := in.(*os.File); ok {
		prompt = term.IsTerminal(int(f.Fd()))
	}
	return &Human{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: prompt,
	}
}

func (a *Human) Decide(state game.State) (game.Action, error) {
	seat := state.Seat()
	fmt.Fprintf(a.out, "%s\n", state)
	fmt.Fprintf(a.out, "Legal moves: %s\n", strings.Join(engine.LegalLabels(state, seat), " "))

	for {
		if a.prompt {
			fmt.Fprintf(a.out, "seat %d> ", seat)
		}
		line, err := a.in.ReadString('\n')
		label := strings.TrimSpace(line)
		if label != "" {
			if action, ok := engine.ResolveAction(state, seat, label); ok {
				return action, nil
			}
			fmt.Fprintf(a.out, "Invalid move %q, try again\n", label)
		}
		if err != nil {
			return 0, errors.Wrap(engine.ErrInputClosed, err.Error())
		}
	}
}

func (a *Human) Observe(game.State, game.Seat, game.Action) {}

func (a *Human) Reset() {}
