package agent

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"arena/engine"
	"arena/game"
)

// Process delegates decisions to an external binary over a line-based
// stdin/stdout protocol. One command per line; the reply is a single line,
// "= <payload>" on success or "? <message>" on rejection.
//
// Commands sent: optional priming commands at startup, "genmove <seat>" when
// deciding (the reply payload is an action label for the current position),
// "play <seat> <action>" for every action the process did not choose (the
// numeric action id, since labels are not renderable after application), and
// "clear" between games.
type Process struct {
	path  string
	cmd   *exec.Cmd
	stdin io.WriteCloser
	out   *bufio.Scanner
}

func NewProcess(path string, prime []string) (*Process, error) {
	cmd := exec.Command(path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrapf(err, "starting agent process %s", path)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrapf(err, "starting agent process %s", path)
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "starting agent process %s", path)
	}

	p := &Process{
		path:  path,
		cmd:   cmd,
		stdin: stdin,
		out:   bufio.NewScanner(stdout),
	}
	for _, c := range prime {
		if _, err := p.exchange(c); err != nil {
			p.Close()
			return nil, errors.Wrapf(err, "priming agent process %s", path)
		}
	}
	return p, nil
}

func (p *Process) exchange(command string) (string, error) {
	if _, err := fmt.Fprintln(p.stdin, command); err != nil {
		return "", errors.Wrapf(err, "writing %q to %s", command, p.path)
	}
	if !p.out.Scan() {
		if err := p.out.Err(); err != nil {
			return "", errors.Wrapf(err, "reading reply from %s", p.path)
		}
		return "", errors.Errorf("%s closed its output", p.path)
	}
	reply := strings.TrimSpace(p.out.Text())
	if strings.HasPrefix(reply, "?") {
		return "", errors.Errorf("%s rejected %q: %s", p.path, command, reply)
	}
	return strings.TrimSpace(strings.TrimPrefix(reply, "=")), nil
}

func (p *Process) Decide(state game.State) (game.Action, error) {
	seat := state.Seat()
	label, err := p.exchange(fmt.Sprintf("genmove %d", seat))
	if err != nil {
		return 0, err
	}
	action, ok := engine.ResolveAction(state, seat, label)
	if !ok {
		return 0, errors.Errorf("%s suggested %q, not a legal move", p.path, label)
	}
	return action, nil
}

func (p *Process) Observe(_ game.State, seat game.Seat, action game.Action) {
	if _, err := p.exchange(fmt.Sprintf("play %d %d", seat, action)); err != nil {
		log.Warn().Err(err).Str("process", p.path).Msg("agent process ignored a played action")
	}
}

func (p *Process) Reset() {
	if _, err := p.exchange("clear"); err != nil {
		log.Warn().Err(err).Str("process", p.path).Msg("agent process failed to clear")
	}
}

// Close terminates the external process. The session owner calls it once the
// agent is no longer needed.
func (p *Process) Close() error {
	p.stdin.Close()
	return p.cmd.Wait()
}
