package agent

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"arena/engine"
	"arena/searcher"
)

// Kind tags one of the built-in agent implementations.
type Kind string

const (
	// KindRandom picks uniformly among legal actions.
	KindRandom Kind = "random"
	// KindHuman prompts for action labels on an input stream.
	KindHuman Kind = "human"
	// KindMCTS searches with random-rollout evaluation.
	KindMCTS Kind = "mcts"
	// KindPolicy searches guided by a policy file (a trained evaluation
	// model exported as position scores).
	KindPolicy Kind = "policy"
	// KindProcess delegates to an external binary speaking the line
	// protocol described on Process.
	KindProcess Kind = "process"
)

// KnownKinds lists the selectable agent kinds.
var KnownKinds = []Kind{KindRandom, KindHuman, KindMCTS, KindPolicy, KindProcess}

// Options carries every construction parameter an agent kind may need.
// Irrelevant fields are ignored by the other kinds.
type Options struct {
	// RNG is the session's random source, shared by all randomized agents
	// so a session seed reproduces the whole run.
	RNG *rand.Rand

	// Search parameters (mcts, policy).
	Exploration float64
	Simulations int
	Rollouts    int
	Cutoff      int

	// PolicyPath locates the evaluation model file (policy).
	PolicyPath string

	// ProcessPath locates the external binary, ProcessCmds its priming
	// commands (process).
	ProcessPath string
	ProcessCmds []string

	// Interactive streams (human).
	Input  io.Reader
	Output io.Writer
}

// Build constructs an agent of the given kind. An unknown kind or a kind
// missing its required parameters is a configuration error.
func Build(kind Kind, opts Options) (engine.Agent, error) {
	switch kind {
	case KindRandom:
		return NewRandom(opts.RNG), nil

	case KindHuman:
		return NewHuman(opts.Input, opts.Output), nil

	case KindMCTS:
		return searcher.NewUCT(
			searcher.WithRand(opts.RNG),
			searcher.WithExploration(opts.Exploration),
			searcher.WithEpisodes(opts.Simulations),
			searcher.WithEvaluator(searcher.Rollout(opts.Rollouts, opts.Cutoff)),
		), nil

	case KindPolicy:
		if opts.PolicyPath == "" {
			return nil, errors.New("policy agent needs a policy file path")
		}
		evaluate, err := searcher.LoadPolicy(opts.PolicyPath)
		if err != nil {
			return nil, err
		}
		return searcher.NewUCT(
			searcher.WithRand(opts.RNG),
			searcher.WithExploration(opts.Exploration),
			searcher.WithEpisodes(opts.Simulations),
			searcher.WithEvaluator(evaluate),
		), nil

	case KindProcess:
		if opts.ProcessPath == "" {
			return nil, errors.New("process agent needs a binary path")
		}
		return NewProcess(opts.ProcessPath, opts.ProcessCmds)

	default:
		return nil, errors.Errorf("unknown agent kind %q (known: %v)", kind, KnownKinds)
	}
}
