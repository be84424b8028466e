package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// options is the full command surface. Environment variables provide the
// defaults; flags override them.
type options struct {
	Game        string `env:"ARENA_GAME" envDefault:"tictactoe"`
	Player1     string `env:"ARENA_PLAYER1" envDefault:"mcts"`
	Player2     string `env:"ARENA_PLAYER2" envDefault:"random"`
	NumGames    int    `env:"ARENA_NUM_GAMES" envDefault:"10"`
	Seed        uint64 `env:"ARENA_SEED"`
	RandomFirst bool   `env:"ARENA_RANDOM_FIRST"`
	Quiet       bool   `env:"ARENA_QUIET"`
	Verbose     bool   `env:"ARENA_VERBOSE"`

	Exploration float64  `env:"ARENA_UCT_C" envDefault:"1.4"`
	Simulations int      `env:"ARENA_MAX_SIMULATIONS" envDefault:"300"`
	Rollouts    int      `env:"ARENA_ROLLOUT_COUNT" envDefault:"1"`
	Cutoff      int      `env:"ARENA_ROLLOUT_CUTOFF"`
	PolicyPath  string   `env:"ARENA_POLICY_PATH"`
	ProcessPath string   `env:"ARENA_PROCESS_PATH"`
	ProcessCmds []string `env:"ARENA_PROCESS_CMD"`

	HumanFrom int    `env:"ARENA_HUMAN_FROM" envDefault:"-1"`
	Schedule  string `env:"ARENA_SCHEDULE"`
}

func registerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("game", "tictactoe", "Name of the game")
	f.String("player1", "mcts", "Who controls seat 0")
	f.String("player2", "random", "Who controls seat 1")
	f.Int("num-games", 10, "How many games to play")
	f.Uint64("seed", 0, "Seed for the random number generator (0 seeds from the clock)")
	f.Bool("random-first", false, "Play the first move of each game at random")
	f.BoolP("quiet", "q", false, "Don't show per-game results")
	f.BoolP("verbose", "v", false, "Show every move as it is played")

	f.Float64("uct-c", 1.4, "UCT exploration constant")
	f.Int("max-simulations", 300, "How many search episodes per decision")
	f.Int("rollout-count", 1, "How many rollouts per search leaf")
	f.Int("rollout-cutoff", 0, "Rollout depth limit, 0 for none")
	f.String("policy", "", "Path to a policy file, needed by a policy player")
	f.String("process", "", "Where to find a binary for a process player")
	f.StringArray("process-cmd", nil, "Priming command for the process player (repeatable)")

	f.Int("human-from", -1, "Swap seat 1 to a human starting at this game index (-1 disables)")
	f.String("schedule", "", "Path to a YAML agent substitution schedule")
}

// loadOptions parses the environment and applies every flag the user set on
// top of it.
func loadOptions(cmd *cobra.Command) (options, error) {
	var opts options
	if err := env.Parse(&opts); err != nil {
		return opts, errors.Wrap(err, "reading environment")
	}

	f := cmd.Flags()
	if f.Changed("game") {
		opts.Game, _ = f.GetString("game")
	}
	if f.Changed("player1") {
		opts.Player1, _ = f.GetString("player1")
	}
	if f.Changed("player2") {
		opts.Player2, _ = f.GetString("player2")
	}
	if f.Changed("num-games") {
		opts.NumGames, _ = f.GetInt("num-games")
	}
	if f.Changed("seed") {
		opts.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("random-first") {
		opts.RandomFirst, _ = f.GetBool("random-first")
	}
	if f.Changed("quiet") {
		opts.Quiet, _ = f.GetBool("quiet")
	}
	if f.Changed("verbose") {
		opts.Verbose, _ = f.GetBool("verbose")
	}
	if f.Changed("uct-c") {
		opts.Exploration, _ = f.GetFloat64("uct-c")
	}
	if f.Changed("max-simulations") {
		opts.Simulations, _ = f.GetInt("max-simulations")
	}
	if f.Changed("rollout-count") {
		opts.Rollouts, _ = f.GetInt("rollout-count")
	}
	if f.Changed("rollout-cutoff") {
		opts.Cutoff, _ = f.GetInt("rollout-cutoff")
	}
	if f.Changed("policy") {
		opts.PolicyPath, _ = f.GetString("policy")
	}
	if f.Changed("process") {
		opts.ProcessPath, _ = f.GetString("process")
	}
	if f.Changed("process-cmd") {
		opts.ProcessCmds, _ = f.GetStringArray("process-cmd")
	}
	if f.Changed("human-from") {
		opts.HumanFrom, _ = f.GetInt("human-from")
	}
	if f.Changed("schedule") {
		opts.Schedule, _ = f.GetString("schedule")
	}
	return opts, nil
}
