package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"arena/agent"
	"arena/engine"
	"arena/game"
	"arena/session"

	_ "arena/game/pig"
	_ "arena/game/tictactoe"
)

var rootCmd = &cobra.Command{
	Use:   "arena [opening labels...]",
	Short: "Play sessions of two-player games between pluggable agents",
	Long: `Arena plays a configured number of games between two agents (random, human,
mcts, policy or process), tracking wins, returns and distinct games. Positional
arguments are action labels forced as the opening of every game.`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runSession,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	registerFlags(rootCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	setupLogging(cmd.ErrOrStderr(), opts)

	g, err := game.Load(opts.Game)
	if err != nil {
		return err
	}

	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	log.Debug().Uint64("seed", opts.Seed).Str("game", g.Name()).Msg("session starting")

	agentOpts := agent.Options{
		RNG:         rng,
		Exploration: opts.Exploration,
		Simulations: opts.Simulations,
		Rollouts:    opts.Rollouts,
		Cutoff:      opts.Cutoff,
		PolicyPath:  opts.PolicyPath,
		ProcessPath: opts.ProcessPath,
		ProcessCmds: opts.ProcessCmds,
		Input:       cmd.InOrStdin(),
		Output:      cmd.OutOrStdout(),
	}

	var built []engine.Agent
	defer func() {
		for _, a := range built {
			if closer, ok := a.(io.Closer); ok {
				closer.Close()
			}
		}
	}()

	var seats [2]engine.Agent
	for i, kind := range []string{opts.Player1, opts.Player2} {
		a, err := agent.Build(agent.Kind(kind), agentOpts)
		if err != nil {
			return err
		}
		built = append(built, a)
		seats[i] = a
	}

	subs, subAgents, err := buildSchedule(opts, agentOpts)
	built = append(built, subAgents...)
	if err != nil {
		return err
	}

	cfg := session.Config{
		NumGames:    opts.NumGames,
		Opening:     args,
		RandomFirst: opts.RandomFirst,
	}
	ctrl, err := session.New(cfg, g, seats, subs, rng)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	stats, err := ctrl.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Games played: %d\n", stats.Completed)
	fmt.Fprintf(out, "Distinct games: %d\n", stats.Distinct())
	fmt.Fprintf(out, "Players: %s %s\n", opts.Player1, opts.Player2)
	fmt.Fprintf(out, "Wins: %v\n", stats.Wins)
	fmt.Fprintf(out, "Returns: %v\n", stats.Returns)
	return nil
}

// buildSchedule turns the schedule file and the --human-from shortcut into
// substitutions with fully constructed agents.
func buildSchedule(opts options, agentOpts agent.Options) ([]session.Substitution, []engine.Agent, error) {
	var subs []session.Substitution
	var built []engine.Agent

	if opts.Schedule != "" {
		entries, err := session.LoadSchedule(opts.Schedule)
		if err != nil {
			return nil, built, err
		}
		for _, e := range entries {
			a, err := agent.Build(agent.Kind(e.Agent), agentOpts)
			if err != nil {
				return nil, built, err
			}
			built = append(built, a)
			subs = append(subs, session.Substitution{
				Game:  e.Game,
				Seat:  game.Seat(e.Seat),
				Agent: a,
				Name:  e.Agent,
			})
		}
	}

	if opts.HumanFrom >= 0 {
		a, err := agent.Build(agent.KindHuman, agentOpts)
		if err != nil {
			return nil, built, err
		}
		built = append(built, a)
		subs = append(subs, session.Substitution{
			Game:  opts.HumanFrom,
			Seat:  1,
			Agent: a,
			Name:  string(agent.KindHuman),
		})
	}
	return subs, built, nil
}

func setupLogging(errOut io.Writer, opts options) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: errOut})
	switch {
	case opts.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case opts.Quiet:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
