package engine

import "github.com/pkg/errors"

var (
	// ErrSimultaneous is returned when a game presents a simultaneous
	// decision node. The driver cannot resolve those and never guesses.
	ErrSimultaneous = errors.New("simultaneous decision nodes are not supported")

	// ErrBadOpening is returned when a forced opening label does not
	// resolve to a legal action. Forced openings are a configuration
	// contract, so this aborts the whole session.
	ErrBadOpening = errors.New("forced opening label does not match a legal action")

	// ErrInputClosed is returned by an interactive agent whose input
	// stream ended. It is folded into ErrInterrupted by the dispatcher.
	ErrInputClosed = errors.New("interactive input closed")

	// ErrInterrupted signals a user-initiated stop at a ply boundary. It
	// is not a failure: completed results remain valid.
	ErrInterrupted = errors.New("session interrupted")
)
