package game

// Seat identifies one of the decision-making positions in a game. Chance
// events act seatless and report ChanceSeat as their acting seat.
type Seat int

const ChanceSeat Seat = -1

// Action is an opaque identifier, meaningful only together with the state it
// was enumerated from.
type Action int

// Kind classifies the pending decision at a non-terminal state.
type Kind int

const (
	// KindDecision means a specific seat must pick an action.
	KindDecision Kind = iota
	// KindChance means the next action is drawn from a distribution.
	KindChance
	// KindSimultaneous means all seats act at once. The driver does not
	// support such games and fails fast when it sees one.
	KindSimultaneous
)

// Outcome is one branch of a discrete chance distribution.
type Outcome struct {
	Action Action
	Prob   float64
}

// State is the mutable position of a game in progress. Apply advances it in
// place; the driver never copies or rolls back a State.
type State interface {
	// Seat returns the acting seat, or ChanceSeat at a chance node.
	Seat() Seat
	// Kind classifies the pending decision. Undefined once Terminal.
	Kind() Kind
	// LegalActions enumerates the actions applicable right now.
	LegalActions() []Action
	// ActionLabel renders an action from a seat's perspective. For a legal
	// action the label is unique within the current state.
	ActionLabel(seat Seat, action Action) string
	// ChanceOutcomes returns the distribution at a chance node. The
	// probabilities are non-negative and sum to one.
	ChanceOutcomes() []Outcome
	// Apply advances the state by one action. It cannot partially fail.
	Apply(action Action)
	// Terminal reports whether the game is over.
	Terminal() bool
	// Scores returns the final per-seat scores once Terminal.
	Scores() []float64
	// String renders the position for display.
	String() string
}

// Cloner is implemented by states that can be copied. Search agents require
// it; the driver itself never clones.
type Cloner interface {
	Clone() State
}

// Game builds initial states for one set of rules.
type Game interface {
	Name() string
	// Seats returns the number of decision-making positions.
	Seats() int
	NewInitialState() State
}
