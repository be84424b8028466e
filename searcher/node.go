package searcher

import (
	"math"

	"arena/game"
)

// node is one position in the search tree. Decision nodes pick children by
// UCB; chance nodes pick children by sampling their outcome distribution and
// carry no policy of their own.
type node struct {
	kind    game.Kind
	seat    game.Seat
	actions []game.Action
	probs   []float64 // outcome probabilities, chance nodes only

	children []*node
	rewards  []float64 // total reward per child, from this node's seat
	visits   []float64
	total    float64
}

func newNode(state game.State) *node {
	n := &node{
		kind: game.KindDecision,
		seat: state.Seat(),
	}
	if state.Terminal() {
		return n
	}
	n.kind = state.Kind()
	if n.kind == game.KindChance {
		outcomes := state.ChanceOutcomes()
		n.actions = make([]game.Action, len(outcomes))
		n.probs = make([]float64, len(outcomes))
		for i, o := range outcomes {
			n.actions[i] = o.Action
			n.probs[i] = o.Prob
		}
	} else {
		n.actions = state.LegalActions()
	}
	n.children = make([]*node, len(n.actions))
	n.rewards = make([]float64, len(n.actions))
	n.visits = make([]float64, len(n.actions))
	return n
}

func (n *node) terminal() bool { return len(n.actions) == 0 }

// pickUCB returns the child index maximizing the UCB score, preferring any
// unvisited child.
func (n *node) pickUCB(exploration float64) int {
	for i, v := range n.visits {
		if v == 0 {
			return i
		}
	}
	best := 0
	bestScore := math.Inf(-1)
	logTotal := math.Log(n.total)
	for i := range n.actions {
		score := n.rewards[i]/n.visits[i] + exploration*math.Sqrt(logTotal/n.visits[i])
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

// mostVisited returns the index of the child with the highest visit count,
// the move the search ultimately recommends.
func (n *node) mostVisited() int {
	best := 0
	for i, v := range n.visits {
		if v > n.visits[best] {
			best = i
		}
	}
	return best
}

func (n *node) backup(idx int, scores []float64) {
	n.total++
	n.visits[idx]++
	if n.seat >= 0 {
		n.rewards[idx] += scores[n.seat]
	}
}
