package engine

import "arena/game"

// ResolveAction finds the legal action whose label, rendered from seat's
// perspective, exactly matches label. The second return is false when no
// legal action matches; the caller decides how severe that is. Labels are
// unique among legal actions, so the first match is the only match.
func ResolveAction(state game.State, seat game.Seat, label string) (game.Action, bool) {
	for _, action := range state.LegalActions() {
		if state.ActionLabel(seat, action) == label {
			return action, true
		}
	}
	return 0, false
}

// LegalLabels renders every legal action's label from seat's perspective, in
// enumeration order. Used for prompting and display.
func LegalLabels(state game.State, seat game.Seat) []string {
	actions := state.LegalActions()
	labels := make([]string, len(actions))
	for i, action := range actions {
		labels[i] = state.ActionLabel(seat, action)
	}
	return labels
}
