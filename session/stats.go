package session

import "arena/engine"

// Stats accumulates session outcomes. It is only mutated between games; once
// Run returns it is final.
type Stats struct {
	// Completed counts fully played games. An interrupted game is not
	// counted.
	Completed int
	// Trajectories maps each distinct move-label history to how often it
	// occurred.
	Trajectories map[string]int
	// Wins counts, per seat, the games ending with a strictly positive
	// score for that seat.
	Wins [2]int
	// Returns sums the final scores per seat.
	Returns [2]float64
}

func NewStats() Stats {
	return Stats{Trajectories: make(map[string]int)}
}

// Record folds one completed game into the stats.
func (s *Stats) Record(result engine.Result) {
	s.Completed++
	s.Trajectories[result.Trajectory()]++
	for seat, score := range result.Scores {
		s.Returns[seat] += score
		if score > 0 {
			s.Wins[seat]++
		}
	}
}

// Distinct is the number of distinct trajectories seen.
func (s Stats) Distinct() int {
	return len(s.Trajectories)
}
