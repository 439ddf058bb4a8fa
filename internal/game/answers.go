package game

// Outcome is the per-item result. Most games only produce correct or
// wrong; flashcards add skipped via the explicit skip control.
type Outcome int

const (
	OutcomeWrong Outcome = iota
	OutcomeCorrect
	OutcomeSkipped
)

// Record is one answered session item. The ordered record sequence is
// the ground truth for the results view and the stats batch.
type Record struct {
	WordID  string
	Outcome Outcome
}

// Correct reports whether the record counts as a correct answer.
func (r Record) Correct() bool {
	return r.Outcome == OutcomeCorrect
}

// Score tracks the running correct count and answer streak.
type Score struct {
	Correct    int
	Streak     int
	BestStreak int
}

// Record folds one outcome into the score. A wrong answer resets the
// streak; skipped leaves it untouched.
func (s *Score) Record(o Outcome) {
	switch o {
	case OutcomeCorrect:
		s.Correct++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
	case OutcomeWrong:
		s.Streak = 0
	}
}
