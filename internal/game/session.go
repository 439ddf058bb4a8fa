package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Phase is the coarse session state gating which handlers are active.
type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseResults:
		return "results"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Session tracks one run of a game: item progression, the answer log and
// the score. Challenge data (options, slots, cards) is owned by the
// per-game packages; the session only counts items and records outcomes.
//
// Invariant: when Phase reaches PhaseResults, len(Records) == Items —
// every item was answered, skipped or explicitly marked.
type Session struct {
	ID       string
	Game     Type
	Settings Settings

	Phase   Phase
	Items   int
	Index   int
	Records []Record
	Score   Score

	reported bool
}

// NewSession creates a playing session over itemCount built items.
// Returns ErrInsufficientPool when no items could be built.
func NewSession(game Type, settings Settings, itemCount int) (*Session, error) {
	if itemCount <= 0 {
		return nil, ErrInsufficientPool
	}
	return &Session{
		ID:       uuid.NewString(),
		Game:     game,
		Settings: settings,
		Phase:    PhasePlaying,
		Items:    itemCount,
		Records:  make([]Record, 0, itemCount),
	}, nil
}

// RecordOutcome appends exactly one record for the current item, updates
// the score and advances. Consuming the last item transitions the
// session to PhaseResults.
func (s *Session) RecordOutcome(wordID string, o Outcome) error {
	if s.Phase != PhasePlaying {
		return fmt.Errorf("record outcome in %s phase", s.Phase)
	}
	s.Records = append(s.Records, Record{WordID: wordID, Outcome: o})
	s.Score.Record(o)
	s.Index++
	if s.Index >= s.Items {
		s.Phase = PhaseResults
	}
	return nil
}

// RecordAnswer is RecordOutcome for the common correct/wrong games.
func (s *Session) RecordAnswer(wordID string, correct bool) error {
	o := OutcomeWrong
	if correct {
		o = OutcomeCorrect
	}
	return s.RecordOutcome(wordID, o)
}

// Done reports whether the session reached the results phase.
func (s *Session) Done() bool {
	return s.Phase == PhaseResults
}

// WrongWordIDs returns, in first-seen order, the IDs whose last recorded
// outcome was wrong. This is the retry-wrong-only working set.
func (s *Session) WrongWordIDs() []string {
	last := make(map[string]Outcome, len(s.Records))
	var order []string
	for _, r := range s.Records {
		if _, seen := last[r.WordID]; !seen {
			order = append(order, r.WordID)
		}
		last[r.WordID] = r.Outcome
	}
	var wrong []string
	for _, id := range order {
		if last[id] == OutcomeWrong {
			wrong = append(wrong, id)
		}
	}
	return wrong
}

// TakeReport returns the record sequence for stats submission. The
// second return is true only on the first call, so a finished session is
// reported exactly once.
func (s *Session) TakeReport() ([]Record, bool) {
	if s.Phase != PhaseResults || s.reported {
		return nil, false
	}
	s.reported = true
	return s.Records, true
}
