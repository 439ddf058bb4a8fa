package game

import (
	"testing"

	"github.com/abhisek/wordgym/internal/words"
)

func TestNewSessionEmptyPool(t *testing.T) {
	if _, err := NewSession(TypeChoice, DefaultSettings(TypeChoice), 0); err != ErrInsufficientPool {
		t.Fatalf("err = %v, want ErrInsufficientPool", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	sess, err := NewSession(TypeChoice, DefaultSettings(TypeChoice), 3)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want playing", sess.Phase)
	}
	if sess.ID == "" {
		t.Fatal("session has no id")
	}

	ids := []string{"a", "b", "c"}
	outcomes := []bool{true, false, true}
	for i, id := range ids {
		if sess.Done() {
			t.Fatalf("done after %d of 3 items", i)
		}
		if err := sess.RecordAnswer(id, outcomes[i]); err != nil {
			t.Fatal(err)
		}
	}

	if !sess.Done() {
		t.Fatal("not done after last item")
	}
	if len(sess.Records) != sess.Items {
		t.Fatalf("records = %d, items = %d", len(sess.Records), sess.Items)
	}
	if sess.Score.Correct != 2 {
		t.Fatalf("correct = %d, want 2", sess.Score.Correct)
	}

	// Recording past the end must fail, keeping records == items.
	if err := sess.RecordAnswer("d", true); err == nil {
		t.Fatal("record accepted in results phase")
	}
	if len(sess.Records) != sess.Items {
		t.Fatalf("records grew past items: %d", len(sess.Records))
	}
}

func TestScoreStreak(t *testing.T) {
	var s Score
	seq := []Outcome{OutcomeCorrect, OutcomeCorrect, OutcomeSkipped, OutcomeCorrect, OutcomeWrong, OutcomeCorrect}
	for _, o := range seq {
		s.Record(o)
	}
	if s.Correct != 4 {
		t.Fatalf("correct = %d, want 4", s.Correct)
	}
	// Skip is neutral: the streak runs through it.
	if s.BestStreak != 3 {
		t.Fatalf("best streak = %d, want 3", s.BestStreak)
	}
	if s.Streak != 1 {
		t.Fatalf("streak = %d, want 1", s.Streak)
	}
}

func TestWrongWordIDs(t *testing.T) {
	sess, err := NewSession(TypePairs, DefaultSettings(TypePairs), 4)
	if err != nil {
		t.Fatal(err)
	}
	sess.RecordAnswer("a", false)
	sess.RecordAnswer("b", true)
	sess.RecordOutcome("c", OutcomeSkipped)
	sess.RecordAnswer("d", false)

	got := sess.WrongWordIDs()
	if len(got) != 2 || got[0] != "a" || got[1] != "d" {
		t.Fatalf("wrong ids = %v, want [a d]", got)
	}
}

func TestWrongWordIDsLastOutcomeWins(t *testing.T) {
	sess, err := NewSession(TypeChoice, DefaultSettings(TypeChoice), 3)
	if err != nil {
		t.Fatal(err)
	}
	sess.RecordAnswer("a", false)
	sess.RecordAnswer("a", true)
	sess.RecordAnswer("b", false)

	got := sess.WrongWordIDs()
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("wrong ids = %v, want [b]", got)
	}
}

func TestTakeReportOnce(t *testing.T) {
	sess, err := NewSession(TypeChoice, DefaultSettings(TypeChoice), 1)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := sess.TakeReport(); ok {
		t.Fatal("report taken before results phase")
	}

	sess.RecordAnswer("a", true)

	records, ok := sess.TakeReport()
	if !ok || len(records) != 1 {
		t.Fatalf("first take: ok=%v records=%v", ok, records)
	}
	if _, ok := sess.TakeReport(); ok {
		t.Fatal("report taken twice")
	}
}

func TestDefaultSettings(t *testing.T) {
	for _, tt := range []struct {
		game     Type
		fallback int
	}{
		{TypeChoice, DefaultMinPoolFallback},
		{TypeBuildWord, DefaultMinPoolFallback},
		{TypePairs, 0},
		{TypeColumns, 0},
		{TypeFlashcards, 0},
		{TypeListen, 0},
	} {
		s := DefaultSettings(tt.game)
		if s.MinPoolFallback != tt.fallback {
			t.Errorf("%s: fallback = %d, want %d", tt.game, s.MinPoolFallback, tt.fallback)
		}
		if s.GroupID != GroupAll || s.Status != words.StatusAll {
			t.Errorf("%s: filters not wildcarded", tt.game)
		}
	}

	if DefaultSettings(TypeListen).SourceVoice == "" {
		t.Error("listen has no source voice")
	}
}
