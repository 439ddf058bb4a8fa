package choice

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/words"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func pool(n int) []words.Word {
	out := make([]words.Word, n)
	for i := range out {
		out[i] = words.Word{
			ID:          string(rune('a' + i)),
			Text:        "word" + string(rune('a'+i)),
			Translation: "trans" + string(rune('a'+i)),
		}
	}
	return out
}

func TestBuildQuestions(t *testing.T) {
	s := game.DefaultSettings(game.TypeChoice)
	s.Count = 5
	questions := Build(pool(10), s, testRand())

	if len(questions) != 5 {
		t.Fatalf("questions = %d, want 5", len(questions))
	}
	for _, q := range questions {
		if len(q.Options) < 2 || len(q.Options) > MaxDistractors+1 {
			t.Fatalf("option count %d out of range", len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			t.Fatalf("correct index %d out of range", q.CorrectIndex)
		}
		if q.Options[q.CorrectIndex] != q.Word.Translation {
			t.Fatalf("correct option %q does not match word %q",
				q.Options[q.CorrectIndex], q.Word.Translation)
		}

		// The right answer appears exactly once.
		seen := 0
		for _, o := range q.Options {
			if o == q.Word.Translation {
				seen++
			}
		}
		if seen != 1 {
			t.Fatalf("correct answer appears %d times", seen)
		}
	}
}

func TestBuildDropsWordsWithoutDistractors(t *testing.T) {
	// Only one distinct translation available, so no question can offer
	// two options.
	only := []words.Word{{ID: "a", Text: "cat", Translation: "x"}}
	s := game.DefaultSettings(game.TypeChoice)
	if got := Build(only, s, testRand()); len(got) != 0 {
		t.Fatalf("built %d questions from a 1-word pool", len(got))
	}
}

func TestBuildDedupsTranslations(t *testing.T) {
	dup := []words.Word{
		{ID: "a", Text: "cat", Translation: "same"},
		{ID: "b", Text: "dog", Translation: "same"},
		{ID: "c", Text: "fox", Translation: "other"},
	}
	s := game.DefaultSettings(game.TypeChoice)
	s.Count = game.CountAll
	for _, q := range Build(dup, s, testRand()) {
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if seen[o] {
				t.Fatalf("duplicate option %q in %v", o, q.Options)
			}
			seen[o] = true
		}
	}
}

func TestChooseLocksFirstSelection(t *testing.T) {
	s := game.DefaultSettings(game.TypeChoice)
	s.Count = 1
	questions := Build(pool(5), s, testRand())
	if len(questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(questions))
	}

	q := &questions[0]
	wrong := (q.CorrectIndex + 1) % len(q.Options)

	if got := q.Choose(wrong); got {
		t.Fatal("wrong option reported correct")
	}
	if !q.Answered || q.ChosenIndex != wrong {
		t.Fatalf("first selection not recorded: %+v", q)
	}

	// A second choice must not overwrite the committed answer.
	q.Choose(q.CorrectIndex)
	if q.ChosenIndex != wrong {
		t.Fatalf("answer overwritten: chosen = %d", q.ChosenIndex)
	}
}
