package flashcards

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/words"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 8))
}

func TestBuildDeck(t *testing.T) {
	pool := []words.Word{
		{ID: "1", Text: "cat", Translation: "a"},
		{ID: "2", Text: "dog", Translation: "b"},
		{ID: "3", Text: "fox", Translation: "c"},
	}

	t.Run("fixed side", func(t *testing.T) {
		s := game.DefaultSettings(game.TypeFlashcards)
		s.Count = game.CountAll
		s.Shuffle = false
		cards := Build(pool, s, testRand())
		if len(cards) != 3 {
			t.Fatalf("cards = %d, want 3", len(cards))
		}
		for i, c := range cards {
			if c.Front != SideSource {
				t.Fatalf("card %d front = %v, want source", i, c.Front)
			}
			if c.Word.ID != pool[i].ID {
				t.Fatalf("order not preserved: %v", cards)
			}
		}
	})

	t.Run("random sides eventually flips", func(t *testing.T) {
		s := game.DefaultSettings(game.TypeFlashcards)
		s.Count = game.CountAll
		s.RandomSides = true
		flipped := false
		for seed := uint64(0); seed < 20 && !flipped; seed++ {
			rng := rand.New(rand.NewPCG(seed, seed))
			for _, c := range Build(pool, s, rng) {
				if c.Front == SideTarget {
					flipped = true
				}
			}
		}
		if !flipped {
			t.Fatal("random sides never produced a target-first card")
		}
	})
}

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name    string
		dx, dy  int
		want    game.Outcome
		isSwipe bool
	}{
		{"left swipe", -20, 2, game.OutcomeWrong, true},
		{"right swipe", 20, -3, game.OutcomeCorrect, true},
		{"exactly threshold", SwipeThreshold, 0, game.OutcomeCorrect, true},
		{"too short", 5, 0, 0, false},
		{"mostly vertical", 10, 15, 0, false},
		{"diagonal tie rejected", 10, 10, 0, false},
		{"no movement", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifySwipe(tt.dx, tt.dy, SwipeThreshold)
			if ok != tt.isSwipe {
				t.Fatalf("isSwipe = %v, want %v", ok, tt.isSwipe)
			}
			if ok && got != tt.want {
				t.Fatalf("outcome = %v, want %v", got, tt.want)
			}
		})
	}
}
