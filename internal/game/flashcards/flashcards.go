// Package flashcards builds the card deck and classifies the marking
// gestures. There is no answer check; the player self-reports each card
// as known, unknown or skipped.
package flashcards

import (
	"math/rand/v2"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/words"
)

// Need is the pool requirement for this game.
var Need = game.Need{Translation: true}

// Side is which face of a card is shown first.
type Side int

const (
	SideSource Side = iota // English text up
	SideTarget             // translation up
)

// Card is one deck entry with its per-session front side.
type Card struct {
	Word  words.Word
	Front Side
}

// Build orders the deck per settings: filtered order or shuffled, with a
// fixed or per-card randomized front side.
func Build(pool []words.Word, s game.Settings, rng *rand.Rand) []Card {
	sample := game.Sample(pool, s.Count, s.Shuffle, rng)
	cards := make([]Card, 0, len(sample))
	for _, w := range sample {
		front := SideSource
		if s.RandomSides && rng.IntN(2) == 1 {
			front = SideTarget
		}
		cards = append(cards, Card{Word: w, Front: front})
	}
	return cards
}

// SwipeThreshold is the horizontal distance a drag must cover to count
// as a marking gesture.
const SwipeThreshold = 8

// ClassifySwipe maps a drag delta to a card outcome: left marks the card
// unknown, right marks it known. The drag must exceed threshold and be
// more horizontal than vertical; anything else is not a swipe.
func ClassifySwipe(dx, dy, threshold int) (game.Outcome, bool) {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	if abs(dx) < threshold || abs(dx) <= abs(dy) {
		return 0, false
	}
	if dx < 0 {
		return game.OutcomeWrong, true
	}
	return game.OutcomeCorrect, true
}
