// Package choice builds and validates multiple-choice questions: guess
// the translation of an English word among shuffled options.
package choice

import (
	"math/rand/v2"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/words"
)

// MaxDistractors is the number of wrong options drawn per question.
const MaxDistractors = 3

// Need is the pool requirement for this game.
var Need = game.Need{Translation: true}

// Question is one multiple-choice item. Options always contain the
// correct translation exactly once; CorrectIndex points at it.
type Question struct {
	Word         words.Word
	Options      []string
	CorrectIndex int

	ChosenIndex int
	Answered    bool
}

// Build samples count questions from pool and constructs the option
// sets. Distractors are drawn from the remaining pool (shuffled,
// deduplicated, empty texts dropped); a question with fewer than two
// distinct non-empty options is dropped.
func Build(pool []words.Word, s game.Settings, rng *rand.Rand) []Question {
	targets := game.Sample(pool, s.Count, s.Shuffle, rng)

	questions := make([]Question, 0, len(targets))
	for _, target := range targets {
		q, ok := build(target, pool, rng)
		if !ok {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

func build(target words.Word, pool []words.Word, rng *rand.Rand) (Question, bool) {
	rest := make([]words.Word, 0, len(pool))
	for _, w := range pool {
		if w.ID != target.ID {
			rest = append(rest, w)
		}
	}
	game.Shuffle(rest, rng)

	options := []string{target.Translation}
	seen := map[string]bool{target.Translation: true}
	for _, w := range rest {
		if len(options) > MaxDistractors {
			break
		}
		if w.Translation == "" || seen[w.Translation] {
			continue
		}
		seen[w.Translation] = true
		options = append(options, w.Translation)
	}

	if len(options) < 2 {
		return Question{}, false
	}

	game.Shuffle(options, rng)
	correct := 0
	for i, opt := range options {
		if opt == target.Translation {
			correct = i
			break
		}
	}

	return Question{
		Word:         target,
		Options:      options,
		CorrectIndex: correct,
		ChosenIndex:  -1,
	}, true
}

// Choose locks the question on the first selection and reports
// correctness. Later selections are ignored.
func (q *Question) Choose(index int) bool {
	if q.Answered || index < 0 || index >= len(q.Options) {
		return q.Answered && q.ChosenIndex == q.CorrectIndex
	}
	q.Answered = true
	q.ChosenIndex = index
	return index == q.CorrectIndex
}
