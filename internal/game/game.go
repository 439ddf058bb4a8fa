// Package game implements the practice-session engine shared by all
// mini-games: pool filtering, sampling, answer accounting, phase
// transitions and stats reporting. Per-game challenge construction and
// input validation live in the subpackages.
package game

import "errors"

// Type tags a practice game for stats reporting and settings defaults.
type Type string

const (
	TypeChoice     Type = "choice"
	TypeBuildWord  Type = "build-word"
	TypePairs      Type = "pairs"
	TypeColumns    Type = "columns"
	TypeFlashcards Type = "flashcards"
	TypeListen     Type = "listen"
)

// Title returns the display name of the game.
func (t Type) Title() string {
	switch t {
	case TypeChoice:
		return "Multiple Choice"
	case TypeBuildWord:
		return "Build the Word"
	case TypePairs:
		return "Matching Pairs"
	case TypeColumns:
		return "Column Pairs"
	case TypeFlashcards:
		return "Flashcards"
	case TypeListen:
		return "Listen & Repeat"
	}
	return string(t)
}

var (
	// ErrInsufficientPool is returned when the filtered word pool is too
	// small to build a session.
	ErrInsufficientPool = errors.New("not enough words for this game")

	// ErrNothingToRetry is returned by retry-wrong-only when the finished
	// session has no incorrect answers.
	ErrNothingToRetry = errors.New("no wrong answers to retry")

	// ErrIncomplete is returned by answer checks that require complete
	// input, such as build-word with unfilled slots.
	ErrIncomplete = errors.New("answer is incomplete")
)
