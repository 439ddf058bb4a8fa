package game

import (
	"time"

	"github.com/abhisek/wordgym/internal/words"
)

const (
	// CountAll requests every eligible word instead of a fixed count.
	CountAll = -1

	// GroupAll matches words from any group.
	GroupAll = "all"

	// DefaultCount is the item count preselected on the setup screen.
	DefaultCount = 10

	// DefaultMinPoolFallback is the in-group pool size below which games
	// that opt in pad the pool with out-of-group words.
	DefaultMinPoolFallback = 10

	// DefaultBasePause is the pause after the source utterance in
	// listen-and-repeat; the pause after the target utterance is double.
	DefaultBasePause = 1500 * time.Millisecond
)

// Settings is the per-game configuration captured at setup. It is
// immutable while a session runs; editing settings replaces it wholesale.
type Settings struct {
	// GroupID restricts the pool to one group. GroupAll (or empty)
	// disables the restriction.
	GroupID string

	// Status restricts the pool by learning status. words.StatusAll
	// disables the restriction.
	Status words.Status

	// Count is the requested number of session items, or CountAll.
	Count int

	// Shuffle randomizes item order. When false the filtered order is kept.
	Shuffle bool

	// MinPoolFallback pads an in-group pool smaller than this with
	// out-of-group words, appended after the in-group subset. Zero
	// disables the fallback. Only games that opt in apply it.
	MinPoolFallback int

	// ShowImage displays the word image where the game supports it.
	ShowImage bool

	// PrefillFirst pre-fills the first letter slot in build-word.
	PrefillFirst bool

	// RandomSides randomizes the front side per flashcard.
	RandomSides bool

	// SourceVoice and TargetVoice are opaque voice refs passed to the
	// speech collaborator (language tags for the TTS backend).
	SourceVoice string
	TargetVoice string

	// SkipIfNoVoice suppresses target-language narration when no target
	// voice is configured. When false the source voice is reused.
	SkipIfNoVoice bool

	// BasePause is the narration pause unit for listen-and-repeat.
	BasePause time.Duration
}

// DefaultSettings returns the setup-screen defaults for a game.
func DefaultSettings(t Type) Settings {
	s := Settings{
		GroupID:       GroupAll,
		Status:        words.StatusAll,
		Count:         DefaultCount,
		Shuffle:       true,
		SkipIfNoVoice: true,
		BasePause:     DefaultBasePause,
	}
	switch t {
	case TypeChoice, TypeBuildWord:
		s.MinPoolFallback = DefaultMinPoolFallback
	case TypeListen:
		s.SourceVoice = "en"
	}
	return s
}

// WantsGroup reports whether the settings restrict the pool to a group.
func (s Settings) WantsGroup() bool {
	return s.GroupID != "" && s.GroupID != GroupAll
}

// WantsStatus reports whether the settings restrict the pool by status.
func (s Settings) WantsStatus() bool {
	return s.Status != "" && s.Status != words.StatusAll
}
