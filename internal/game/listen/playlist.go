package listen

import (
	"math/rand/v2"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/words"
)

// Build samples the narration playlist from the filtered pool.
func Build(pool []words.Word, s game.Settings, rng *rand.Rand) []words.Word {
	return game.Sample(pool, s.Count, s.Shuffle, rng)
}

// ConfigFromSettings maps session settings to the scheduler config.
func ConfigFromSettings(s game.Settings) Config {
	return Config{
		SourceVoice:   s.SourceVoice,
		TargetVoice:   s.TargetVoice,
		SkipIfNoVoice: s.SkipIfNoVoice,
		BasePause:     s.BasePause,
	}
}
