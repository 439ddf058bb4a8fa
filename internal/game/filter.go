package game

import "github.com/abhisek/wordgym/internal/words"

// Need lists the word fields a game requires from every pool entry.
type Need struct {
	// Translation requires a non-empty translation (text-matching modes).
	Translation bool

	// Image requires an image reference.
	Image bool

	// SimpleText requires the English text to pass the simple-word
	// character check (letters, spaces, commas), for letter building.
	SimpleText bool
}

// FilterPool derives the eligible subset of all for the given settings
// and game requirements, preserving input order. Group filtering applies
// the fallback rule: when the in-group subset is smaller than
// s.MinPoolFallback, eligible out-of-group words are appended after it.
// An empty result is not an error here; session construction surfaces it
// as ErrInsufficientPool.
func FilterPool(all []words.Word, s Settings, need Need) []words.Word {
	var inGroup, outGroup []words.Word
	for _, w := range all {
		if !eligible(w, s, need) {
			continue
		}
		if s.WantsGroup() && w.GroupID != s.GroupID {
			outGroup = append(outGroup, w)
			continue
		}
		inGroup = append(inGroup, w)
	}

	if !s.WantsGroup() {
		return inGroup
	}
	if s.MinPoolFallback > 0 && len(inGroup) < s.MinPoolFallback {
		return append(inGroup, outGroup...)
	}
	return inGroup
}

func eligible(w words.Word, s Settings, need Need) bool {
	if s.WantsStatus() && w.Status != s.Status {
		return false
	}
	if need.Translation && w.Translation == "" {
		return false
	}
	if need.Image && w.ImageURL == "" {
		return false
	}
	if need.SimpleText && !words.IsSimple(w.Text) {
		return false
	}
	return true
}
