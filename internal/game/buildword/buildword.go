// Package buildword builds and validates letter-assembly puzzles: the
// target word is decomposed into slots and the player fills them from
// shuffled letter buttons.
package buildword

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/words"
)

// Need is the pool requirement for this game.
var Need = game.Need{Translation: true, SimpleText: true}

// SlotKind distinguishes fillable letter slots from fixed punctuation.
type SlotKind int

const (
	SlotLetter SlotKind = iota
	SlotFixed           // spaces and commas, rendered but not interactive
)

// Slot is one character position of the target word.
type Slot struct {
	Kind   SlotKind
	Target rune // lower-cased target character

	Filled bool
	Rune   rune // rune placed by the player
	Source int  // button index the rune came from
}

// Button is one draggable letter.
type Button struct {
	Rune rune
	Used bool
}

// Puzzle is one build-word item.
type Puzzle struct {
	Word    words.Word
	Slots   []Slot
	Buttons []Button
}

// Build samples count puzzles from pool. Pool entries are assumed to
// have passed the simple-word check via game.FilterPool.
func Build(pool []words.Word, s game.Settings, rng *rand.Rand) []Puzzle {
	targets := game.Sample(pool, s.Count, s.Shuffle, rng)
	puzzles := make([]Puzzle, 0, len(targets))
	for _, w := range targets {
		puzzles = append(puzzles, New(w, s.PrefillFirst, rng))
	}
	return puzzles
}

// New decomposes one word: one slot per character, spaces and commas as
// fixed slots, one shuffled button per letter. With prefill the first
// letter slot is filled and its source button consumed.
func New(w words.Word, prefill bool, rng *rand.Rand) Puzzle {
	var slots []Slot
	var letters []rune
	for _, r := range strings.ToLower(w.Text) {
		if r == ' ' || r == ',' {
			slots = append(slots, Slot{Kind: SlotFixed, Target: r})
			continue
		}
		slots = append(slots, Slot{Kind: SlotLetter, Target: r})
		letters = append(letters, r)
	}

	game.Shuffle(letters, rng)
	buttons := make([]Button, len(letters))
	for i, r := range letters {
		buttons[i] = Button{Rune: r}
	}

	p := Puzzle{Word: w, Slots: slots, Buttons: buttons}
	if prefill {
		p.prefillFirst()
	}
	return p
}

func (p *Puzzle) prefillFirst() {
	for i := range p.Slots {
		if p.Slots[i].Kind != SlotLetter {
			continue
		}
		target := p.Slots[i].Target
		for b := range p.Buttons {
			if !p.Buttons[b].Used && p.Buttons[b].Rune == target {
				p.fill(i, b)
				return
			}
		}
		return
	}
}

func (p *Puzzle) fill(slot, button int) {
	p.Slots[slot].Filled = true
	p.Slots[slot].Rune = p.Buttons[button].Rune
	p.Slots[slot].Source = button
	p.Buttons[button].Used = true
}

// Press places the button's letter into the first unfilled letter slot.
// Placement follows click order, not slot choice. Returns false when the
// button is spent or every slot is already filled.
func (p *Puzzle) Press(button int) bool {
	if button < 0 || button >= len(p.Buttons) || p.Buttons[button].Used {
		return false
	}
	for i := range p.Slots {
		if p.Slots[i].Kind == SlotLetter && !p.Slots[i].Filled {
			p.fill(i, button)
			return true
		}
	}
	return false
}

// Clear vacates a filled letter slot and frees its source button.
func (p *Puzzle) Clear(slot int) bool {
	if slot < 0 || slot >= len(p.Slots) {
		return false
	}
	s := &p.Slots[slot]
	if s.Kind != SlotLetter || !s.Filled {
		return false
	}
	p.Buttons[s.Source].Used = false
	s.Filled = false
	s.Rune = 0
	return true
}

// Complete reports whether every letter slot is filled.
func (p *Puzzle) Complete() bool {
	for _, s := range p.Slots {
		if s.Kind == SlotLetter && !s.Filled {
			return false
		}
	}
	return true
}

// Check validates the assembled word: the concatenation of filled slots
// must case-insensitively equal the target with spaces and commas
// stripped. Returns game.ErrIncomplete while letter slots remain open.
func (p *Puzzle) Check() (bool, error) {
	if !p.Complete() {
		return false, game.ErrIncomplete
	}
	var b strings.Builder
	for _, s := range p.Slots {
		if s.Kind == SlotLetter {
			b.WriteRune(unicode.ToLower(s.Rune))
		}
	}
	target := strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' {
			return -1
		}
		return unicode.ToLower(r)
	}, p.Word.Text)
	return b.String() == target, nil
}
