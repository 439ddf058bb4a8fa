// Package pairs builds and validates the matching-pairs and column-pairs
// boards: the same word set shown in two independently shuffled display
// orders, one for the source language and one for the target.
package pairs

import (
	"math/rand/v2"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/words"
)

// Need is the pool requirement for this game.
var Need = game.Need{Translation: true}

const none = -1

// Commit is the result of combining a left and a right selection.
type Commit struct {
	LeftItem  int
	RightItem int

	// Matched means both sides originate from the same source word.
	Matched bool

	// Record is set when the commit settles an item's answer record: a
	// match settles the matched word, correct only if the word was never
	// part of an earlier mismatch. Mismatches give feedback but settle
	// nothing; the words stay in play.
	Record  bool
	Correct bool
}

// Board is one pairs session: Items holds the word identities, Left and
// Right are display orders holding indices into Items.
type Board struct {
	Items []words.Word
	Left  []int
	Right []int

	pendingLeft  int
	pendingRight int
	matchedLeft  map[int]bool // display positions locked after a match
	matchedRight map[int]bool
	missed       map[int]bool // item indices involved in any mismatch
	solved       int
}

// Build samples the working set and shuffles the two display orders
// independently.
func Build(pool []words.Word, s game.Settings, rng *rand.Rand) *Board {
	items := game.Sample(pool, s.Count, s.Shuffle, rng)
	left := make([]int, len(items))
	right := make([]int, len(items))
	for i := range items {
		left[i] = i
		right[i] = i
	}
	game.Shuffle(left, rng)
	game.Shuffle(right, rng)
	return &Board{
		Items:        items,
		Left:         left,
		Right:        right,
		pendingLeft:  none,
		pendingRight: none,
		matchedLeft:  make(map[int]bool),
		matchedRight: make(map[int]bool),
		missed:       make(map[int]bool),
	}
}

// SelectLeft marks the left display position as pending. When a right
// selection is already pending the two commit into a pair. Positions
// locked by an earlier match return nil.
func (b *Board) SelectLeft(pos int) *Commit {
	if pos < 0 || pos >= len(b.Left) || b.matchedLeft[pos] {
		return nil
	}
	b.pendingLeft = pos
	return b.tryCommit()
}

// SelectRight is the right-side counterpart of SelectLeft.
func (b *Board) SelectRight(pos int) *Commit {
	if pos < 0 || pos >= len(b.Right) || b.matchedRight[pos] {
		return nil
	}
	b.pendingRight = pos
	return b.tryCommit()
}

func (b *Board) tryCommit() *Commit {
	if b.pendingLeft == none || b.pendingRight == none {
		return nil
	}
	c := &Commit{
		LeftItem:  b.Left[b.pendingLeft],
		RightItem: b.Right[b.pendingRight],
	}
	if c.LeftItem == c.RightItem {
		c.Matched = true
		c.Record = true
		c.Correct = !b.missed[c.LeftItem]
		b.matchedLeft[b.pendingLeft] = true
		b.matchedRight[b.pendingRight] = true
		b.solved++
	} else {
		b.missed[c.LeftItem] = true
		b.missed[c.RightItem] = true
	}
	b.pendingLeft = none
	b.pendingRight = none
	return c
}

// Solved reports whether every item has been matched.
func (b *Board) Solved() bool {
	return b.solved == len(b.Items)
}

// PendingLeft returns the pending left display position, or -1.
func (b *Board) PendingLeft() int { return b.pendingLeft }

// PendingRight returns the pending right display position, or -1.
func (b *Board) PendingRight() int { return b.pendingRight }

// MatchedLeft reports whether the left display position is locked.
func (b *Board) MatchedLeft(pos int) bool { return b.matchedLeft[pos] }

// MatchedRight reports whether the right display position is locked.
func (b *Board) MatchedRight(pos int) bool { return b.matchedRight[pos] }

// Word returns the commit's settled word, for answer recording.
func (b *Board) Word(c Commit) words.Word {
	return b.Items[c.LeftItem]
}
