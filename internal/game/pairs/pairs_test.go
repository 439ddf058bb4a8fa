package pairs

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/words"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(5, 6))
}

func testBoard(t *testing.T, n int) *Board {
	t.Helper()
	pool := make([]words.Word, n)
	for i := range pool {
		pool[i] = words.Word{
			ID:          string(rune('a' + i)),
			Text:        "w" + string(rune('a'+i)),
			Translation: "t" + string(rune('a'+i)),
		}
	}
	s := game.DefaultSettings(game.TypePairs)
	s.Count = game.CountAll
	return Build(pool, s, testRand())
}

// positions returns the left and right display positions of an item.
func positions(b *Board, item int) (left, right int) {
	left, right = -1, -1
	for pos, it := range b.Left {
		if it == item {
			left = pos
		}
	}
	for pos, it := range b.Right {
		if it == item {
			right = pos
		}
	}
	return left, right
}

func TestBuildBoard(t *testing.T) {
	b := testBoard(t, 6)

	if len(b.Left) != 6 || len(b.Right) != 6 {
		t.Fatalf("display orders %d/%d, want 6/6", len(b.Left), len(b.Right))
	}
	seen := make(map[int]bool)
	for _, it := range b.Left {
		if seen[it] {
			t.Fatalf("left order not a permutation: %v", b.Left)
		}
		seen[it] = true
	}
}

func TestMatchSettlesRecord(t *testing.T) {
	b := testBoard(t, 4)
	l, r := positions(b, 0)

	if c := b.SelectLeft(l); c != nil {
		t.Fatalf("commit on single selection: %+v", c)
	}
	c := b.SelectRight(r)
	if c == nil || !c.Matched || !c.Record || !c.Correct {
		t.Fatalf("commit = %+v, want matched correct record", c)
	}
	if b.Word(*c).ID != "a" {
		t.Fatalf("settled word = %v", b.Word(*c))
	}
	if !b.MatchedLeft(l) || !b.MatchedRight(r) {
		t.Fatal("positions not locked after match")
	}
	if b.SelectLeft(l) != nil || b.SelectRight(r) != nil {
		t.Fatal("locked position accepted a selection")
	}
}

func TestMismatchSettlesNothing(t *testing.T) {
	b := testBoard(t, 4)
	l0, _ := positions(b, 0)
	_, r1 := positions(b, 1)

	b.SelectLeft(l0)
	c := b.SelectRight(r1)
	if c == nil || c.Matched || c.Record {
		t.Fatalf("commit = %+v, want unmatched non-record", c)
	}
	if b.MatchedLeft(l0) {
		t.Fatal("mismatch locked a position")
	}

	// The missed word later matches, but the record is marked wrong.
	l, r := positions(b, 0)
	b.SelectLeft(l)
	c = b.SelectRight(r)
	if c == nil || !c.Matched || !c.Record || c.Correct {
		t.Fatalf("commit = %+v, want matched record marked wrong", c)
	}
}

func TestSolvedProducesOneRecordPerItem(t *testing.T) {
	const n = 5
	b := testBoard(t, n)

	records := 0
	for item := 0; item < n; item++ {
		l, r := positions(b, item)
		b.SelectLeft(l)
		if c := b.SelectRight(r); c != nil && c.Record {
			records++
		}
	}
	if !b.Solved() {
		t.Fatal("board not solved after matching every item")
	}
	if records != n {
		t.Fatalf("records = %d, want %d", records, n)
	}
}
