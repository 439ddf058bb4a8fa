package game

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/words"
)

type fakeSink struct {
	batches [][]StatResult
	err     error
}

func (f *fakeSink) SubmitStatsBatch(ctx context.Context, results []StatResult) error {
	f.batches = append(f.batches, results)
	return f.err
}

type fakeStatus struct {
	updates     map[string]words.Status
	failFor     map[string]bool
	invalidated int
}

func (f *fakeStatus) UpdateWordStatus(ctx context.Context, wordID string, status words.Status) error {
	if f.failFor[wordID] {
		return errors.New("boom")
	}
	if f.updates == nil {
		f.updates = make(map[string]words.Status)
	}
	f.updates[wordID] = status
	return nil
}

func (f *fakeStatus) InvalidateWords() { f.invalidated++ }

func TestReporterReport(t *testing.T) {
	sink := &fakeSink{}
	r := NewReporter(sink, nil, zap.NewNop())

	records := []Record{
		{WordID: "a", Outcome: OutcomeCorrect},
		{WordID: "b", Outcome: OutcomeWrong},
		{WordID: "c", Outcome: OutcomeSkipped},
	}
	r.Report(context.Background(), TypeChoice, records)

	if len(sink.batches) != 1 {
		t.Fatalf("batches = %d, want 1", len(sink.batches))
	}
	batch := sink.batches[0]
	if len(batch) != 3 {
		t.Fatalf("batch size = %d, want 3", len(batch))
	}
	if !batch[0].Correct || batch[1].Correct || batch[2].Correct {
		t.Fatalf("correctness mapping wrong: %+v", batch)
	}
	for _, res := range batch {
		if res.GameType != "choice" {
			t.Fatalf("game type = %q", res.GameType)
		}
	}
}

func TestReporterReportEmpty(t *testing.T) {
	sink := &fakeSink{}
	r := NewReporter(sink, nil, zap.NewNop())
	r.Report(context.Background(), TypeChoice, nil)
	if len(sink.batches) != 0 {
		t.Fatal("empty session was submitted")
	}
}

func TestReporterReportFailureIsSilent(t *testing.T) {
	sink := &fakeSink{err: errors.New("down")}
	r := NewReporter(sink, nil, zap.NewNop())
	// Must not panic or propagate.
	r.Report(context.Background(), TypeChoice, []Record{{WordID: "a"}})
}

func TestMarkKnown(t *testing.T) {
	status := &fakeStatus{failFor: map[string]bool{"b": true}}
	r := NewReporter(nil, status, zap.NewNop())

	updated := r.MarkKnown(context.Background(), []string{"a", "b", "c"})
	if updated != 2 {
		t.Fatalf("updated = %d, want 2", updated)
	}
	if status.updates["a"] != words.StatusKnown || status.updates["c"] != words.StatusKnown {
		t.Fatalf("updates = %v", status.updates)
	}
	if status.invalidated != 1 {
		t.Fatalf("invalidated = %d, want 1", status.invalidated)
	}
}

func TestMarkKnownAllFail(t *testing.T) {
	status := &fakeStatus{failFor: map[string]bool{"a": true}}
	r := NewReporter(nil, status, zap.NewNop())

	if updated := r.MarkKnown(context.Background(), []string{"a"}); updated != 0 {
		t.Fatalf("updated = %d, want 0", updated)
	}
	if status.invalidated != 0 {
		t.Fatal("cache invalidated with no successful update")
	}
}
