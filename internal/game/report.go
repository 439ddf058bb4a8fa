package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/words"
)

// StatResult is one answered item in the stats batch payload.
type StatResult struct {
	WordID   string `json:"wordId"`
	GameType string `json:"gameType"`
	Correct  bool   `json:"correct"`
}

// StatsSink receives finished-session results. Implemented by the API
// client.
type StatsSink interface {
	SubmitStatsBatch(ctx context.Context, results []StatResult) error
}

// StatusWriter updates word learning status. Implemented by the API
// client.
type StatusWriter interface {
	UpdateWordStatus(ctx context.Context, wordID string, status words.Status) error
	InvalidateWords()
}

// Reporter forwards session outcomes to the stats collaborator.
// Reporting is best-effort: failures are logged and never block the
// results view or retry actions.
type Reporter struct {
	sink   StatsSink
	status StatusWriter
	log    *zap.Logger
}

// NewReporter creates a Reporter. log may not be nil; pass zap.NewNop()
// to silence it.
func NewReporter(sink StatsSink, status StatusWriter, log *zap.Logger) *Reporter {
	return &Reporter{sink: sink, status: status, log: log}
}

// Report submits the finished session's records as a single batch.
func (r *Reporter) Report(ctx context.Context, game Type, records []Record) {
	if r.sink == nil || len(records) == 0 {
		return
	}
	results := make([]StatResult, 0, len(records))
	for _, rec := range records {
		results = append(results, StatResult{
			WordID:   rec.WordID,
			GameType: string(game),
			Correct:  rec.Correct(),
		})
	}
	if err := r.sink.SubmitStatsBatch(ctx, results); err != nil {
		r.log.Warn("stats submission failed",
			zap.String("game", string(game)),
			zap.Int("results", len(results)),
			zap.Error(err))
	}
}

// MarkKnown sets the given words to known status, one update per word,
// and invalidates the word cache when at least one update succeeded.
// Returns the number of successful updates.
func (r *Reporter) MarkKnown(ctx context.Context, wordIDs []string) int {
	if r.status == nil {
		return 0
	}
	updated := 0
	for _, id := range wordIDs {
		if err := r.status.UpdateWordStatus(ctx, id, words.StatusKnown); err != nil {
			r.log.Warn("mark known failed", zap.String("word", id), zap.Error(err))
			continue
		}
		updated++
	}
	if updated > 0 {
		r.status.InvalidateWords()
	}
	return updated
}
