// Package speech binds the speech-output collaborator: speak an
// utterance with a given voice and resolve on completion, or cancel all
// pending utterances.
package speech

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrUnavailable means no speech backend exists in this environment.
// Callers degrade to a silent no-op rather than failing the session.
var ErrUnavailable = errors.New("speech synthesis unavailable")

// Speaker speaks one utterance at a time. Speak blocks until the
// utterance finished, was cancelled, or failed. Cancel stops the
// in-flight utterance immediately.
type Speaker interface {
	Speak(ctx context.Context, text, voice string) error
	Cancel()
}

// Nop is the degraded Speaker used when synthesis is unavailable. It
// logs one warning on construction and then swallows everything.
type Nop struct{}

// NewNop logs the degradation and returns a no-op speaker.
func NewNop(log *zap.Logger) Nop {
	log.Warn("speech synthesis unavailable, narration will be silent")
	return Nop{}
}

func (Nop) Speak(ctx context.Context, text, voice string) error { return nil }

func (Nop) Cancel() {}
