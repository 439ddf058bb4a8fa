// Package listen implements the listen-and-repeat playlist and its
// playback scheduler: a cancellable sequential narrator over the word
// list.
package listen

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/speech"
	"github.com/abhisek/wordgym/internal/words"
)

// Need is the pool requirement for this game.
var Need = game.Need{Translation: true}

// pollInterval bounds how long a stop request can go unnoticed during a
// pause.
const pollInterval = 50 * time.Millisecond

// Config is the scheduler's narration configuration. Reconfigure swaps
// it wholesale; the loop reads the current value before every utterance.
type Config struct {
	SourceVoice   string
	TargetVoice   string
	SkipIfNoVoice bool
	BasePause     time.Duration
}

// Events are the scheduler's callbacks into the UI. They are invoked
// from the narration goroutine; Bubble Tea screens should forward them
// as messages.
type Events struct {
	// Advance fires when narration moves to playlist index i.
	Advance func(i int)
	// Done fires when the playlist finished or playback was stopped.
	// stopped distinguishes the two.
	Done func(stopped bool)
}

// Scheduler walks a playlist sequentially: speak the source text, pause,
// conditionally speak the target text, pause twice as long, advance. At
// most one narration loop runs at a time.
type Scheduler struct {
	speaker speech.Speaker
	log     *zap.Logger

	mu      sync.Mutex
	cfg     Config
	playing bool
	cancel  context.CancelFunc
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(speaker speech.Speaker, cfg Config, log *zap.Logger) *Scheduler {
	if cfg.BasePause <= 0 {
		cfg.BasePause = game.DefaultBasePause
	}
	return &Scheduler{speaker: speaker, cfg: cfg, log: log}
}

// Playing reports whether a narration loop is running.
func (s *Scheduler) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Reconfigure replaces the narration configuration. A running loop picks
// the new values up at its next utterance.
func (s *Scheduler) Reconfigure(cfg Config) {
	if cfg.BasePause <= 0 {
		cfg.BasePause = game.DefaultBasePause
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// Start begins narrating playlist from index start. A no-op when a loop
// is already running.
func (s *Scheduler) Start(playlist []words.Word, start int, ev Events) {
	s.mu.Lock()
	if s.playing {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.playing = true
	s.cancel = cancel
	s.mu.Unlock()

	go s.run(ctx, playlist, start, ev)
}

// Stop cancels the running loop and silences the in-flight utterance
// immediately. Safe to call when stopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.speaker.Cancel()
}

func (s *Scheduler) run(ctx context.Context, playlist []words.Word, start int, ev Events) {
	defer func() {
		s.mu.Lock()
		s.playing = false
		s.cancel = nil
		s.mu.Unlock()
	}()

	if start < 0 {
		start = 0
	}
	for i := start; i < len(playlist); i++ {
		if ctx.Err() != nil {
			s.finish(ev, true)
			return
		}
		if ev.Advance != nil {
			ev.Advance(i)
		}

		w := playlist[i]
		cfg := s.config()

		if err := s.speaker.Speak(ctx, w.Text, cfg.SourceVoice); err != nil {
			if ctx.Err() != nil {
				s.finish(ev, true)
				return
			}
			s.log.Warn("narration failed", zap.String("word", w.ID), zap.Error(err))
		}
		if !s.pause(ctx, cfg.BasePause) {
			s.finish(ev, true)
			return
		}

		cfg = s.config()
		if voice, ok := targetVoice(cfg); ok && w.Translation != "" {
			if err := s.speaker.Speak(ctx, w.Translation, voice); err != nil {
				if ctx.Err() != nil {
					s.finish(ev, true)
					return
				}
				s.log.Warn("narration failed", zap.String("word", w.ID), zap.Error(err))
			}
		}
		if !s.pause(ctx, 2*cfg.BasePause) {
			s.finish(ev, true)
			return
		}
	}
	s.finish(ev, false)
}

func (s *Scheduler) finish(ev Events, stopped bool) {
	if ev.Done != nil {
		ev.Done(stopped)
	}
}

func (s *Scheduler) config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// targetVoice decides whether the target-language utterance is spoken:
// with the configured target voice, or with the source voice when
// SkipIfNoVoice is off.
func targetVoice(cfg Config) (string, bool) {
	if cfg.TargetVoice != "" {
		return cfg.TargetVoice, true
	}
	if !cfg.SkipIfNoVoice {
		return cfg.SourceVoice, true
	}
	return "", false
}

// pause waits for d, polling for cancellation at pollInterval so a stop
// request takes effect within one interval. Returns false on cancel.
func (s *Scheduler) pause(ctx context.Context, d time.Duration) bool {
	deadline := time.Now().Add(d)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case now := <-ticker.C:
			if !now.Before(deadline) {
				return true
			}
		}
	}
}
