package listen

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/words"
)

type utterance struct {
	text  string
	voice string
}

// fakeSpeaker records utterances and never blocks.
type fakeSpeaker struct {
	mu     sync.Mutex
	spoken []utterance
}

func (f *fakeSpeaker) Speak(ctx context.Context, text, voice string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, utterance{text: text, voice: voice})
	return nil
}

func (f *fakeSpeaker) Cancel() {}

func (f *fakeSpeaker) utterances() []utterance {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]utterance, len(f.spoken))
	copy(out, f.spoken)
	return out
}

func playlist(n int) []words.Word {
	out := make([]words.Word, n)
	for i := range out {
		out[i] = words.Word{
			ID:          string(rune('a' + i)),
			Text:        "w" + string(rune('a'+i)),
			Translation: "t" + string(rune('a'+i)),
		}
	}
	return out
}

func collectEvents() (Events, <-chan int, <-chan bool) {
	advances := make(chan int, 32)
	done := make(chan bool, 1)
	return Events{
		Advance: func(i int) { advances <- i },
		Done:    func(stopped bool) { done <- stopped },
	}, advances, done
}

func TestSchedulerRunsPlaylist(t *testing.T) {
	speaker := &fakeSpeaker{}
	cfg := Config{SourceVoice: "en", TargetVoice: "ru", BasePause: time.Millisecond}
	s := NewScheduler(speaker, cfg, zap.NewNop())

	ev, advances, done := collectEvents()
	s.Start(playlist(3), 0, ev)

	select {
	case stopped := <-done:
		if stopped {
			t.Fatal("reported stopped after a full run")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("playlist never finished")
	}

	var seen []int
	for len(advances) > 0 {
		seen = append(seen, <-advances)
	}
	if len(seen) != 3 || seen[0] != 0 || seen[2] != 2 {
		t.Fatalf("advances = %v, want [0 1 2]", seen)
	}

	// Each word narrates source then target.
	spoken := speaker.utterances()
	if len(spoken) != 6 {
		t.Fatalf("utterances = %d, want 6", len(spoken))
	}
	if spoken[0] != (utterance{text: "wa", voice: "en"}) {
		t.Fatalf("first utterance = %+v", spoken[0])
	}
	if spoken[1] != (utterance{text: "ta", voice: "ru"}) {
		t.Fatalf("second utterance = %+v", spoken[1])
	}
}

func TestSchedulerStartFromOffset(t *testing.T) {
	speaker := &fakeSpeaker{}
	s := NewScheduler(speaker, Config{SourceVoice: "en", BasePause: time.Millisecond}, zap.NewNop())

	ev, advances, done := collectEvents()
	s.Start(playlist(3), 2, ev)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("playlist never finished")
	}
	if i := <-advances; i != 2 {
		t.Fatalf("first advance = %d, want 2", i)
	}
}

func TestSchedulerStop(t *testing.T) {
	speaker := &fakeSpeaker{}
	s := NewScheduler(speaker, Config{SourceVoice: "en", BasePause: 10 * time.Second}, zap.NewNop())

	ev, advances, done := collectEvents()
	s.Start(playlist(3), 0, ev)

	select {
	case <-advances:
	case <-time.After(time.Second):
		t.Fatal("never advanced")
	}

	s.Stop()

	// The pause loop polls, so the stop lands well before the 10s pause.
	select {
	case stopped := <-done:
		if !stopped {
			t.Fatal("full-run completion after stop")
		}
	case <-time.After(time.Second):
		t.Fatal("stop not observed")
	}
	if s.Playing() {
		t.Fatal("still playing after stop")
	}
}

func TestSchedulerStartWhilePlaying(t *testing.T) {
	speaker := &fakeSpeaker{}
	s := NewScheduler(speaker, Config{SourceVoice: "en", BasePause: 10 * time.Second}, zap.NewNop())

	ev, advances, _ := collectEvents()
	s.Start(playlist(2), 0, ev)
	defer s.Stop()

	select {
	case <-advances:
	case <-time.After(time.Second):
		t.Fatal("never advanced")
	}

	// A second start must not spawn a second loop.
	s.Start(playlist(2), 0, ev)
	select {
	case i := <-advances:
		t.Fatalf("second loop advanced to %d", i)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestTargetVoice(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		voice string
		ok    bool
	}{
		{"explicit target", Config{SourceVoice: "en", TargetVoice: "ru"}, "ru", true},
		{"no target, skip", Config{SourceVoice: "en", SkipIfNoVoice: true}, "", false},
		{"no target, reuse source", Config{SourceVoice: "en"}, "en", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			voice, ok := targetVoice(tt.cfg)
			if voice != tt.voice || ok != tt.ok {
				t.Fatalf("targetVoice = (%q, %v), want (%q, %v)", voice, ok, tt.voice, tt.ok)
			}
		})
	}
}

func TestSchedulerSkipsTargetWithoutVoice(t *testing.T) {
	speaker := &fakeSpeaker{}
	cfg := Config{SourceVoice: "en", SkipIfNoVoice: true, BasePause: time.Millisecond}
	s := NewScheduler(speaker, cfg, zap.NewNop())

	ev, _, done := collectEvents()
	s.Start(playlist(2), 0, ev)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("playlist never finished")
	}

	for _, u := range speaker.utterances() {
		if u.voice != "en" || u.text[0] != 'w' {
			t.Fatalf("unexpected utterance %+v", u)
		}
	}
}
