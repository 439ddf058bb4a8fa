package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const fetchTimeout = 10 * time.Second

// playerCandidates are tried in order when no player command is
// configured.
var playerCandidates = []string{"mpv", "ffplay", "afplay", "mpg123"}

// TTS is a Speaker backed by the Google Translate text-to-speech
// endpoint (free, no API key) and a local audio player command. Fetched
// utterances are cached as MP3 files keyed by voice and text.
type TTS struct {
	cacheDir string
	player   string
	client   *http.Client
	log      *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewTTS creates a TTS speaker. When player is empty the first available
// candidate binary is used; ErrUnavailable is returned when none exists.
func NewTTS(cacheDir, player string, log *zap.Logger) (*TTS, error) {
	if player == "" {
		for _, c := range playerCandidates {
			if _, err := exec.LookPath(c); err == nil {
				player = c
				break
			}
		}
	}
	if player == "" {
		return nil, ErrUnavailable
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio cache dir: %w", err)
	}
	return &TTS{
		cacheDir: cacheDir,
		player:   player,
		client:   &http.Client{Timeout: fetchTimeout},
		log:      log,
	}, nil
}

// Speak fetches (or reuses) the utterance audio and blocks until the
// player finishes or the context is cancelled.
func (t *TTS) Speak(ctx context.Context, text, voice string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if voice == "" {
		voice = "en"
	}

	path, err := t.fetch(ctx, text, voice)
	if err != nil {
		return err
	}

	playCtx, cancel := context.WithCancel(ctx)
	t.mu.Lock()
	t.cancel = cancel
	t.mu.Unlock()
	defer func() {
		cancel()
		t.mu.Lock()
		t.cancel = nil
		t.mu.Unlock()
	}()

	cmd := exec.CommandContext(playCtx, t.player, t.playerArgs(path)...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		if playCtx.Err() != nil {
			return playCtx.Err()
		}
		return fmt.Errorf("play %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Cancel stops the in-flight utterance, if any.
func (t *TTS) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
}

func (t *TTS) playerArgs(path string) []string {
	switch filepath.Base(t.player) {
	case "mpv":
		return []string{"--no-video", "--really-quiet", path}
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
	default:
		return []string{path}
	}
}

// fetch downloads the utterance audio unless it is already cached.
func (t *TTS) fetch(ctx context.Context, text, voice string) (string, error) {
	name := fmt.Sprintf("%s_%s.mp3", voice, sanitize(text))
	path := filepath.Join(t.cacheDir, name)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", voice)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))
	endpoint := "https://translate.google.com/translate_tts?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch utterance: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch utterance: HTTP %d", resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write audio file: %w", err)
	}
	return path, nil
}

func sanitize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, s)
	if len(s) > 60 {
		s = s[:60]
	}
	return s
}

// Detect returns a TTS speaker when the environment supports playback,
// otherwise the logged no-op speaker.
func Detect(cacheDir, player string, log *zap.Logger) Speaker {
	sp, err := NewTTS(cacheDir, player, log)
	if err != nil {
		return NewNop(log)
	}
	return sp
}
