// Package config reads client configuration from environment variables,
// with an optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all client configuration.
type Config struct {
	// APIBaseURL is the vocabulary API root, e.g. https://api.example.com/v1.
	APIBaseURL string

	// APIToken is sent as a bearer token on every request.
	APIToken string

	// AudioCacheDir stores fetched narration audio.
	AudioCacheDir string

	// PlayerCmd overrides the audio player binary used for narration.
	PlayerCmd string

	// BasePause is the narration pause unit for listen-and-repeat.
	BasePause time.Duration

	// Debug enables verbose logging.
	Debug bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:    os.Getenv("WORDGYM_API_URL"),
		APIToken:      os.Getenv("WORDGYM_API_TOKEN"),
		AudioCacheDir: os.Getenv("WORDGYM_AUDIO_DIR"),
		PlayerCmd:     os.Getenv("WORDGYM_PLAYER"),
		BasePause:     1500 * time.Millisecond,
		Debug:         os.Getenv("WORDGYM_DEBUG") != "",
	}

	if v := os.Getenv("WORDGYM_BASE_PAUSE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("WORDGYM_BASE_PAUSE: %w", err)
		}
		cfg.BasePause = d
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("WORDGYM_API_URL is required")
	}

	if cfg.AudioCacheDir == "" {
		dir, err := defaultAudioDir()
		if err != nil {
			return nil, err
		}
		cfg.AudioCacheDir = dir
	}

	return cfg, nil
}

func defaultAudioDir() (string, error) {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "wordgym", "audio"), nil
}
