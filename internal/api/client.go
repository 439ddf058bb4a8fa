// Package api is the client for the remote vocabulary API, the owner of
// all persistent state: words, groups and statistics.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/words"
)

const defaultTimeout = 15 * time.Second

// ErrNotFound is returned for 404 responses.
var ErrNotFound = errors.New("not found")

// Client talks JSON over HTTP to the vocabulary API. Words are cached
// after the first fetch; mutations invalidate the cache.
type Client struct {
	base   string
	token  string
	client *http.Client
	log    *zap.Logger

	mu    sync.Mutex
	cache []words.Word
}

// New creates a Client for the API at base.
func New(base, token string, log *zap.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		token:  token,
		client: &http.Client{Timeout: defaultTimeout},
		log:    log,
	}
}

var _ game.StatsSink = (*Client)(nil)
var _ game.StatusWriter = (*Client)(nil)

// Groups fetches all word groups.
func (c *Client) Groups(ctx context.Context) ([]words.Group, error) {
	var groups []words.Group
	if err := c.do(ctx, http.MethodGet, "/groups", nil, &groups); err != nil {
		return nil, fmt.Errorf("fetch groups: %w", err)
	}
	return groups, nil
}

// Words fetches the full word collection, serving the cached copy when
// present.
func (c *Client) Words(ctx context.Context) ([]words.Word, error) {
	c.mu.Lock()
	if c.cache != nil {
		cached := make([]words.Word, len(c.cache))
		copy(cached, c.cache)
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	var list []words.Word
	if err := c.do(ctx, http.MethodGet, "/words", nil, &list); err != nil {
		return nil, fmt.Errorf("fetch words: %w", err)
	}

	c.mu.Lock()
	c.cache = list
	c.mu.Unlock()

	out := make([]words.Word, len(list))
	copy(out, list)
	return out, nil
}

// InvalidateWords drops the word cache so the next Words call refetches.
func (c *Client) InvalidateWords() {
	c.mu.Lock()
	c.cache = nil
	c.mu.Unlock()
}

// UpdateWordStatus sets one word's learning status.
func (c *Client) UpdateWordStatus(ctx context.Context, wordID string, status words.Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status %q", status)
	}
	body := map[string]string{"status": string(status)}
	if err := c.do(ctx, http.MethodPatch, "/words/"+wordID+"/status", body, nil); err != nil {
		return fmt.Errorf("update word status: %w", err)
	}
	return nil
}

// DeleteWord removes a word. Cascading cleanup is the API's contract.
func (c *Client) DeleteWord(ctx context.Context, wordID string) error {
	if err := c.do(ctx, http.MethodDelete, "/words/"+wordID, nil, nil); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	c.InvalidateWords()
	return nil
}

// SubmitStat records a single answered item.
func (c *Client) SubmitStat(ctx context.Context, result game.StatResult) error {
	if err := c.do(ctx, http.MethodPost, "/stats", result, nil); err != nil {
		return fmt.Errorf("submit stat: %w", err)
	}
	return nil
}

// SubmitStatsBatch records a finished session's results in one write.
func (c *Client) SubmitStatsBatch(ctx context.Context, results []game.StatResult) error {
	if len(results) == 0 {
		return nil
	}
	payload := map[string][]game.StatResult{"results": results}
	if err := c.do(ctx, http.MethodPost, "/stats/batch", payload, nil); err != nil {
		return fmt.Errorf("submit stats batch: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("%s %s: HTTP %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
