package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/words"
)

func TestWordsCaching(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/words", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		fetches++
		_, _ = w.Write([]byte(`[{"id":"1","text":"cat","translation":"x","status":"unknown"}]`))
	}))
	defer server.Close()

	c := New(server.URL, "secret", zap.NewNop())
	ctx := context.Background()

	first, err := c.Words(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "cat", first[0].Text)

	_, err = c.Words(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fetches, "second call should hit the cache")

	// Callers get their own copy.
	first[0].Text = "mutated"
	again, err := c.Words(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cat", again[0].Text)

	c.InvalidateWords()
	_, err = c.Words(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches, "invalidation should refetch")
}

func TestGroups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/groups", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"g1","name":"Animals"},{"id":"g2","name":"Food"}]`))
	}))
	defer server.Close()

	c := New(server.URL, "", zap.NewNop())
	groups, err := c.Groups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Animals", groups[0].Name)
}

func TestUpdateWordStatus(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))
	defer server.Close()

	c := New(server.URL, "", zap.NewNop())
	require.NoError(t, c.UpdateWordStatus(context.Background(), "w1", words.StatusKnown))
	assert.Equal(t, "PATCH /words/w1/status", gotPath)
	assert.Equal(t, map[string]string{"status": "known"}, gotBody)

	err := c.UpdateWordStatus(context.Background(), "w1", words.StatusAll)
	require.Error(t, err, "wildcard status must not be stored")
}

func TestDeleteWordInvalidatesCache(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fetches++
			_, _ = w.Write([]byte(`[]`))
		case http.MethodDelete:
			require.Equal(t, "/words/w1", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL, "", zap.NewNop())
	ctx := context.Background()

	_, err := c.Words(ctx)
	require.NoError(t, err)
	require.NoError(t, c.DeleteWord(ctx, "w1"))
	_, err = c.Words(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestSubmitStatsBatch(t *testing.T) {
	var got map[string][]game.StatResult
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats/batch", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	c := New(server.URL, "", zap.NewNop())
	results := []game.StatResult{
		{WordID: "a", GameType: "choice", Correct: true},
		{WordID: "b", GameType: "choice", Correct: false},
	}
	require.NoError(t, c.SubmitStatsBatch(context.Background(), results))
	assert.Equal(t, results, got["results"])
}

func TestSubmitStatsBatchEmpty(t *testing.T) {
	// No request should go out for an empty batch.
	c := New("http://127.0.0.1:0", "", zap.NewNop())
	require.NoError(t, c.SubmitStatsBatch(context.Background(), nil))
}

func TestNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL, "", zap.NewNop())
	err := c.DeleteWord(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	c := New(server.URL, "", zap.NewNop())
	_, err := c.Groups(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
	assert.Contains(t, err.Error(), "boom")
}
