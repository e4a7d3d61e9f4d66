package docs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/collections/keyword", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"keyword":"가","explanation":"first"},{"keyword":"나","explanation":"second"}]`))
	})
	mux.HandleFunc("/v1/collections/answer/6501", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"problem":6501,"answer":3,"commentary":"c","wrongCommentary":"w"}`))
	})
	mux.HandleFunc("/v1/collections/answer/6502", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchKeywords(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(ClientConfig{BaseURL: srv.URL + "/"})

	entries, err := c.FetchKeywords(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "가", entries[0].Keyword)
	assert.Equal(t, "second", entries[1].Explanation)
}

func TestFetchAnswer(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(ClientConfig{BaseURL: srv.URL})

	ans, err := c.FetchAnswer(context.Background(), 6501)
	require.NoError(t, err)
	assert.Equal(t, 3, ans.Answer)
	assert.Equal(t, 65, ans.Round())
	assert.Equal(t, 1, ans.Number())
	assert.Equal(t, "w", ans.WrongCommentary)
}

func TestFetchAnswer_NotFound(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(ClientConfig{BaseURL: srv.URL})

	_, err := c.FetchAnswer(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, CollectionAnswer, fe.Collection)
}

func TestFetchAnswer_ServerError(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(ClientConfig{BaseURL: srv.URL})

	_, err := c.FetchAnswer(context.Background(), 6502)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestFetchKeywords_Unreachable(t *testing.T) {
	srv := newTestServer(t)
	url := srv.URL
	srv.Close()

	c := NewClient(ClientConfig{BaseURL: url})
	_, err := c.FetchKeywords(context.Background())

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, CollectionKeyword, fe.Collection)
}
