package docs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/keyquiz/keyquiz/internal/session"
)

// ClientConfig holds configuration for the document server client.
type ClientConfig struct {
	// BaseURL is the document server root, e.g. http://localhost:8080.
	BaseURL string

	// Timeout bounds every request.
	Timeout time.Duration
}

// DefaultClientConfig returns the default client configuration.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: "http://localhost:8080",
		Timeout: 10 * time.Second,
	}
}

// Client reads document collections over HTTP.
type Client struct {
	base   string
	client *http.Client
}

// NewClient creates a Client for cfg.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultClientConfig().Timeout
	}
	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// FetchKeywords returns every entry of the keyword collection.
func (c *Client) FetchKeywords(ctx context.Context) ([]session.Entry, error) {
	var entries []session.Entry
	if err := c.getJSON(ctx, "/v1/collections/keyword", &entries); err != nil {
		return nil, &FetchError{Collection: CollectionKeyword, Err: err}
	}
	return entries, nil
}

// FetchAnswer returns the answer for problem, or ErrNotFound.
func (c *Client) FetchAnswer(ctx context.Context, problem int) (*ProblemAnswer, error) {
	var ans ProblemAnswer
	path := "/v1/collections/answer/" + url.PathEscape(strconv.Itoa(problem))
	if err := c.getJSON(ctx, path, &ans); err != nil {
		return nil, &FetchError{Collection: CollectionAnswer, Err: err}
	}
	return &ans, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
