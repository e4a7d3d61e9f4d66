package deck

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"
)

// Source describes where a deck comes from and how to verify it.
type Source struct {
	// Location is a file path or an http(s) URL.
	Location string

	// SHA256 is the expected hex digest of the raw (possibly gzipped) bytes.
	SHA256 string

	// Checksums is a file path or URL of a "digest  name" listing; the
	// entry matching Location's base name is used when SHA256 is empty.
	Checksums string
}

// Loader reads deck bytes from files or HTTP.
type Loader struct {
	client *http.Client
}

// NewLoader creates a Loader. A nil client gets a 30 s timeout client.
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Loader{client: client}
}

// Load fetches, verifies, decompresses, and parses the deck at src.
func (l *Loader) Load(ctx context.Context, src Source) (*Deck, error) {
	raw, err := l.read(ctx, src.Location)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}

	expected := strings.ToLower(strings.TrimSpace(src.SHA256))
	if expected == "" && src.Checksums != "" {
		sums, err := l.read(ctx, src.Checksums)
		if err != nil {
			return nil, fmt.Errorf("read checksums: %w", err)
		}
		name := path.Base(src.Location)
		var ok bool
		if expected, ok = parseChecksums(sums)[name]; !ok {
			return nil, fmt.Errorf("%w: no checksum for %s", ErrChecksum, name)
		}
	}
	if expected != "" {
		if err := verifyChecksum(raw, expected); err != nil {
			return nil, err
		}
	}

	data, err := maybeGunzip(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress deck: %w", err)
	}
	return Parse(data)
}

func (l *Loader) read(ctx context.Context, loc string) ([]byte, error) {
	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		return l.download(ctx, loc)
	}
	return os.ReadFile(loc)
}

func (l *Loader) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

func parseChecksums(data []byte) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		result[parts[1]] = strings.ToLower(parts[0])
	}
	return result
}

func verifyChecksum(data []byte, expectedHex string) error {
	h := sha256.Sum256(data)
	actual := hex.EncodeToString(h[:])
	if actual != expectedHex {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, expectedHex, actual)
	}
	return nil
}

// maybeGunzip inflates gzip data and passes anything else through.
func maybeGunzip(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0x1f || data[1] != 0x8b {
		return data, nil
	}
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gz.Close()
	return io.ReadAll(gz)
}
