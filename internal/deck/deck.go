// Package deck loads, verifies, and imports keyword/answer decks.
package deck

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/keyquiz/keyquiz/internal/docs"
	"github.com/keyquiz/keyquiz/internal/session"
)

var (
	//go:embed schema.json
	schemaJSON []byte

	//go:embed default.json
	defaultDeck []byte
)

var (
	ErrInvalid  = errors.New("invalid deck")
	ErrChecksum = errors.New("checksum verification failed")
)

// Deck is the on-disk deck format.
type Deck struct {
	Keywords []session.Entry      `json:"keywords"`
	Answers  []docs.ProblemAnswer `json:"answers,omitempty"`
}

// Default returns the deck bundled with the binary.
func Default() (*Deck, error) {
	return Parse(defaultDeck)
}

// Parse validates data against the deck schema and decodes it.
func Parse(data []byte) (*Deck, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &d, nil
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func deckSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse deck schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://deck.json"
		if err := c.AddResource(url, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}

func validate(data []byte) error {
	sch, err := deckSchema()
	if err != nil {
		return err
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrInvalid, err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
