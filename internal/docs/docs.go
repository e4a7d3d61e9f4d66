// Package docs defines the keyword and answer document collections and an
// HTTP client that reads them from a document server.
package docs

import (
	"context"
	"errors"
	"fmt"

	"github.com/keyquiz/keyquiz/internal/session"
)

// Collection names.
const (
	CollectionKeyword = "keyword"
	CollectionAnswer  = "answer"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// FetchError wraps a failure to read a document collection.
type FetchError struct {
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s collection: %v", e.Collection, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ProblemAnswer is the answer sheet entry for one exam problem. Problem is
// encoded as round*100 + number.
type ProblemAnswer struct {
	Problem         int    `json:"problem"`
	Answer          int    `json:"answer"`
	Commentary      string `json:"commentary"`
	WrongCommentary string `json:"wrongCommentary"`
}

// Round returns the exam round the problem belongs to.
func (p ProblemAnswer) Round() int { return p.Problem / 100 }

// Number returns the problem number within its round.
func (p ProblemAnswer) Number() int { return p.Problem % 100 }

// KeywordSource provides the keyword collection.
type KeywordSource interface {
	FetchKeywords(ctx context.Context) ([]session.Entry, error)
}

// AnswerSource looks up answers by problem id.
type AnswerSource interface {
	FetchAnswer(ctx context.Context, problem int) (*ProblemAnswer, error)
}
