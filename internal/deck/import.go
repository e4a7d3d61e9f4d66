package deck

import (
	"context"
	"fmt"

	"github.com/keyquiz/keyquiz/internal/docs"
	"github.com/keyquiz/keyquiz/internal/session"
)

// KeywordWriter stores keyword entries.
type KeywordWriter interface {
	UpsertKeywords(ctx context.Context, entries []session.Entry) (int, error)
	CountKeywords(ctx context.Context) (int, error)
}

// AnswerWriter stores problem answers.
type AnswerWriter interface {
	UpsertAnswers(ctx context.Context, answers []docs.ProblemAnswer) (int, error)
}

// Result reports how many documents an import wrote.
type Result struct {
	Keywords int
	Answers  int
}

// Import writes the deck's collections.
func Import(ctx context.Context, d *Deck, kw KeywordWriter, aw AnswerWriter) (Result, error) {
	var res Result
	n, err := kw.UpsertKeywords(ctx, d.Keywords)
	if err != nil {
		return res, fmt.Errorf("import keywords: %w", err)
	}
	res.Keywords = n

	n, err = aw.UpsertAnswers(ctx, d.Answers)
	if err != nil {
		return res, fmt.Errorf("import answers: %w", err)
	}
	res.Answers = n
	return res, nil
}

// SeedIfEmpty imports the bundled deck when the keyword collection is
// empty. It reports whether seeding happened.
func SeedIfEmpty(ctx context.Context, kw KeywordWriter, aw AnswerWriter) (bool, error) {
	n, err := kw.CountKeywords(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	d, err := Default()
	if err != nil {
		return false, fmt.Errorf("load bundled deck: %w", err)
	}
	if _, err := Import(ctx, d, kw, aw); err != nil {
		return false, err
	}
	return true, nil
}
