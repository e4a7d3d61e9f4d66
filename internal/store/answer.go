package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/keyquiz/keyquiz/internal/docs"
)

// AnswerRepo is the local problem answer collection.
type AnswerRepo struct {
	drv *entsql.Driver
}

// FetchAnswer returns the answer for problem, or docs.ErrNotFound.
func (r *AnswerRepo) FetchAnswer(ctx context.Context, problem int) (*docs.ProblemAnswer, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("problem", "answer", "commentary", "wrong_commentary").
		From(entsql.Table(ProblemAnswersTable.Name)).
		Where(entsql.EQ("problem", problem)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query answer %d: %w", problem, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query answer %d: %w", problem, err)
		}
		return nil, docs.ErrNotFound
	}
	var a docs.ProblemAnswer
	if err := rows.Scan(&a.Problem, &a.Answer, &a.Commentary, &a.WrongCommentary); err != nil {
		return nil, fmt.Errorf("scan answer: %w", err)
	}
	return &a, nil
}

// ListAnswers returns every stored answer ordered by problem id.
func (r *AnswerRepo) ListAnswers(ctx context.Context) ([]docs.ProblemAnswer, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("problem", "answer", "commentary", "wrong_commentary").
		From(entsql.Table(ProblemAnswersTable.Name)).
		OrderBy("problem").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []docs.ProblemAnswer
	for rows.Next() {
		var a docs.ProblemAnswer
		if err := rows.Scan(&a.Problem, &a.Answer, &a.Commentary, &a.WrongCommentary); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpsertAnswers inserts answers, replacing existing problems.
func (r *AnswerRepo) UpsertAnswers(ctx context.Context, answers []docs.ProblemAnswer) (int, error) {
	if len(answers) == 0 {
		return 0, nil
	}
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	for _, a := range answers {
		query, args := entsql.Dialect(dialect.SQLite).
			Insert(ProblemAnswersTable.Name).
			Columns("problem", "answer", "commentary", "wrong_commentary").
			Values(a.Problem, a.Answer, a.Commentary, a.WrongCommentary).
			OnConflict(
				entsql.ConflictColumns("problem"),
				entsql.ResolveWithNewValues(),
			).
			Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("upsert answer %d: %w", a.Problem, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit answers: %w", err)
	}
	return len(answers), nil
}

// CountAnswers returns the size of the answer collection.
func (r *AnswerRepo) CountAnswers(ctx context.Context) (int, error) {
	return count(ctx, r.drv, ProblemAnswersTable.Name)
}
