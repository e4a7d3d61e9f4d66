package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/keyquiz/keyquiz/internal/session"
)

// KeywordRepo is the local keyword collection.
type KeywordRepo struct {
	drv *entsql.Driver
}

// FetchKeywords returns every keyword entry in insertion order.
func (r *KeywordRepo) FetchKeywords(ctx context.Context) ([]session.Entry, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("keyword", "explanation").
		From(entsql.Table(KeywordsTable.Name)).
		OrderBy("id").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query keywords: %w", err)
	}
	defer rows.Close()

	var entries []session.Entry
	for rows.Next() {
		var e session.Entry
		if err := rows.Scan(&e.Keyword, &e.Explanation); err != nil {
			return nil, fmt.Errorf("scan keyword: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpsertKeywords inserts entries, replacing the explanation of keywords
// that already exist. It returns the number of entries written.
func (r *KeywordRepo) UpsertKeywords(ctx context.Context, entries []session.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	for _, e := range entries {
		query, args := entsql.Dialect(dialect.SQLite).
			Insert(KeywordsTable.Name).
			Columns("keyword", "explanation").
			Values(e.Keyword, e.Explanation).
			OnConflict(
				entsql.ConflictColumns("keyword"),
				entsql.ResolveWithNewValues(),
			).
			Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("upsert keyword %q: %w", e.Keyword, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit keywords: %w", err)
	}
	return len(entries), nil
}

// CountKeywords returns the size of the keyword collection.
func (r *KeywordRepo) CountKeywords(ctx context.Context) (int, error) {
	return count(ctx, r.drv, KeywordsTable.Name)
}

func count(ctx context.Context, drv *entsql.Driver, table string) (int, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*")).
		From(entsql.Table(table)).
		Query()

	var rows entsql.Rows
	if err := drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	defer rows.Close()

	n, err := entsql.ScanInt(rows)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
