package importer

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresStore(db *pgxpool.Pool, timeout time.Duration) *PostgresStore {
	return &PostgresStore{db: db, timeout: timeout}
}

func (s *PostgresStore) ImportBatch(ctx context.Context, fn func(Batch) error) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return pgx.BeginFunc(timeoutCtx, s.db, func(tx pgx.Tx) error {
		return fn(&pgxBatch{tx: tx})
	})
}

type pgxBatch struct {
	tx pgx.Tx
}

// Upsert runs one record under a savepoint so a failed statement rolls back
// only that record, not the whole batch transaction.
func (b *pgxBatch) Upsert(ctx context.Context, rec Record) error {
	nested, err := b.tx.Begin(ctx)
	if err != nil {
		return err
	}
	if err := upsertRecord(ctx, nested, rec); err != nil {
		_ = nested.Rollback(ctx)
		return err
	}
	return nested.Commit(ctx)
}

func upsertRecord(ctx context.Context, tx pgx.Tx, rec Record) error {
	var categoryID int64
	if rec.CategoryName != "" {
		const categorySQL = `
			INSERT INTO categories (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`
		if err := tx.QueryRow(ctx, categorySQL, rec.CategoryName).Scan(&categoryID); err != nil {
			return err
		}
	}

	var author *string
	if rec.Author != "" {
		author = &rec.Author
	}

	var bookID int64
	err := tx.QueryRow(ctx, "SELECT id FROM books WHERE book_number = $1 LIMIT 1", rec.BookNumber).Scan(&bookID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		insertErr := tx.QueryRow(ctx,
			"INSERT INTO books (title, author, book_number) VALUES ($1, $2, $3) RETURNING id",
			rec.Title, author, rec.BookNumber).Scan(&bookID)
		if insertErr != nil {
			return insertErr
		}
	case err != nil:
		return err
	default:
		if _, err := tx.Exec(ctx,
			"UPDATE books SET title = $1, author = $2 WHERE id = $3", rec.Title, author, bookID); err != nil {
			return err
		}
	}

	if categoryID != 0 {
		if _, err := tx.Exec(ctx, "DELETE FROM book_categories WHERE book_id = $1", bookID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			"INSERT INTO book_categories (book_id, category_id) VALUES ($1, $2)", bookID, categoryID); err != nil {
			return err
		}
	}
	return nil
}
