package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	clauses := []string{}
	args := []any{}
	argn := 1

	if strings.TrimSpace(q.Q) != "" {
		pattern := searchPattern(q.Q)
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d OR book_number ILIKE $%d)", argn, argn, argn))
		args = append(args, pattern)
		argn++
	}

	if q.CategoryID != 0 {
		clauses = append(clauses, fmt.Sprintf("id IN (SELECT book_id FROM book_categories WHERE category_id = $%d)", argn))
		args = append(args, q.CategoryID)
		argn++
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	offset := (q.Page - 1) * q.Limit

	idsSQL := fmt.Sprintf("SELECT id FROM books %s ORDER BY id DESC LIMIT $%d OFFSET $%d", where, argn, argn+1)
	idsArgs := append(append([]any{}, args...), q.Limit, offset)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, idsSQL, idsArgs...)
	if err != nil {
		return nil, 0, err
	}
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, 0, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	books := []Book{}
	if len(ids) > 0 {
		const detailSQL = `
			SELECT b.id, b.title, b.author, b.book_number, b.pdf_url, b.public_id,
			       COALESCE(array_agg(c.id ORDER BY c.id) FILTER (WHERE c.id IS NOT NULL), '{}'),
			       COALESCE(array_agg(c.name ORDER BY c.id) FILTER (WHERE c.id IS NOT NULL), '{}')
			FROM books b
			LEFT JOIN book_categories bc ON b.id = bc.book_id
			LEFT JOIN categories c ON bc.category_id = c.id
			WHERE b.id = ANY($1)
			GROUP BY b.id
			ORDER BY b.id DESC`

		detailCtx, cancelDetail := r.withTimeout(ctx)
		defer cancelDetail()
		detailRows, err := r.db.Query(detailCtx, detailSQL, ids)
		if err != nil {
			return nil, 0, err
		}
		defer detailRows.Close()
		for detailRows.Next() {
			var b Book
			if err := detailRows.Scan(&b.ID, &b.Title, &b.Author, &b.BookNumber, &b.PDFURL, &b.PublicID, &b.CategoryIDs, &b.CategoryNames); err != nil {
				return nil, 0, err
			}
			books = append(books, b)
		}
		if err := detailRows.Err(); err != nil {
			return nil, 0, err
		}
	}

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books %s", where)
	var total int
	countCtx, cancelCount := r.withTimeout(ctx)
	defer cancelCount()
	if err := r.db.QueryRow(countCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (r *PostgresRepo) Create(ctx context.Context, in CreateInput) (int64, error) {
	var pdfURL, publicID *string
	if in.PDF != nil {
		pdfURL = &in.PDF.URL
		publicID = &in.PDF.PublicID
	}

	var id int64
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := pgx.BeginFunc(timeoutCtx, r.db, func(tx pgx.Tx) error {
		const insertSQL = `
			INSERT INTO books (title, author, book_number, pdf_url, public_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`
		if err := tx.QueryRow(timeoutCtx, insertSQL, in.Title, in.Author, in.BookNumber, pdfURL, publicID).Scan(&id); err != nil {
			return err
		}
		for _, categoryID := range in.CategoryIDs {
			if _, err := tx.Exec(timeoutCtx,
				"INSERT INTO book_categories (book_id, category_id) VALUES ($1, $2)", id, categoryID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepo) Update(ctx context.Context, id int64, fields UpdateFields) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return pgx.BeginFunc(timeoutCtx, r.db, func(tx pgx.Tx) error {
		sets := []string{}
		args := []any{}
		argn := 1

		if fields.Title != nil {
			sets = append(sets, fmt.Sprintf("title = $%d", argn))
			args = append(args, *fields.Title)
			argn++
		}
		if fields.Author != nil {
			sets = append(sets, fmt.Sprintf("author = $%d", argn))
			args = append(args, *fields.Author)
			argn++
		}
		if fields.BookNumber != nil {
			sets = append(sets, fmt.Sprintf("book_number = $%d", argn))
			args = append(args, *fields.BookNumber)
			argn++
		}
		switch {
		case fields.SetPDF != nil:
			sets = append(sets, fmt.Sprintf("pdf_url = $%d, public_id = $%d", argn, argn+1))
			args = append(args, fields.SetPDF.URL, fields.SetPDF.PublicID)
			argn += 2
		case fields.ClearPDF:
			sets = append(sets, "pdf_url = NULL, public_id = NULL")
		}

		if len(sets) > 0 {
			updateSQL := fmt.Sprintf("UPDATE books SET %s WHERE id = $%d", strings.Join(sets, ", "), argn)
			args = append(args, id)
			tag, err := tx.Exec(timeoutCtx, updateSQL, args...)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return ErrNotFound
			}
		}

		if fields.CategoryIDs != nil {
			if _, err := tx.Exec(timeoutCtx, "DELETE FROM book_categories WHERE book_id = $1", id); err != nil {
				return err
			}
			for _, categoryID := range fields.CategoryIDs {
				if _, err := tx.Exec(timeoutCtx,
					"INSERT INTO book_categories (book_id, category_id) VALUES ($1, $2)", id, categoryID); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// FindPublicID returns the asset-store handle of a book's attachment, or ""
// when the book has none or does not exist.
func (r *PostgresRepo) FindPublicID(ctx context.Context, id int64) (string, error) {
	var publicID *string
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, "SELECT public_id FROM books WHERE id = $1", id).Scan(&publicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	if publicID == nil {
		return "", nil
	}
	return *publicID, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, "DELETE FROM books WHERE id = $1", id)
	return err
}
