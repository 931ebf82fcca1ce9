package video

import (
	"context"
	"time"

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

func (r *PostgresRepo) List(ctx context.Context) ([]Video, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx,
		"SELECT id, title, youtube_url, academic_year FROM videos ORDER BY academic_year DESC, title ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Video{}
	for rows.Next() {
		var v Video
		if err := rows.Scan(&v.ID, &v.Title, &v.YouTubeURL, &v.AcademicYear); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, v Video) (int64, error) {
	var id int64
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx,
		"INSERT INTO videos (title, youtube_url, academic_year) VALUES ($1, $2, $3) RETURNING id",
		v.Title, v.YouTubeURL, v.AcademicYear).Scan(&id)
	return id, err
}

func (r *PostgresRepo) Update(ctx context.Context, v Video) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx,
		"UPDATE videos SET title = $1, youtube_url = $2, academic_year = $3 WHERE id = $4",
		v.Title, v.YouTubeURL, v.AcademicYear, v.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, "DELETE FROM videos WHERE id = $1", id)
	return err
}
