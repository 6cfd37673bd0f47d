package author

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectAuthors = `SELECT id, name, birth_date, created_at, updated_at FROM authors`

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

func (r *PostgresRepo) FindAll(ctx context.Context) ([]Author, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, selectAuthors+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Author, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	a, err := scanAuthor(r.db.QueryRow(timeoutCtx, selectAuthors+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) Create(ctx context.Context, in CreateInput) (Author, error) {
	const query = `
	INSERT INTO authors (name, birth_date, created_at, updated_at)
	VALUES ($1, $2, NOW(), NOW())
	RETURNING id, name, birth_date, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanAuthor(r.db.QueryRow(timeoutCtx, query, in.Name, in.BirthDate))
}

func scanAuthor(row pgx.Row) (Author, error) {
	var a Author
	if err := row.Scan(&a.ID, &a.Name, &a.BirthDate, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return Author{}, err
	}
	return a, nil
}
