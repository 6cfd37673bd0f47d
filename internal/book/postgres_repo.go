package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const foreignKeyViolation = "23503"

const selectBooks = `
	SELECT b.id, b.title, b.synopsis, b.genre::text, b.is_favorite, b.published_at, b.author_id,
	       b.created_at, b.updated_at,
	       a.id, a.name, a.birth_date
	FROM books b
	JOIN authors a ON a.id = b.author_id`

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

func (r *PostgresRepo) FindAll(ctx context.Context) ([]Book, error) {
	return r.query(ctx, selectBooks+" ORDER BY b.id")
}

func (r *PostgresRepo) FindFavorites(ctx context.Context) ([]Book, error) {
	return r.query(ctx, selectBooks+" WHERE b.is_favorite ORDER BY b.id")
}

func (r *PostgresRepo) FindWhere(ctx context.Context, spec FilterSpec) ([]Book, error) {
	where, args, err := whereClause(spec, 1)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, selectBooks+" WHERE "+where+" ORDER BY b.id", args...)
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	b, err := scanBook(r.db.QueryRow(timeoutCtx, selectBooks+" WHERE b.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	const sql = `UPDATE books SET is_favorite = $2, updated_at = NOW() WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, id, favorite)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Create(ctx context.Context, in CreateInput) (Book, error) {
	const sql = `
		WITH b AS (
			INSERT INTO books (title, synopsis, genre, is_favorite, published_at, author_id, created_at, updated_at)
			VALUES ($1, $2, $3::genre, $4, $5, $6, NOW(), NOW())
			RETURNING *
		)
		SELECT b.id, b.title, b.synopsis, b.genre::text, b.is_favorite, b.published_at, b.author_id,
		       b.created_at, b.updated_at,
		       a.id, a.name, a.birth_date
		FROM b
		JOIN authors a ON a.id = b.author_id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, sql,
		in.Title, in.Synopsis, string(in.Genre), in.IsFavorite, in.PublishedAt, in.AuthorID,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return Book{}, ErrAuthorNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) query(ctx context.Context, sql string, args ...any) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBook(row pgx.Row) (Book, error) {
	var (
		b     Book
		genre string
	)
	if err := row.Scan(
		&b.ID, &b.Title, &b.Synopsis, &genre, &b.IsFavorite, &b.PublishedAt, &b.AuthorID,
		&b.CreatedAt, &b.UpdatedAt,
		&b.Author.ID, &b.Author.Name, &b.Author.BirthDate,
	); err != nil {
		return Book{}, err
	}
	b.Genre = Genre(genre)
	b.GenreLabel = b.Genre.Label()
	return b, nil
}

// whereClause translates spec into a SQL condition over the books table
// aliased "b", numbering placeholders from argn.
func whereClause(spec FilterSpec, argn int) (string, []any, error) {
	switch spec.Kind {
	case FilterScalar:
		var col string
		switch spec.Column {
		case ColumnTitle:
			col = "b.title"
		case ColumnSynopsis:
			col = "b.synopsis"
		default:
			return "", nil, fmt.Errorf("unsupported scalar column %q", spec.Column)
		}
		return fmt.Sprintf(`%s ILIKE $%d ESCAPE '\'`, col, argn),
			[]any{spec.Match.LikePattern(spec.Query)}, nil
	case FilterRelated:
		if spec.Column != ColumnAuthorName {
			return "", nil, fmt.Errorf("unsupported related column %q", spec.Column)
		}
		return fmt.Sprintf(`EXISTS (SELECT 1 FROM authors ra WHERE ra.id = b.author_id AND ra.name ILIKE $%d ESCAPE '\')`, argn),
			[]any{spec.Match.LikePattern(spec.Query)}, nil
	case FilterGenreSet:
		symbols := make([]string, len(spec.Genres))
		for i, g := range spec.Genres {
			symbols[i] = string(g)
		}
		return fmt.Sprintf("b.genre::text = ANY($%d)", argn), []any{symbols}, nil
	}
	return "", nil, fmt.Errorf("unsupported filter kind %d", spec.Kind)
}
