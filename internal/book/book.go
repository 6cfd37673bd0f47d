package book

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrAuthorNotFound is returned when a book references an author that does not exist.
	ErrAuthorNotFound = errors.New("author not found")
	// ErrInvalidInput is returned when create input fails validation.
	ErrInvalidInput = errors.New("invalid book input")
)

// Author is the author as embedded in book reads.
type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
}

// Book represents a book entity joined with its author.
type Book struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Synopsis    string    `json:"synopsis"`
	Genre       Genre     `json:"genre"`
	GenreLabel  string    `json:"genre_label"`
	IsFavorite  bool      `json:"is_favorite"`
	PublishedAt time.Time `json:"published_at"`
	AuthorID    int64     `json:"author_id"`
	Author      Author    `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateInput holds the data needed to create a book.
type CreateInput struct {
	Title       string
	Synopsis    string
	Genre       Genre
	PublishedAt time.Time
	AuthorID    int64
	IsFavorite  bool
}

// Validate checks the fields storage relies on.
func (in CreateInput) Validate() error {
	if in.Title == "" || in.AuthorID <= 0 || in.PublishedAt.IsZero() {
		return ErrInvalidInput
	}
	if !in.Genre.Valid() {
		return ErrInvalidGenre
	}
	return nil
}
