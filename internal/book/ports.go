package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=book

// Repository defines the contract for book data storage.
// Every returned Book carries its Author.
type Repository interface {
	FindAll(ctx context.Context) ([]Book, error)
	FindByID(ctx context.Context, id int64) (Book, error)
	FindWhere(ctx context.Context, spec FilterSpec) ([]Book, error)
	FindFavorites(ctx context.Context) ([]Book, error)
	SetFavorite(ctx context.Context, id int64, favorite bool) error
	Create(ctx context.Context, in CreateInput) (Book, error)
}
