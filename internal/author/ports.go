package author

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=author

type Repository interface {
	FindAll(ctx context.Context) ([]Author, error)
	FindByID(ctx context.Context, id int64) (Author, error)
	Create(ctx context.Context, in CreateInput) (Author, error)
}
