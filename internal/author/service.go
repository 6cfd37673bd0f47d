package author

import (
	"context"

	"go.uber.org/zap"
)

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger.Named("author")}
}

func (s *Service) List(ctx context.Context) ([]Author, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Author, error) {
	if err := in.Validate(); err != nil {
		return Author{}, err
	}
	a, err := s.repo.Create(ctx, in)
	if err != nil {
		return Author{}, err
	}
	s.logger.Info("author created", zap.Int64("id", a.ID))
	return a, nil
}
