package book

import (
	"context"

	"bookcatalog/internal/metrics"

	"go.uber.org/zap"
)

// Service provides book-related business logic.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new book service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger.Named("book")}
}

// List returns every book.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.FindAll(ctx)
}

// Get returns a book by its ID.
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Search runs a single-field search. Results keep storage order and storage
// errors are returned as is.
func (s *Service) Search(ctx context.Context, query string, match MatchType, field SearchField) ([]Book, error) {
	if query == "" {
		return []Book{}, nil
	}
	metrics.IncSearch(string(field), string(match))
	s.logger.Debug("search",
		zap.String("query", query),
		zap.String("match_type", string(match)),
		zap.String("field", string(field)),
	)

	var spec FilterSpec
	switch field {
	case FieldTitle:
		spec = BuildScalarMatch(ColumnTitle, query, match)
	case FieldSynopsis:
		spec = BuildScalarMatch(ColumnSynopsis, query, match)
	case FieldAuthor:
		spec = BuildRelatedMatch(query, match)
	case FieldGenre:
		set := BuildEnumMatch(genres, query, match)
		if len(set) == 0 {
			metrics.IncSearchShortCircuit(string(field))
			return []Book{}, nil
		}
		spec = GenreSetFilter(set)
	default:
		return nil, ErrInvalidSearchField
	}

	books, err := s.repo.FindWhere(ctx, spec)
	if err != nil {
		return nil, err
	}
	metrics.ObserveSearchResults(string(field), len(books))
	return books, nil
}

// Favorites returns the favorite books narrowed and ordered by q.
func (s *Service) Favorites(ctx context.Context, q LibraryQuery) ([]Book, error) {
	books, err := s.repo.FindFavorites(ctx)
	if err != nil {
		return nil, err
	}
	return q.Apply(books), nil
}

// AddFavorite marks a book as favorite.
func (s *Service) AddFavorite(ctx context.Context, id int64) error {
	return s.repo.SetFavorite(ctx, id, true)
}

// RemoveFavorite clears the favorite flag of a book.
func (s *Service) RemoveFavorite(ctx context.Context, id int64) error {
	return s.repo.SetFavorite(ctx, id, false)
}

// Create validates and stores a new book.
func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	if err := in.Validate(); err != nil {
		return Book{}, err
	}
	b, err := s.repo.Create(ctx, in)
	if err != nil {
		return Book{}, err
	}
	s.logger.Info("book created", zap.Int64("id", b.ID), zap.Int64("author_id", b.AuthorID))
	return b, nil
}

// Genres lists the genre enumeration with display labels.
func (s *Service) Genres() []GenreInfo {
	return GenreCatalog()
}
