// Package reference validates and lists the genre and format lookups that
// books point to.
package reference

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

type referenceRepo interface {
	GenreExists(ctx context.Context, id int64) (bool, error)
	FormatExists(ctx context.Context, id int64) (bool, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	ListFormats(ctx context.Context) ([]domain.Format, error)
}

// Service answers reference existence questions. Answers are cached per id;
// lookup errors are never cached.
type Service struct {
	repo    referenceRepo
	genres  *lru.Cache[int64, bool]
	formats *lru.Cache[int64, bool]
	log     *slog.Logger
}

// NewService creates a reference service with caches of cacheSize entries
// per kind.
func NewService(log *slog.Logger, repo referenceRepo, cacheSize int) (*Service, error) {
	genres, err := lru.New[int64, bool](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("genre cache: %w", err)
	}
	formats, err := lru.New[int64, bool](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("format cache: %w", err)
	}

	return &Service{
		repo:    repo,
		genres:  genres,
		formats: formats,
		log:     log.With("service", "reference"),
	}, nil
}

// GenreExists reports whether id is absent or names an existing genre.
func (s *Service) GenreExists(ctx context.Context, id *int64) (bool, error) {
	return s.exists(ctx, id, s.genres, s.repo.GenreExists)
}

// FormatExists reports whether id is absent or names an existing format.
func (s *Service) FormatExists(ctx context.Context, id *int64) (bool, error) {
	return s.exists(ctx, id, s.formats, s.repo.FormatExists)
}

// Validate checks genre then format and returns a *domain.ReferenceError for
// the first one that does not resolve.
func (s *Service) Validate(ctx context.Context, genreID, formatID *int64) error {
	ok, err := s.GenreExists(ctx, genreID)
	if err != nil {
		return fmt.Errorf("check genre: %w", err)
	}
	if !ok {
		return &domain.ReferenceError{Kind: "genre", ID: *genreID}
	}

	ok, err = s.FormatExists(ctx, formatID)
	if err != nil {
		return fmt.Errorf("check format: %w", err)
	}
	if !ok {
		return &domain.ReferenceError{Kind: "format", ID: *formatID}
	}

	return nil
}

// ListGenres returns all genres ordered by name.
func (s *Service) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	genres, err := s.repo.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

// ListFormats returns all formats ordered by name.
func (s *Service) ListFormats(ctx context.Context) ([]domain.Format, error) {
	formats, err := s.repo.ListFormats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list formats: %w", err)
	}
	return formats, nil
}

func (s *Service) exists(
	ctx context.Context,
	id *int64,
	cache *lru.Cache[int64, bool],
	lookup func(context.Context, int64) (bool, error),
) (bool, error) {
	if id == nil {
		return true, nil
	}
	if ok, hit := cache.Get(*id); hit {
		return ok, nil
	}

	ok, err := lookup(ctx, *id)
	if err != nil {
		return false, err
	}
	cache.Add(*id, ok)

	if !ok {
		s.log.DebugContext(ctx, "reference not found", slog.Int64("id", *id))
	}
	return ok, nil
}
