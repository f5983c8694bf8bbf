// Package reference implements read access to the genre and format lookup
// tables.
package reference

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

// Repo provides genre/format lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reference repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	genreExistsSQL  = `SELECT EXISTS(SELECT 1 FROM genres WHERE id = $1)`
	formatExistsSQL = `SELECT EXISTS(SELECT 1 FROM formats WHERE id = $1)`
	listGenresSQL   = `SELECT id, name FROM genres ORDER BY name`
	listFormatsSQL  = `SELECT id, name FROM formats ORDER BY name`
)

// GenreExists reports whether a genre with id exists.
func (r *Repo) GenreExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, genreExistsSQL, id)
}

// FormatExists reports whether a format with id exists.
func (r *Repo) FormatExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, formatExistsSQL, id)
}

// ListGenres returns all genres ordered by name.
func (r *Repo) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	var genres []domain.Genre
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &genres, listGenresSQL); err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	if genres == nil {
		genres = []domain.Genre{}
	}
	return genres, nil
}

// ListFormats returns all formats ordered by name.
func (r *Repo) ListFormats(ctx context.Context) ([]domain.Format, error) {
	var formats []domain.Format
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &formats, listFormatsSQL); err != nil {
		return nil, fmt.Errorf("list formats: %w", err)
	}
	if formats == nil {
		formats = []domain.Format{}
	}
	return formats, nil
}

func (r *Repo) exists(ctx context.Context, query string, id int64) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("reference lookup %d: %w", id, err)
	}
	return ok, nil
}
