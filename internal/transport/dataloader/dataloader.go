// Package dataloader provides per-request loaders that batch the per-book
// lookups of list responses into single SQL calls. Loaders call
// repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type noteRepo interface {
	ListByBookIDs(ctx context.Context, bookIDs []int64) ([]domain.BookNote, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Note noteRepo
}

// Loaders contains the per-request loader instances. Create one set per
// request via NewLoaders; results are cached for the request's lifetime.
type Loaders struct {
	NotesByBookID *dataloader.Loader[int64, []domain.BookNote]
}

// NewLoaders creates a new set of loaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		NotesByBookID: newLoader(newNotesBatchFn(repos.Note)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
