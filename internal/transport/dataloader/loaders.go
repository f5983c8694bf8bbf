package dataloader

import (
	"context"
	"fmt"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

func newNotesBatchFn(repo noteRepo) dataloader.BatchFunc[int64, []domain.BookNote] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[[]domain.BookNote] {
		notes, err := repo.ListByBookIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.BookNote](len(keys), err)
		}

		grouped := make(map[int64][]domain.BookNote, len(keys))
		for _, n := range notes {
			grouped[n.BookID] = append(grouped[n.BookID], n)
		}

		return mapResults(keys, grouped, emptySlice[domain.BookNote])
	}
}

// AttachNotes fills Notes on every book with one batched lookup.
func AttachNotes(ctx context.Context, books []domain.Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]int64, len(books))
	for i := range books {
		ids[i] = books[i].ID
	}

	notes, errs := FromContext(ctx).NotesByBookID.LoadMany(ctx, ids)()
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("load notes for book %d: %w", ids[i], err)
		}
	}
	for i := range books {
		books[i].Notes = notes[i]
	}
	return nil
}

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
