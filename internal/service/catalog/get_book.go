package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

// Get returns a book with its genre and format names, active loan and notes.
func (s *Service) Get(ctx context.Context, bookID int64) (*domain.Book, error) {
	var (
		book  *domain.Book
		notes []domain.BookNote
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		book, err = s.books.GetByID(gctx, bookID)
		if err != nil {
			return fmt.Errorf("get book: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		notes, err = s.notes.ListByBookID(gctx, bookID)
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if notes == nil {
		notes = []domain.BookNote{}
	}
	book.Notes = notes
	return book, nil
}
