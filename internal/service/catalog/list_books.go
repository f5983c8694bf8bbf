package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

// Search returns books whose title or author contains term, ignoring case,
// newest first. A blank term returns every book.
func (s *Service) Search(ctx context.Context, term string) ([]domain.Book, error) {
	books, err := s.books.Search(ctx, domain.NormalizeSearchTerm(term))
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return nonNil(books), nil
}

// ListBorrowedBy returns the books currently on loan to userID.
func (s *Service) ListBorrowedBy(ctx context.Context, userID string) ([]domain.Book, error) {
	if strings.TrimSpace(userID) == "" {
		return []domain.Book{}, nil
	}

	books, err := s.books.ListBorrowedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list borrowed books: %w", err)
	}
	return nonNil(books), nil
}

// ListLent returns the books userID currently has out on loan. Loans are
// private to the borrower; other users' loans are never listed.
func (s *Service) ListLent(ctx context.Context, userID string) ([]domain.Book, error) {
	books, err := s.ListBorrowedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list lent books: %w", err)
	}
	return books, nil
}

func nonNil(books []domain.Book) []domain.Book {
	if books == nil {
		return []domain.Book{}
	}
	return books
}
