// Package catalog implements the book catalog: creation, mutation, deletion,
// lookup and search of books.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/pkg/clock"
)

type bookRepo interface {
	Create(ctx context.Context, f domain.BookFields, dateAdded time.Time) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	Update(ctx context.Context, id int64, f domain.BookFields) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]domain.Book, error)
	ListBorrowedBy(ctx context.Context, userID string) ([]domain.Book, error)
}

type noteRepo interface {
	ListByBookID(ctx context.Context, bookID int64) ([]domain.BookNote, error)
	DeleteByBookID(ctx context.Context, bookID int64) (int64, error)
}

type lendingRepo interface {
	DeleteByBookID(ctx context.Context, bookID int64) (int64, error)
}

type referenceValidator interface {
	Validate(ctx context.Context, genreID, formatID *int64) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides book catalog operations.
type Service struct {
	books    bookRepo
	notes    noteRepo
	lendings lendingRepo
	refs     referenceValidator
	audit    auditLogger
	tx       txManager
	clock    clock.Clock
	log      *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	books bookRepo,
	notes noteRepo,
	lendings lendingRepo,
	refs referenceValidator,
	audit auditLogger,
	tx txManager,
	clk clock.Clock,
) *Service {
	return &Service{
		books:    books,
		notes:    notes,
		lendings: lendings,
		refs:     refs,
		audit:    audit,
		tx:       tx,
		clock:    clk,
		log:      log.With("service", "catalog"),
	}
}
