// Package lending implements the lending ledger: an append-only loan history
// per book with at most one open loan at a time.
package lending

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/pkg/clock"
)

type bookRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	LockByID(ctx context.Context, id int64) error
	ClearReadingStatus(ctx context.Context, id int64) error
}

type lendingRepo interface {
	Create(ctx context.Context, bookID int64, borrowerID string, lentAt time.Time) (*domain.LendingRecord, error)
	GetActiveByBookID(ctx context.Context, bookID int64) (*domain.LendingRecord, error)
	CloseActive(ctx context.Context, bookID int64, returnedAt time.Time) (*domain.LendingRecord, error)
	ListByBookID(ctx context.Context, bookID int64) ([]domain.LendingRecord, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides lend/return transitions and the device scan entry point.
type Service struct {
	books    bookRepo
	lendings lendingRepo
	audit    auditLogger
	tx       txManager
	clock    clock.Clock
	log      *slog.Logger
}

// NewService creates a new lending service.
func NewService(
	log *slog.Logger,
	books bookRepo,
	lendings lendingRepo,
	audit auditLogger,
	tx txManager,
	clk clock.Clock,
) *Service {
	return &Service{
		books:    books,
		lendings: lendings,
		audit:    audit,
		tx:       tx,
		clock:    clk,
		log:      log.With("service", "lending"),
	}
}
