package lending

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/pkg/ctxutil"
)

// Lend opens a loan of bookID to borrowerID at date. The book row is locked
// for the transaction so concurrent lends of one book serialize; the second
// one sees the open loan and fails with domain.ErrAlreadyLent.
func (s *Service) Lend(ctx context.Context, bookID int64, borrowerID string, date time.Time) (*domain.LendingRecord, error) {
	borrowerID = strings.TrimSpace(borrowerID)
	if borrowerID == "" {
		return nil, domain.NewValidationError("borrower_id", "required")
	}

	var record *domain.LendingRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.books.LockByID(txCtx, bookID); err != nil {
			return fmt.Errorf("lock book: %w", err)
		}

		active, err := s.lendings.GetActiveByBookID(txCtx, bookID)
		switch {
		case err == nil:
			return fmt.Errorf("book %d lent to %s: %w", bookID, active.BorrowerID, domain.ErrAlreadyLent)
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get active loan: %w", err)
		}

		record, err = s.lendings.Create(txCtx, bookID, borrowerID, date)
		if err != nil {
			return fmt.Errorf("create loan: %w", err)
		}

		return s.logLoan(txCtx, record, domain.AuditActionCreate, map[string]any{
			"borrower_id":  map[string]any{"new": borrowerID},
			"lending_date": map[string]any{"new": date},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "book lent",
		slog.Int64("book_id", bookID),
		slog.Int64("loan_id", record.ID),
		slog.String("borrower_id", borrowerID),
	)

	return record, nil
}

// Return closes the open loan of bookID at date and resets the book's
// reading status, so the book reads "Available" afterwards. It fails with
// domain.ErrNotCurrentlyLent when the book is available.
func (s *Service) Return(ctx context.Context, bookID int64, date time.Time) (*domain.LendingRecord, error) {
	var record *domain.LendingRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.books.LockByID(txCtx, bookID); err != nil {
			return fmt.Errorf("lock book: %w", err)
		}

		var err error
		record, err = s.lendings.CloseActive(txCtx, bookID, date)
		if err != nil {
			return fmt.Errorf("close loan: %w", err)
		}

		if err := s.books.ClearReadingStatus(txCtx, bookID); err != nil {
			return fmt.Errorf("clear reading status: %w", err)
		}

		return s.logLoan(txCtx, record, domain.AuditActionUpdate, map[string]any{
			"is_returned": map[string]any{"old": false, "new": true},
			"return_date": map[string]any{"new": date},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "book returned",
		slog.Int64("book_id", bookID),
		slog.Int64("loan_id", record.ID),
		slog.String("borrower_id", record.BorrowerID),
	)

	return record, nil
}

// History returns the full loan ledger of a book, newest first.
func (s *Service) History(ctx context.Context, bookID int64) ([]domain.LendingRecord, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	records, err := s.lendings.ListByBookID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	if records == nil {
		records = []domain.LendingRecord{}
	}
	return records, nil
}

func (s *Service) logLoan(ctx context.Context, record *domain.LendingRecord, action domain.AuditAction, changes map[string]any) error {
	actorID, _ := ctxutil.UserIDFromCtx(ctx)
	changes["book_id"] = record.BookID

	if err := s.audit.Log(ctx, domain.AuditRecord{
		ActorID:    actorID,
		EntityType: domain.EntityTypeLoan,
		EntityID:   record.ID,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
