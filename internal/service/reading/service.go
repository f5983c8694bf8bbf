// Package reading tracks the reader's progress through a book.
package reading

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/pkg/ctxutil"
)

type bookRepo interface {
	SetReadingStatus(ctx context.Context, id int64, status domain.ReadingStatus, completedAt *time.Time) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service sets reading status and completion date.
type Service struct {
	books bookRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new reading status service.
func NewService(log *slog.Logger, books bookRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		books: books,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "reading"),
	}
}

// SetStatus overwrites the reading status and completion date of a book.
// rawStatus accepts the display label or the enum name in any case.
func (s *Service) SetStatus(ctx context.Context, bookID int64, rawStatus string, completedAt *time.Time) error {
	status, ok := domain.ParseReadingStatus(rawStatus)
	if !ok {
		return domain.NewValidationError("status", fmt.Sprintf("unknown reading status %q", rawStatus))
	}

	actorID, _ := ctxutil.UserIDFromCtx(ctx)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.books.SetReadingStatus(txCtx, bookID, status, completedAt); err != nil {
			return fmt.Errorf("set reading status: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeBook,
			EntityID:   bookID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"reading_status":  map[string]any{"new": string(status)},
				"completion_date": map[string]any{"new": completedAt},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "reading status set",
		slog.Int64("book_id", bookID),
		slog.String("status", string(status)),
	)

	return nil
}
