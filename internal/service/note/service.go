// Package note implements per-book annotations that only their author may
// change or delete.
package note

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/pkg/clock"
)

type bookRepo interface {
	LockByID(ctx context.Context, id int64) error
}

type noteRepo interface {
	Create(ctx context.Context, bookID int64, authorID, text string, createdAt time.Time) (*domain.BookNote, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.BookNote, error)
	Update(ctx context.Context, id int64, text string, modifiedAt time.Time) (*domain.BookNote, error)
	Delete(ctx context.Context, id int64) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides note operations.
type Service struct {
	books bookRepo
	notes noteRepo
	audit auditLogger
	tx    txManager
	clock clock.Clock
	log   *slog.Logger
}

// NewService creates a new note service.
func NewService(
	log *slog.Logger,
	books bookRepo,
	notes noteRepo,
	audit auditLogger,
	tx txManager,
	clk clock.Clock,
) *Service {
	return &Service{
		books: books,
		notes: notes,
		audit: audit,
		tx:    tx,
		clock: clk,
		log:   log.With("service", "note"),
	}
}

// validateText trims text and checks it against the note length bounds.
func validateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", domain.NewValidationError("note_text", "required")
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxNoteLength {
		return "", domain.NewValidationError("note_text", "max 2000 characters")
	}
	return trimmed, nil
}

func validateCaller(callerID string) error {
	if strings.TrimSpace(callerID) == "" {
		return domain.ErrUnauthorized
	}
	return nil
}
