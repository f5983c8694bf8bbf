package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

// Add attaches a note written by authorID to a book.
func (s *Service) Add(ctx context.Context, bookID int64, authorID, text string) (*domain.BookNote, error) {
	if err := validateCaller(authorID); err != nil {
		return nil, err
	}
	text, err := validateText(text)
	if err != nil {
		return nil, err
	}

	var note *domain.BookNote
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if lockErr := s.books.LockByID(txCtx, bookID); lockErr != nil {
			return fmt.Errorf("lock book: %w", lockErr)
		}

		var createErr error
		note, createErr = s.notes.Create(txCtx, bookID, authorID, text, s.clock.Now())
		if createErr != nil {
			return fmt.Errorf("create note: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    authorID,
			EntityType: domain.EntityTypeNote,
			EntityID:   note.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"book_id":   bookID,
				"note_text": map[string]any{"new": text},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note added",
		slog.Int64("book_id", bookID),
		slog.Int64("note_id", note.ID),
		slog.String("author_id", authorID),
	)

	return note, nil
}
