package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

// Delete removes a note. Only the note's author may do so.
func (s *Service) Delete(ctx context.Context, noteID int64, callerID string) error {
	if err := validateCaller(callerID); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		note, getErr := s.notes.GetByIDForUpdate(txCtx, noteID)
		if getErr != nil {
			return fmt.Errorf("get note: %w", getErr)
		}
		if !note.IsAuthoredBy(callerID) {
			return fmt.Errorf("note %d: %w", noteID, domain.ErrForbidden)
		}

		if delErr := s.notes.Delete(txCtx, noteID); delErr != nil {
			return fmt.Errorf("delete note: %w", delErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    callerID,
			EntityType: domain.EntityTypeNote,
			EntityID:   noteID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"book_id":   note.BookID,
				"note_text": map[string]any{"old": note.Text},
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

	s.log.InfoContext(ctx, "note deleted",
		slog.Int64("note_id", noteID),
		slog.String("author_id", callerID),
	)

	return nil
}
