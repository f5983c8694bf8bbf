package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

// Update replaces the text of a note. Only the note's author may do so;
// anyone else gets domain.ErrForbidden whatever the text, and the note is
// unchanged. The text is validated after authorship.
func (s *Service) Update(ctx context.Context, noteID int64, callerID, text string) (*domain.BookNote, error) {
	if err := validateCaller(callerID); err != nil {
		return nil, err
	}

	var updated *domain.BookNote
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.notes.GetByIDForUpdate(txCtx, noteID)
		if getErr != nil {
			return fmt.Errorf("get note: %w", getErr)
		}
		if !old.IsAuthoredBy(callerID) {
			return fmt.Errorf("note %d: %w", noteID, domain.ErrForbidden)
		}

		var textErr error
		text, textErr = validateText(text)
		if textErr != nil {
			return textErr
		}

		var updateErr error
		updated, updateErr = s.notes.Update(txCtx, noteID, text, s.clock.Now())
		if updateErr != nil {
			return fmt.Errorf("update note: %w", updateErr)
		}

		if old.Text == text {
			return nil
		}
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    callerID,
			EntityType: domain.EntityTypeNote,
			EntityID:   noteID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"note_text": map[string]any{"old": old.Text, "new": text},
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

	s.log.InfoContext(ctx, "note updated",
		slog.Int64("note_id", noteID),
		slog.String("author_id", callerID),
	)

	return updated, nil
}
