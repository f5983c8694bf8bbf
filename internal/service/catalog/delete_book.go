package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/pkg/ctxutil"
)

// Delete removes a book together with its lending history and notes.
func (s *Service) Delete(ctx context.Context, bookID int64) error {
	actorID, _ := ctxutil.UserIDFromCtx(ctx)

	var (
		title        string
		loansRemoved int64
		notesRemoved int64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		book, getErr := s.books.GetByID(txCtx, bookID)
		if getErr != nil {
			return fmt.Errorf("get book: %w", getErr)
		}
		title = book.Title

		var delErr error
		loansRemoved, delErr = s.lendings.DeleteByBookID(txCtx, bookID)
		if delErr != nil {
			return fmt.Errorf("delete lending records: %w", delErr)
		}
		notesRemoved, delErr = s.notes.DeleteByBookID(txCtx, bookID)
		if delErr != nil {
			return fmt.Errorf("delete notes: %w", delErr)
		}
		if delErr = s.books.Delete(txCtx, bookID); delErr != nil {
			return fmt.Errorf("delete book: %w", delErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeBook,
			EntityID:   bookID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"title": map[string]any{"old": book.Title},
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

	s.log.InfoContext(ctx, "book deleted",
		slog.Int64("book_id", bookID),
		slog.String("title", title),
		slog.Int64("lending_records", loansRemoved),
		slog.Int64("notes", notesRemoved),
	)

	return nil
}
