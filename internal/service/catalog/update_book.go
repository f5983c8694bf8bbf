package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/pkg/ctxutil"
)

// Update replaces the catalog fields of an existing book. Reading status,
// loans and notes are untouched.
func (s *Service) Update(ctx context.Context, bookID int64, input BookInput) (*domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := input.fields()
	actorID, _ := ctxutil.UserIDFromCtx(ctx)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.books.GetByID(txCtx, bookID)
		if getErr != nil {
			return fmt.Errorf("get book: %w", getErr)
		}

		if refErr := s.refs.Validate(txCtx, fields.GenreID, fields.FormatID); refErr != nil {
			return refErr
		}

		if updateErr := s.books.Update(txCtx, bookID, fields); updateErr != nil {
			return fmt.Errorf("update book: %w", updateErr)
		}

		// Skip audit if nothing actually changed.
		changes := buildBookChanges(old, fields)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				ActorID:    actorID,
				EntityType: domain.EntityTypeBook,
				EntityID:   bookID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "book updated", slog.Int64("book_id", bookID))

	return s.Get(ctx, bookID)
}

// buildBookChanges returns only changed fields for audit.
func buildBookChanges(old *domain.Book, updated domain.BookFields) map[string]any {
	changes := make(map[string]any)
	if old.Title != updated.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if old.Author != updated.Author {
		changes["author"] = map[string]any{"old": old.Author, "new": updated.Author}
	}
	if !equalPtr(old.GenreID, updated.GenreID) {
		changes["genre_id"] = map[string]any{"old": old.GenreID, "new": updated.GenreID}
	}
	if !equalPtr(old.FormatID, updated.FormatID) {
		changes["format_id"] = map[string]any{"old": old.FormatID, "new": updated.FormatID}
	}
	if !equalPtr(old.Pages, updated.Pages) {
		changes["pages"] = map[string]any{"old": old.Pages, "new": updated.Pages}
	}
	if !equalPtr(old.CoverURL, updated.CoverURL) {
		changes["cover_url"] = map[string]any{"old": old.CoverURL, "new": updated.CoverURL}
	}
	return changes
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
