package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/pkg/ctxutil"
)

// Create adds a book to the collection. A new book has no loan and no
// reading status, so its status is "Available".
func (s *Service) Create(ctx context.Context, input BookInput) (*domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.refs.Validate(ctx, input.GenreID, input.FormatID); err != nil {
		return nil, err
	}

	fields := input.fields()
	actorID, _ := ctxutil.UserIDFromCtx(ctx)

	var bookID int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		bookID, createErr = s.books.Create(txCtx, fields, s.clock.Now())
		if createErr != nil {
			return fmt.Errorf("create book: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorID,
			EntityType: domain.EntityTypeBook,
			EntityID:   bookID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"title":  map[string]any{"new": fields.Title},
				"author": map[string]any{"new": fields.Author},
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

	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get created book: %w", err)
	}
	book.Notes = []domain.BookNote{}

	s.log.InfoContext(ctx, "book created",
		slog.Int64("book_id", bookID),
		slog.String("title", fields.Title),
	)

	return book, nil
}
