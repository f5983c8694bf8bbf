package lending

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

// ScanInput is the payload sent by a shelf scanner.
type ScanInput struct {
	BookID int64
	UserID string
	Action string
}

// Validate rejects a scan without a positive book id or a user id.
func (i ScanInput) Validate() error {
	if i.BookID <= 0 || strings.TrimSpace(i.UserID) == "" {
		return domain.NewValidationError("", "invalid scan data")
	}
	return nil
}

// ScanResult reports the transition a scan performed.
type ScanResult struct {
	BookID int64
	Action domain.ScanAction
	Record *domain.LendingRecord
}

// Scan dispatches a device scan to Lend or Return at the current time. The
// action is matched case-insensitively.
func (s *Service) Scan(ctx context.Context, input ScanInput) (*ScanResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	action, ok := domain.ParseScanAction(input.Action)
	if !ok {
		return nil, domain.NewValidationError("", "unknown action")
	}

	var (
		record *domain.LendingRecord
		err    error
	)
	switch action {
	case domain.ScanActionLend:
		record, err = s.Lend(ctx, input.BookID, input.UserID, s.clock.Now())
	case domain.ScanActionReturn:
		record, err = s.Return(ctx, input.BookID, s.clock.Now())
	}
	if err != nil {
		s.log.WarnContext(ctx, "scan rejected",
			slog.Int64("book_id", input.BookID),
			slog.String("action", string(action)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return &ScanResult{BookID: input.BookID, Action: action, Record: record}, nil
}
