// Package statistics derives per-user reading statistics from the lending
// history. It only reads.
package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/pkg/clock"
)

type lendingRepo interface {
	ListByBorrower(ctx context.Context, borrowerID string) ([]domain.BorrowedLoan, error)
}

// Service computes user statistics.
type Service struct {
	lendings lendingRepo
	clock    clock.Clock
	log      *slog.Logger
}

// NewService creates a new statistics service.
func NewService(log *slog.Logger, lendings lendingRepo, clk clock.Clock) *Service {
	return &Service{
		lendings: lendings,
		clock:    clk,
		log:      log.With("service", "statistics"),
	}
}

// GetUserStatistics counts the user's lending records. Every record counts
// toward TotalBooks; open records count as CurrentlyReading and returned
// ones as Finished. WantToRead is always zero. An unknown user yields zero
// counts and an empty distribution.
func (s *Service) GetUserStatistics(ctx context.Context, userID string) (*domain.Statistics, error) {
	stats := domain.NewStatistics()
	if strings.TrimSpace(userID) == "" {
		return stats, nil
	}

	loans, err := s.lendings.ListByBorrower(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	year := s.clock.Now().UTC().Year()
	for _, loan := range loans {
		stats.TotalBooks++

		if loan.IsReturned {
			stats.Finished++
			if loan.ReturnDate != nil && loan.ReturnDate.UTC().Year() == year {
				stats.BooksReadThisYear++
			}
		} else {
			stats.CurrentlyReading++
		}

		if loan.GenreName != nil {
			stats.GenreDistribution[*loan.GenreName]++
		}
	}

	s.log.DebugContext(ctx, "statistics computed",
		slog.String("user_id", userID),
		slog.Int("records", stats.TotalBooks),
	)

	return stats, nil
}
