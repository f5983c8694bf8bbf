package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/pkg/ctxutil"
)

type statisticsService interface {
	GetUserStatistics(ctx context.Context, userID string) (*domain.Statistics, error)
}

// StatisticsHandler serves GET /api/statistics.
type StatisticsHandler struct {
	stats statisticsService
	log   *slog.Logger
}

// NewStatisticsHandler creates a StatisticsHandler.
func NewStatisticsHandler(logger *slog.Logger, stats statisticsService) *StatisticsHandler {
	return &StatisticsHandler{stats: stats, log: logger.With("handler", "statistics")}
}

// Get returns the caller's statistics.
func (h *StatisticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	stats, err := h.stats.GetUserStatistics(r.Context(), userID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatisticsResponse(stats))
}
