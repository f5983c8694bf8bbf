package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

type referenceService interface {
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	ListFormats(ctx context.Context) ([]domain.Format, error)
}

// ReferenceHandler serves the read-only genre and format lists.
type ReferenceHandler struct {
	refs referenceService
	log  *slog.Logger
}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler(logger *slog.Logger, refs referenceService) *ReferenceHandler {
	return &ReferenceHandler{refs: refs, log: logger.With("handler", "reference")}
}

// ListGenres handles GET /api/genres.
func (h *ReferenceHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.refs.ListGenres(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := make([]referenceResponse, 0, len(genres))
	for _, g := range genres {
		resp = append(resp, referenceResponse{ID: g.ID, Name: g.Name})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListFormats handles GET /api/formats.
func (h *ReferenceHandler) ListFormats(w http.ResponseWriter, r *http.Request) {
	formats, err := h.refs.ListFormats(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := make([]referenceResponse, 0, len(formats))
	for _, f := range formats {
		resp = append(resp, referenceResponse{ID: f.ID, Name: f.Name})
	}
	writeJSON(w, http.StatusOK, resp)
}
