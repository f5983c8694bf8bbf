package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/internal/service/lending"
)

type scanService interface {
	Scan(ctx context.Context, input lending.ScanInput) (*lending.ScanResult, error)
}

// ScanHandler serves POST /api/iot/scan for shelf scanners. Scanners carry
// no bearer token; the user id travels in the payload.
type ScanHandler struct {
	scans scanService
	log   *slog.Logger
}

// NewScanHandler creates a ScanHandler.
func NewScanHandler(logger *slog.Logger, scans scanService) *ScanHandler {
	return &ScanHandler{scans: scans, log: logger.With("handler", "scan")}
}

// Scan dispatches the scan. Domain rejections answer 400 with the scan
// error body; infrastructure failures answer 500.
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.reject(w, r, err)
		return
	}

	result, err := h.scans.Scan(r.Context(), lending.ScanInput{
		BookID: req.BookID,
		UserID: req.UserID,
		Action: req.Action,
	})
	if err != nil {
		h.reject(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, scanResponse{
		Status:  "success",
		Message: "Operation completed",
		BookID:  result.BookID,
	})
}

func (h *ScanHandler) reject(w http.ResponseWriter, r *http.Request, err error) {
	if errorStatus(err) >= http.StatusInternalServerError {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusBadRequest, scanResponse{
		Status: "error",
		Errors: domain.Messages(err),
	})
}
