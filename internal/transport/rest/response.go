package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

// errorResponse is the body of every rejected request.
type errorResponse struct {
	Errors []string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeErrors(w http.ResponseWriter, status int, msgs ...string) {
	writeJSON(w, status, errorResponse{Errors: msgs})
}

// errorStatus maps a service error to its HTTP status. Anything that is not
// a domain rejection is a server error.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyLent),
		errors.Is(err, domain.ErrNotCurrentlyLent),
		errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes the error body for err. Server errors are logged and
// never leak their text.
func respondError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
		writeErrors(w, status, "Internal server error")
		return
	}
	writeErrors(w, status, domain.Messages(err)...)
}
