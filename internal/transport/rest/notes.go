package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/pkg/ctxutil"
)

type noteService interface {
	Add(ctx context.Context, bookID int64, authorID, text string) (*domain.BookNote, error)
	Update(ctx context.Context, noteID int64, callerID, text string) (*domain.BookNote, error)
	Delete(ctx context.Context, noteID int64, callerID string) error
}

// NoteHandler serves book note endpoints. The caller is always the author.
type NoteHandler struct {
	notes noteService
	log   *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(logger *slog.Logger, notes noteService) *NoteHandler {
	return &NoteHandler{notes: notes, log: logger.With("handler", "notes")}
}

// Add handles POST /api/books/{bookID}/notes.
func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "bookID")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	note, err := h.notes.Add(r.Context(), bookID, userID, req.NoteText)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

// Update handles PUT /api/books/notes/{noteID}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	noteID, err := pathID(r, "noteID")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	if _, err := h.notes.Update(r.Context(), noteID, userID, req.NoteText); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/books/notes/{noteID}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID, err := pathID(r, "noteID")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	if err := h.notes.Delete(r.Context(), noteID, userID); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
