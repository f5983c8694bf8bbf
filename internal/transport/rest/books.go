package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/internal/service/catalog"
	"github.com/heartmarshall/bookshelf-backend/internal/transport/dataloader"
	"github.com/heartmarshall/bookshelf-backend/pkg/clock"
	"github.com/heartmarshall/bookshelf-backend/pkg/ctxutil"
)

type catalogService interface {
	Create(ctx context.Context, input catalog.BookInput) (*domain.Book, error)
	Get(ctx context.Context, bookID int64) (*domain.Book, error)
	Update(ctx context.Context, bookID int64, input catalog.BookInput) (*domain.Book, error)
	Delete(ctx context.Context, bookID int64) error
	Search(ctx context.Context, term string) ([]domain.Book, error)
	ListBorrowedBy(ctx context.Context, userID string) ([]domain.Book, error)
	ListLent(ctx context.Context, userID string) ([]domain.Book, error)
}

type readingService interface {
	SetStatus(ctx context.Context, bookID int64, rawStatus string, completedAt *time.Time) error
}

type lendingService interface {
	Lend(ctx context.Context, bookID int64, borrowerID string, date time.Time) (*domain.LendingRecord, error)
	Return(ctx context.Context, bookID int64, date time.Time) (*domain.LendingRecord, error)
	History(ctx context.Context, bookID int64) ([]domain.LendingRecord, error)
}

// BookHandler serves the /api/books endpoints.
type BookHandler struct {
	catalog catalogService
	reading readingService
	lending lendingService
	clock   clock.Clock
	log     *slog.Logger
}

// NewBookHandler creates a BookHandler.
func NewBookHandler(
	logger *slog.Logger,
	catalog catalogService,
	reading readingService,
	lending lendingService,
	clk clock.Clock,
) *BookHandler {
	return &BookHandler{
		catalog: catalog,
		reading: reading,
		lending: lending,
		clock:   clk,
		log:     logger.With("handler", "books"),
	}
}

// Create handles POST /api/books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	book, err := h.catalog.Create(r.Context(), req.toInput())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/api/books/"+strconv.FormatInt(book.ID, 10))
	writeJSON(w, http.StatusCreated, toBookResponse(book))
}

// Get handles GET /api/books/{bookID}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "bookID")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	book, err := h.catalog.Get(r.Context(), bookID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

// ListMine handles GET /api/books: the books currently borrowed by the caller.
func (h *BookHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	h.writeBooks(w, r)(h.catalog.ListBorrowedBy(r.Context(), userID))
}

// Search handles GET /api/books/search?searchTerm=.
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.writeBooks(w, r)(h.catalog.Search(r.Context(), r.URL.Query().Get("searchTerm")))
}

// ListLent handles GET /api/books/lent: the caller's active loans.
func (h *BookHandler) ListLent(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	h.writeBooks(w, r)(h.catalog.ListLent(r.Context(), userID))
}

// writeBooks attaches notes in one batch and writes the list.
func (h *BookHandler) writeBooks(w http.ResponseWriter, r *http.Request) func([]domain.Book, error) {
	return func(books []domain.Book, err error) {
		if err == nil {
			err = dataloader.AttachNotes(r.Context(), books)
		}
		if err != nil {
			respondError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toBookResponses(books))
	}
}

// Update handles PUT /api/books/{bookID}.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "bookID")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var req bookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	book, err := h.catalog.Update(r.Context(), bookID, req.toInput())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

// Delete handles DELETE /api/books/{bookID}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "bookID")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if err := h.catalog.Delete(r.Context(), bookID); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetReadingStatus handles PUT /api/books/{bookID}/reading-status.
func (h *BookHandler) SetReadingStatus(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "bookID")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	completedAt, err := queryTime(r, "completionDate")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if err := h.reading.SetStatus(r.Context(), bookID, r.URL.Query().Get("status"), completedAt); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Lend handles POST /api/books/{bookID}/lend. The caller is the borrower;
// a missing lendingDate means now.
func (h *BookHandler) Lend(w http.ResponseWriter, r *http.Request) {
	bookID, date, ok := h.transitionParams(w, r, "lendingDate")
	if !ok {
		return
	}

	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	if _, err := h.lending.Lend(r.Context(), bookID, userID, date); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Return handles PUT /api/books/{bookID}/return. A missing returnDate means now.
func (h *BookHandler) Return(w http.ResponseWriter, r *http.Request) {
	bookID, date, ok := h.transitionParams(w, r, "returnDate")
	if !ok {
		return
	}

	if _, err := h.lending.Return(r.Context(), bookID, date); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BookHandler) transitionParams(w http.ResponseWriter, r *http.Request, dateParam string) (int64, time.Time, bool) {
	bookID, err := pathID(r, "bookID")
	if err != nil {
		respondError(h.log, w, r, err)
		return 0, time.Time{}, false
	}

	date, err := queryTime(r, dateParam)
	if err != nil {
		respondError(h.log, w, r, err)
		return 0, time.Time{}, false
	}
	if date == nil {
		return bookID, h.clock.Now(), true
	}
	return bookID, *date, true
}

// History handles GET /api/books/{bookID}/lendings.
func (h *BookHandler) History(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathID(r, "bookID")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	records, err := h.lending.History(r.Context(), bookID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := make([]lendingRecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toLendingRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}
