package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
	"github.com/heartmarshall/bookshelf-backend/internal/service/catalog"
)

type bookRequest struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	GenreID       *int64  `json:"genreId"`
	FormatID      *int64  `json:"formatId"`
	Pages         *int    `json:"pages"`
	CoverImageURL *string `json:"coverImageUrl"`
}

func (b bookRequest) toInput() catalog.BookInput {
	return catalog.BookInput{
		Title:    b.Title,
		Author:   b.Author,
		GenreID:  b.GenreID,
		FormatID: b.FormatID,
		Pages:    b.Pages,
		CoverURL: b.CoverImageURL,
	}
}

// noteRequest accepts either a bare JSON string or {"noteText": "..."}.
type noteRequest struct {
	NoteText string `json:"noteText"`
}

func (n *noteRequest) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		n.NoteText = text
		return nil
	}
	type plain noteRequest
	return json.Unmarshal(data, (*plain)(n))
}

type bookResponse struct {
	ID            int64                  `json:"id"`
	Title         string                 `json:"title"`
	Author        string                 `json:"author"`
	Genre         *string                `json:"genre"`
	Format        *string                `json:"format"`
	Pages         *int                   `json:"pages"`
	CoverImageURL *string                `json:"coverImageUrl"`
	DateAdded     time.Time              `json:"dateAdded"`
	Status        string                 `json:"status"`
	ReadingStatus readingStatusResponse  `json:"readingStatus"`
	LendingRecord *lendingRecordResponse `json:"lendingRecord"`
	Notes         []noteResponse         `json:"notes"`
}

type readingStatusResponse struct {
	Status         string     `json:"status"`
	CompletionDate *time.Time `json:"completionDate"`
}

type lendingRecordResponse struct {
	ID           int64      `json:"id"`
	BorrowerName string     `json:"borrowerName"`
	LendingDate  time.Time  `json:"lendingDate"`
	ReturnDate   *time.Time `json:"returnDate"`
	IsReturned   bool       `json:"isReturned"`
}

type noteResponse struct {
	ID           int64      `json:"id"`
	NoteText     string     `json:"noteText"`
	CreatedDate  time.Time  `json:"createdDate"`
	ModifiedDate *time.Time `json:"modifiedDate"`
}

type statisticsResponse struct {
	TotalBooks        int            `json:"totalBooks"`
	WantToRead        int            `json:"wantToRead"`
	CurrentlyReading  int            `json:"currentlyReading"`
	Finished          int            `json:"finished"`
	BooksReadThisYear int            `json:"booksReadThisYear"`
	GenreDistribution map[string]int `json:"genreDistribution"`
}

type referenceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type scanRequest struct {
	BookID int64  `json:"bookId"`
	UserID string `json:"userId"`
	Action string `json:"action"`
}

type scanResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	BookID  int64    `json:"bookId,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func toBookResponse(b *domain.Book) bookResponse {
	resp := bookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.GenreName,
		Format:        b.FormatName,
		Pages:         b.Pages,
		CoverImageURL: b.CoverURL,
		DateAdded:     b.DateAdded,
		Status:        b.Status(),
		ReadingStatus: readingStatusResponse{
			Status:         b.Status(),
			CompletionDate: b.CompletionDate,
		},
		Notes: make([]noteResponse, 0, len(b.Notes)),
	}
	if b.ActiveLoan != nil {
		loan := toLendingRecordResponse(*b.ActiveLoan)
		resp.LendingRecord = &loan
	}
	for _, n := range b.Notes {
		resp.Notes = append(resp.Notes, toNoteResponse(&n))
	}
	return resp
}

func toBookResponses(books []domain.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for i := range books {
		out = append(out, toBookResponse(&books[i]))
	}
	return out
}

func toLendingRecordResponse(r domain.LendingRecord) lendingRecordResponse {
	return lendingRecordResponse{
		ID:           r.ID,
		BorrowerName: r.BorrowerID,
		LendingDate:  r.LendingDate,
		ReturnDate:   r.ReturnDate,
		IsReturned:   r.IsReturned,
	}
}

func toNoteResponse(n *domain.BookNote) noteResponse {
	return noteResponse{
		ID:           n.ID,
		NoteText:     n.Text,
		CreatedDate:  n.CreatedAt,
		ModifiedDate: n.ModifiedAt,
	}
}

func toStatisticsResponse(s *domain.Statistics) statisticsResponse {
	dist := s.GenreDistribution
	if dist == nil {
		dist = map[string]int{}
	}
	return statisticsResponse{
		TotalBooks:        s.TotalBooks,
		WantToRead:        s.WantToRead,
		CurrentlyReading:  s.CurrentlyReading,
		Finished:          s.Finished,
		BooksReadThisYear: s.BooksReadThisYear,
		GenreDistribution: dist,
	}
}
