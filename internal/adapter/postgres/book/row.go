package book

import (
	"time"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

// bookRow is the scan target of selectBooks.
type bookRow struct {
	ID             int64      `db:"id"`
	Title          string     `db:"title"`
	Author         string     `db:"author"`
	GenreID        *int64     `db:"genre_id"`
	GenreName      *string    `db:"genre_name"`
	FormatID       *int64     `db:"format_id"`
	FormatName     *string    `db:"format_name"`
	Pages          *int       `db:"pages"`
	CoverURL       *string    `db:"cover_url"`
	DateAdded      time.Time  `db:"date_added"`
	ReadingStatus  *string    `db:"reading_status"`
	CompletionDate *time.Time `db:"completion_date"`

	LoanID          *int64     `db:"loan_id"`
	LoanBorrowerID  *string    `db:"loan_borrower_id"`
	LoanLendingDate *time.Time `db:"loan_lending_date"`
}

func (r bookRow) toDomain() domain.Book {
	b := domain.Book{
		ID:             r.ID,
		Title:          r.Title,
		Author:         r.Author,
		GenreID:        r.GenreID,
		GenreName:      r.GenreName,
		FormatID:       r.FormatID,
		FormatName:     r.FormatName,
		Pages:          r.Pages,
		CoverURL:       r.CoverURL,
		DateAdded:      r.DateAdded,
		CompletionDate: r.CompletionDate,
	}

	if r.ReadingStatus != nil {
		s := domain.ReadingStatus(*r.ReadingStatus)
		b.ReadingStatus = &s
	}

	if r.LoanID != nil && r.LoanBorrowerID != nil && r.LoanLendingDate != nil {
		b.ActiveLoan = &domain.LendingRecord{
			ID:          *r.LoanID,
			BookID:      r.ID,
			BorrowerID:  *r.LoanBorrowerID,
			LendingDate: *r.LoanLendingDate,
		}
	}

	return b
}
