package domain

import "time"

// Field bounds shared by validation and the storage schema.
const (
	MaxTitleLength    = 200
	MaxAuthorLength   = 200
	MaxCoverURLLength = 500
	MaxNoteLength     = 2000
)

// Book is a cataloged item of the collection. It owns its lending records
// and notes; deleting a book removes both.
type Book struct {
	ID         int64
	Title      string
	Author     string
	GenreID    *int64
	GenreName  *string
	FormatID   *int64
	FormatName *string
	Pages      *int
	CoverURL   *string
	DateAdded  time.Time

	ReadingStatus  *ReadingStatus
	CompletionDate *time.Time

	// ActiveLoan is the single unreturned lending record, if any.
	ActiveLoan *LendingRecord
	Notes      []BookNote
}

// Availability is LentOut iff the book has an active loan.
func (b *Book) Availability() Availability {
	if b.ActiveLoan != nil {
		return AvailabilityLentOut
	}
	return AvailabilityAvailable
}

// Status is the user-facing status string. A loan outranks reading
// progress; a book with neither is "Available".
func (b *Book) Status() string {
	if b.ActiveLoan != nil {
		return AvailabilityLentOut.String()
	}
	if b.ReadingStatus != nil && b.ReadingStatus.IsValid() {
		return b.ReadingStatus.Label()
	}
	return AvailabilityAvailable.String()
}

// BookFields are the catalog attributes set on create and replaced on update.
type BookFields struct {
	Title    string
	Author   string
	GenreID  *int64
	FormatID *int64
	Pages    *int
	CoverURL *string
}
