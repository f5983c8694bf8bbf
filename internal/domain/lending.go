package domain

import "time"

// LendingRecord is one entry of a book's loan history. At most one record
// per book has IsReturned == false.
type LendingRecord struct {
	ID          int64
	BookID      int64
	BorrowerID  string
	LendingDate time.Time
	ReturnDate  *time.Time
	IsReturned  bool
}

// IsActive reports whether the loan is still open.
func (r LendingRecord) IsActive() bool { return !r.IsReturned }

// BorrowedLoan is a lending record joined with its book's genre, used by
// statistics.
type BorrowedLoan struct {
	LendingRecord
	GenreName *string
}
