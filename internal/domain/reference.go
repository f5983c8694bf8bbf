package domain

// Genre is a read-only reference entity a book may point to.
type Genre struct {
	ID   int64
	Name string
}

// Format is a read-only reference entity (hardcover, e-book, ...).
type Format struct {
	ID   int64
	Name string
}
