package domain

import "time"

// BookNote is a free-text annotation. Only its author may change it.
type BookNote struct {
	ID         int64
	BookID     int64
	AuthorID   string
	Text       string
	CreatedAt  time.Time
	ModifiedAt *time.Time
}

// IsAuthoredBy reports whether userID wrote the note.
func (n BookNote) IsAuthoredBy(userID string) bool {
	return userID != "" && n.AuthorID == userID
}
