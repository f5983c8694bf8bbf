package domain

import "time"

// AuditRecord logs a mutation event on a book, note or loan.
// ActorID is the caller's external identity; empty for device scans
// without an authenticated caller.
type AuditRecord struct {
	ID         int64
	ActorID    string
	EntityType EntityType
	EntityID   int64
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
