package domain

import "strings"

// ReadingStatus represents the reader's progress through a book.
type ReadingStatus string

const (
	ReadingStatusWantToRead       ReadingStatus = "WANT_TO_READ"
	ReadingStatusCurrentlyReading ReadingStatus = "CURRENTLY_READING"
	ReadingStatusFinished         ReadingStatus = "FINISHED"
)

func (s ReadingStatus) String() string { return string(s) }

func (s ReadingStatus) IsValid() bool {
	switch s {
	case ReadingStatusWantToRead, ReadingStatusCurrentlyReading, ReadingStatusFinished:
		return true
	}
	return false
}

// Label returns the display form shown to users ("Want to Read" etc).
func (s ReadingStatus) Label() string {
	switch s {
	case ReadingStatusWantToRead:
		return "Want to Read"
	case ReadingStatusCurrentlyReading:
		return "Currently Reading"
	case ReadingStatusFinished:
		return "Finished"
	}
	return ""
}

// ParseReadingStatus accepts the display label, the enum constant, or any
// spelling that differs only in case, spaces, underscores or hyphens.
func ParseReadingStatus(raw string) (ReadingStatus, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t':
			return -1
		}
		return r
	}, strings.ToLower(raw))

	switch key {
	case "wanttoread":
		return ReadingStatusWantToRead, true
	case "currentlyreading":
		return ReadingStatusCurrentlyReading, true
	case "finished":
		return ReadingStatusFinished, true
	}
	return "", false
}

// Availability is derived from the lending ledger and never stored.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityLentOut   Availability = "Lent Out"
)

func (a Availability) String() string { return string(a) }

// ScanAction is the operation requested by a lending device scan.
type ScanAction string

const (
	ScanActionLend   ScanAction = "lend"
	ScanActionReturn ScanAction = "return"
)

// ParseScanAction matches the action case-insensitively after trimming.
func ParseScanAction(raw string) (ScanAction, bool) {
	switch ScanAction(strings.ToLower(strings.TrimSpace(raw))) {
	case ScanActionLend:
		return ScanActionLend, true
	case ScanActionReturn:
		return ScanActionReturn, true
	}
	return "", false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeBook EntityType = "BOOK"
	EntityTypeNote EntityType = "NOTE"
	EntityTypeLoan EntityType = "LOAN"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeBook, EntityTypeNote, EntityTypeLoan:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
