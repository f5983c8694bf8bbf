package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

// BookInput holds the catalog fields of a book for create and update.
type BookInput struct {
	Title    string
	Author   string
	GenreID  *int64
	FormatID *int64
	Pages    *int
	CoverURL *string
}

// Validate checks all fields and collects all errors.
func (i BookInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	author := strings.TrimSpace(i.Author)
	if author == "" {
		errs = append(errs, domain.FieldError{Field: "author", Message: "required"})
	}
	if utf8.RuneCountInString(author) > domain.MaxAuthorLength {
		errs = append(errs, domain.FieldError{Field: "author", Message: "max 200 characters"})
	}

	if i.Pages != nil && *i.Pages <= 0 {
		errs = append(errs, domain.FieldError{Field: "pages", Message: "must be positive"})
	}

	if i.CoverURL != nil && utf8.RuneCountInString(strings.TrimSpace(*i.CoverURL)) > domain.MaxCoverURLLength {
		errs = append(errs, domain.FieldError{Field: "cover_url", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// fields returns the trimmed storage form. A blank cover URL becomes nil.
func (i BookInput) fields() domain.BookFields {
	return domain.BookFields{
		Title:    strings.TrimSpace(i.Title),
		Author:   strings.TrimSpace(i.Author),
		GenreID:  i.GenreID,
		FormatID: i.FormatID,
		Pages:    i.Pages,
		CoverURL: trimOrNil(i.CoverURL),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
