package domain

import "strings"

// NormalizeSearchTerm prepares a free-text search term for matching:
// surrounding whitespace is dropped and inner runs of whitespace collapse
// to one space. Case is left alone; matching is case-insensitive.
func NormalizeSearchTerm(term string) string {
	return strings.Join(strings.Fields(term), " ")
}
