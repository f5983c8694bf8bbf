package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueUserID returns a fresh external identity for a test user.
func UniqueUserID() string {
	return "user-" + uniqueSuffix()
}

// SeedGenre inserts a genre with a unique name.
func SeedGenre(t *testing.T, pool *pgxpool.Pool) domain.Genre {
	t.Helper()

	g := domain.Genre{Name: "Genre " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO genres (name) VALUES ($1) RETURNING id`, g.Name,
	).Scan(&g.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedGenre: %v", err)
	}
	return g
}

// SeedFormat inserts a format with a unique name.
func SeedFormat(t *testing.T, pool *pgxpool.Pool) domain.Format {
	t.Helper()

	f := domain.Format{Name: "Fmt " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO formats (name) VALUES ($1) RETURNING id`, f.Name,
	).Scan(&f.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedFormat: %v", err)
	}
	return f
}

// SeedBook inserts a book with a unique title. genreID may be nil.
func SeedBook(t *testing.T, pool *pgxpool.Pool, genreID *int64) domain.Book {
	t.Helper()

	suffix := uniqueSuffix()
	b := domain.Book{
		Title:     "Title " + suffix,
		Author:    "Author " + suffix,
		GenreID:   genreID,
		DateAdded: time.Now().UTC().Truncate(time.Microsecond),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO books (title, author, genre_id, date_added) VALUES ($1, $2, $3, $4) RETURNING id`,
		b.Title, b.Author, b.GenreID, b.DateAdded,
	).Scan(&b.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedBook: %v", err)
	}
	return b
}

// SeedLoan inserts a lending record. A non-nil returnedAt closes it.
func SeedLoan(t *testing.T, pool *pgxpool.Pool, bookID int64, borrowerID string, lentAt time.Time, returnedAt *time.Time) domain.LendingRecord {
	t.Helper()

	r := domain.LendingRecord{
		BookID:      bookID,
		BorrowerID:  borrowerID,
		LendingDate: lentAt,
		ReturnDate:  returnedAt,
		IsReturned:  returnedAt != nil,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO lending_records (book_id, borrower_id, lending_date, return_date, is_returned)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		r.BookID, r.BorrowerID, r.LendingDate, r.ReturnDate, r.IsReturned,
	).Scan(&r.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedLoan: %v", err)
	}
	return r
}

// SeedNote inserts a note authored by authorID.
func SeedNote(t *testing.T, pool *pgxpool.Pool, bookID int64, authorID, text string) domain.BookNote {
	t.Helper()

	n := domain.BookNote{
		BookID:    bookID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO book_notes (book_id, author_id, note_text, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		n.BookID, n.AuthorID, n.Text, n.CreatedAt,
	).Scan(&n.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}
	return n
}
