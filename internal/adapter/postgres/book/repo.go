// Package book implements the Book repository using PostgreSQL.
// Reads join genre/format names and the active loan in one query; writes
// use plain SQL.
package book

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

const entity = "book"

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new book repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL for writes
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO books (title, author, genre_id, format_id, pages, cover_url, date_added)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const updateSQL = `
UPDATE books
SET title = $2, author = $3, genre_id = $4, format_id = $5, pages = $6, cover_url = $7
WHERE id = $1`

const setReadingStatusSQL = `
UPDATE books SET reading_status = $2, completion_date = $3 WHERE id = $1`

const clearReadingStatusSQL = `
UPDATE books SET reading_status = NULL, completion_date = NULL WHERE id = $1`

const deleteSQL = `DELETE FROM books WHERE id = $1`

const lockSQL = `SELECT id FROM books WHERE id = $1 FOR UPDATE`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a book and returns its id.
func (r *Repo) Create(ctx context.Context, f domain.BookFields, dateAdded time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var id int64
	err := q.QueryRow(ctx, createSQL,
		f.Title, f.Author, f.GenreID, f.FormatID, f.Pages, f.CoverURL, dateAdded,
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, entity, 0)
	}
	return id, nil
}

// Update replaces the catalog fields of a book.
func (r *Repo) Update(ctx context.Context, id int64, f domain.BookFields) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, updateSQL, id, f.Title, f.Author, f.GenreID, f.FormatID, f.Pages, f.CoverURL)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// SetReadingStatus overwrites reading status and completion date.
func (r *Repo) SetReadingStatus(ctx context.Context, id int64, status domain.ReadingStatus, completedAt *time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, setReadingStatusSQL, id, string(status), completedAt)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ClearReadingStatus resets reading status and completion date, leaving
// the book plain "Available" once no loan is open.
func (r *Repo) ClearReadingStatus(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, clearReadingStatusSQL, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a book row.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// LockByID takes a row lock on the book for the rest of the transaction.
// Lending transitions serialize on this lock.
func (r *Repo) LockByID(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var got int64
	if err := q.QueryRow(ctx, lockSQL, id).Scan(&got); err != nil {
		return postgres.MapError(err, entity, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a book with genre/format names and its active loan.
// Notes are not loaded.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	books, err := r.list(ctx, selectBooks().Where(sq.Eq{"b.id": id}))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	if len(books) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return &books[0], nil
}

// Search returns books whose title or author contains term, ignoring case.
// An empty term matches every book.
func (r *Repo) Search(ctx context.Context, term string) ([]domain.Book, error) {
	query := selectBooks()
	if term != "" {
		pattern := "%" + escapeLike(term) + "%"
		query = query.Where(sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.author": pattern},
		})
	}

	books, err := r.list(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return books, nil
}

// ListBorrowedBy returns books currently on loan to userID.
func (r *Repo) ListBorrowedBy(ctx context.Context, userID string) ([]domain.Book, error) {
	books, err := r.list(ctx, selectBooks().Where(sq.Eq{"lr.borrower_id": userID}))
	if err != nil {
		return nil, fmt.Errorf("list books borrowed by %s: %w", userID, err)
	}
	return books, nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

// selectBooks builds the shared projection. The partial unique index on
// lending_records guarantees the loan join yields at most one row per book.
func selectBooks() sq.SelectBuilder {
	return postgres.Builder().
		Select(
			"b.id", "b.title", "b.author",
			"b.genre_id", "g.name AS genre_name",
			"b.format_id", "f.name AS format_name",
			"b.pages", "b.cover_url", "b.date_added",
			"b.reading_status", "b.completion_date",
			"lr.id AS loan_id", "lr.borrower_id AS loan_borrower_id", "lr.lending_date AS loan_lending_date",
		).
		From("books b").
		LeftJoin("genres g ON g.id = b.genre_id").
		LeftJoin("formats f ON f.id = b.format_id").
		LeftJoin("lending_records lr ON lr.book_id = b.id AND NOT lr.is_returned").
		OrderBy("b.date_added DESC", "b.id DESC")
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]domain.Book, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []bookRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, err
	}

	books := make([]domain.Book, len(rows))
	for i, row := range rows {
		books[i] = row.toDomain()
	}
	return books, nil
}

// escapeLike escapes LIKE wildcards so the term matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
