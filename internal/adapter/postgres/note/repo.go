// Package note implements the BookNote repository using PostgreSQL.
package note

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

const entity = "note"

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const returning = `RETURNING id, book_id, author_id, note_text, created_at, modified_at`

const createSQL = `
INSERT INTO book_notes (book_id, author_id, note_text, created_at)
VALUES ($1, $2, $3, $4)
` + returning

const updateSQL = `
UPDATE book_notes SET note_text = $2, modified_at = $3
WHERE id = $1
` + returning

const deleteSQL = `DELETE FROM book_notes WHERE id = $1`

const deleteByBookSQL = `DELETE FROM book_notes WHERE book_id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a note.
func (r *Repo) Create(ctx context.Context, bookID int64, authorID, text string, createdAt time.Time) (*domain.BookNote, error) {
	var row noteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL, bookID, authorID, text, createdAt); err != nil {
		return nil, postgres.MapError(err, "book", bookID)
	}

	n := row.toDomain()
	return &n, nil
}

// Update replaces the note text and stamps modified_at.
func (r *Repo) Update(ctx context.Context, id int64, text string, modifiedAt time.Time) (*domain.BookNote, error) {
	var row noteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, updateSQL, id, text, modifiedAt); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	n := row.toDomain()
	return &n, nil
}

// Delete removes a note.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByBookID removes every note of a book.
func (r *Repo) DeleteByBookID(ctx context.Context, bookID int64) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByBookSQL, bookID)
	if err != nil {
		return 0, postgres.MapError(err, entity, bookID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a note by id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.BookNote, error) {
	return r.get(ctx, selectNotes().Where(sq.Eq{"id": id}), id)
}

// GetByIDForUpdate returns a note and row-locks it for the transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.BookNote, error) {
	return r.get(ctx, selectNotes().Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"), id)
}

// ListByBookID returns a book's notes, oldest first.
func (r *Repo) ListByBookID(ctx context.Context, bookID int64) ([]domain.BookNote, error) {
	notes, err := r.list(ctx, selectNotes().Where(sq.Eq{"book_id": bookID}))
	if err != nil {
		return nil, fmt.Errorf("list notes by book %d: %w", bookID, err)
	}
	return notes, nil
}

// ListByBookIDs returns notes for several books in one round trip. Used by
// the notes dataloader.
func (r *Repo) ListByBookIDs(ctx context.Context, bookIDs []int64) ([]domain.BookNote, error) {
	if len(bookIDs) == 0 {
		return []domain.BookNote{}, nil
	}

	notes, err := r.list(ctx, selectNotes().Where(sq.Eq{"book_id": bookIDs}))
	if err != nil {
		return nil, fmt.Errorf("list notes by books: %w", err)
	}
	return notes, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type noteRow struct {
	ID         int64      `db:"id"`
	BookID     int64      `db:"book_id"`
	AuthorID   string     `db:"author_id"`
	Text       string     `db:"note_text"`
	CreatedAt  time.Time  `db:"created_at"`
	ModifiedAt *time.Time `db:"modified_at"`
}

func (r noteRow) toDomain() domain.BookNote {
	return domain.BookNote{
		ID:         r.ID,
		BookID:     r.BookID,
		AuthorID:   r.AuthorID,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
		ModifiedAt: r.ModifiedAt,
	}
}

func selectNotes() sq.SelectBuilder {
	return postgres.Builder().
		Select("id", "book_id", "author_id", "note_text", "created_at", "modified_at").
		From("book_notes").
		OrderBy("created_at", "id")
}

func (r *Repo) get(ctx context.Context, query sq.SelectBuilder, id int64) (*domain.BookNote, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	n := row.toDomain()
	return &n, nil
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]domain.BookNote, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []noteRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, err
	}

	notes := make([]domain.BookNote, len(rows))
	for i, row := range rows {
		notes[i] = row.toDomain()
	}
	return notes, nil
}
