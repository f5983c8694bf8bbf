// Package lending implements the lending ledger repository using PostgreSQL.
package lending

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

const entity = "lending_record"

// activeIndex is the partial unique index allowing one open loan per book.
const activeIndex = "ux_lending_records_active"

// Repo provides lending record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lending repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO lending_records (book_id, borrower_id, lending_date, is_returned)
VALUES ($1, $2, $3, FALSE)
RETURNING id, book_id, borrower_id, lending_date, return_date, is_returned`

const closeActiveSQL = `
UPDATE lending_records
SET is_returned = TRUE, return_date = $2
WHERE book_id = $1 AND NOT is_returned
RETURNING id, book_id, borrower_id, lending_date, return_date, is_returned`

const deleteByBookSQL = `DELETE FROM lending_records WHERE book_id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create opens a loan. A second open loan for the same book fails with
// domain.ErrAlreadyLent.
func (r *Repo) Create(ctx context.Context, bookID int64, borrowerID string, lentAt time.Time) (*domain.LendingRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row recordRow
	if err := pgxscan.Get(ctx, q, &row, createSQL, bookID, borrowerID, lentAt); err != nil {
		if postgres.IsUniqueViolation(err, activeIndex) {
			return nil, fmt.Errorf("book %d: %w", bookID, domain.ErrAlreadyLent)
		}
		return nil, postgres.MapError(err, entity, bookID)
	}

	rec := row.toDomain()
	return &rec, nil
}

// CloseActive marks the book's open loan returned at returnedAt. It fails
// with domain.ErrNotCurrentlyLent when there is no open loan.
func (r *Repo) CloseActive(ctx context.Context, bookID int64, returnedAt time.Time) (*domain.LendingRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row recordRow
	if err := pgxscan.Get(ctx, q, &row, closeActiveSQL, bookID, returnedAt); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("book %d: %w", bookID, domain.ErrNotCurrentlyLent)
		}
		return nil, postgres.MapError(err, entity, bookID)
	}

	rec := row.toDomain()
	return &rec, nil
}

// DeleteByBookID removes the whole history of a book.
func (r *Repo) DeleteByBookID(ctx context.Context, bookID int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteByBookSQL, bookID)
	if err != nil {
		return 0, postgres.MapError(err, entity, bookID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetActiveByBookID returns the open loan of a book or domain.ErrNotFound.
func (r *Repo) GetActiveByBookID(ctx context.Context, bookID int64) (*domain.LendingRecord, error) {
	query := selectRecords().Where(sq.Eq{"lr.book_id": bookID}).Where("NOT lr.is_returned")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, bookID)
	}

	rec := row.toDomain()
	return &rec, nil
}

// ListByBookID returns the loan history of a book, newest first.
func (r *Repo) ListByBookID(ctx context.Context, bookID int64) ([]domain.LendingRecord, error) {
	query := selectRecords().
		Where(sq.Eq{"lr.book_id": bookID}).
		OrderBy("lr.lending_date DESC", "lr.id DESC")

	rows, err := r.selectRows(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list lending_records by book %d: %w", bookID, err)
	}

	records := make([]domain.LendingRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}

// ListByBorrower returns every loan ever made to borrowerID, returned or
// not, together with the book's genre name.
func (r *Repo) ListByBorrower(ctx context.Context, borrowerID string) ([]domain.BorrowedLoan, error) {
	query := selectRecords().
		Column("g.name AS genre_name").
		Join("books b ON b.id = lr.book_id").
		LeftJoin("genres g ON g.id = b.genre_id").
		Where(sq.Eq{"lr.borrower_id": borrowerID}).
		OrderBy("lr.lending_date DESC", "lr.id DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []borrowedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list lending_records by borrower %s: %w", borrowerID, err)
	}

	loans := make([]domain.BorrowedLoan, len(rows))
	for i, row := range rows {
		loans[i] = domain.BorrowedLoan{
			LendingRecord: recordRow{
				ID:          row.ID,
				BookID:      row.BookID,
				BorrowerID:  row.BorrowerID,
				LendingDate: row.LendingDate,
				ReturnDate:  row.ReturnDate,
				IsReturned:  row.IsReturned,
			}.toDomain(),
			GenreName: row.GenreName,
		}
	}
	return loans, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type recordRow struct {
	ID          int64      `db:"id"`
	BookID      int64      `db:"book_id"`
	BorrowerID  string     `db:"borrower_id"`
	LendingDate time.Time  `db:"lending_date"`
	ReturnDate  *time.Time `db:"return_date"`
	IsReturned  bool       `db:"is_returned"`
}

func (r recordRow) toDomain() domain.LendingRecord {
	return domain.LendingRecord{
		ID:          r.ID,
		BookID:      r.BookID,
		BorrowerID:  r.BorrowerID,
		LendingDate: r.LendingDate,
		ReturnDate:  r.ReturnDate,
		IsReturned:  r.IsReturned,
	}
}

type borrowedRow struct {
	ID          int64      `db:"id"`
	BookID      int64      `db:"book_id"`
	BorrowerID  string     `db:"borrower_id"`
	LendingDate time.Time  `db:"lending_date"`
	ReturnDate  *time.Time `db:"return_date"`
	IsReturned  bool       `db:"is_returned"`
	GenreName   *string    `db:"genre_name"`
}

func selectRecords() sq.SelectBuilder {
	return postgres.Builder().
		Select(
			"lr.id", "lr.book_id", "lr.borrower_id",
			"lr.lending_date", "lr.return_date", "lr.is_returned",
		).
		From("lending_records lr")
}

func (r *Repo) selectRows(ctx context.Context, query sq.SelectBuilder) ([]recordRow, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
