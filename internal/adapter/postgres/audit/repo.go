// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookshelf-backend/internal/domain"
)

const entity = "audit_record"

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO audit_log (actor_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, actor_id, entity_type, entity_id, action, changes, created_at`

const getByEntitySQL = `
SELECT id, actor_id, entity_type, entity_id, action, changes, created_at
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC, id DESC
LIMIT $3`

const getByActorSQL = `
SELECT id, actor_id, entity_type, entity_id, action, changes, created_at
FROM audit_log
WHERE actor_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// A zero CreatedAt is stamped with the current time.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var row auditRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		record.ActorID, string(record.EntityType), record.EntityID, string(record.Action), changesJSON, createdAt,
	)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, entity, record.EntityID)
	}

	return row.toDomain()
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger dependency of the book, lending and note services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, newest
// first, limited to limit records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error) {
	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, getByEntitySQL, string(entityType), entityID, limit); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	return toDomainRecords(rows)
}

// GetByActor returns the records written by actorID, newest first, with
// pagination.
func (r *Repo) GetByActor(ctx context.Context, actorID string, limit, offset int) ([]domain.AuditRecord, error) {
	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, getByActorSQL, actorID, limit, offset); err != nil {
		return nil, fmt.Errorf("get audit_records by actor: %w", err)
	}
	return toDomainRecords(rows)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type auditRow struct {
	ID         int64     `db:"id"`
	ActorID    string    `db:"actor_id"`
	EntityType string    `db:"entity_type"`
	EntityID   int64     `db:"entity_id"`
	Action     string    `db:"action"`
	Changes    []byte    `db:"changes"`
	CreatedAt  time.Time `db:"created_at"`
}

func (row auditRow) toDomain() (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         row.ID,
		ActorID:    row.ActorID,
		EntityType: domain.EntityType(row.EntityType),
		EntityID:   row.EntityID,
		Action:     domain.AuditAction(row.Action),
		CreatedAt:  row.CreatedAt,
	}

	// changes: JSONB -> map[string]any
	if len(row.Changes) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(row.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %d unmarshal changes: %w", row.ID, err)
		}
		record.Changes = changes
	}

	return record, nil
}

func toDomainRecords(rows []auditRow) ([]domain.AuditRecord, error) {
	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		rec, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}
