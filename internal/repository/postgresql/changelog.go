package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/db"
	"github.com/logibee/backoffice/internal/repository"
)

// ChangeLogRepo is the append-only history store. Each entity kind owns its
// own table (order_changes, company_changes, ...), all sharing one layout.
// Rows are never updated or deleted.
type ChangeLogRepo struct {
	db db.DB
}

func NewChangeLogRepo(db db.DB) *ChangeLogRepo {
	return &ChangeLogRepo{db: db}
}

const changeInsert = `
        INSERT INTO %s (
            id, entity_id, ref_id,
            actor_id, actor_name, actor_email, actor_access_level, actor_role,
            change_type, payload, reason, occurred_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `

// Append inserts a single change record. occurred_at is assigned here, at
// insert time, ignoring whatever the caller set.
func (r *ChangeLogRepo) Append(ctx context.Context, record *audit.ChangeRecord) error {
	query, args, err := r.insertArgs(record)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query, args...)
	return err
}

// AppendTx is Append within the caller's transaction.
func (r *ChangeLogRepo) AppendTx(ctx context.Context, tx db.Tx, record *audit.ChangeRecord) error {
	query, args, err := r.insertArgs(record)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, query, args...)
	return err
}

func (r *ChangeLogRepo) insertArgs(record *audit.ChangeRecord) (string, []interface{}, error) {
	cfg, ok := audit.ConfigFor(record.EntityKind)
	if !ok {
		return "", nil, fmt.Errorf("unknown entity kind %q", record.EntityKind)
	}

	payload, err := json.Marshal(record.Payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal change payload: %w", err)
	}

	var refID *string
	if record.RefID != "" {
		refID = &record.RefID
	}

	record.OccurredAt = time.Now().UTC()

	args := []interface{}{
		record.ID, record.EntityID, refID,
		record.Actor.ID, record.Actor.Name, record.Actor.Email, record.Actor.AccessLevel, record.Actor.Role,
		string(record.ChangeType), payload, record.Reason, record.OccurredAt,
	}
	return fmt.Sprintf(changeInsert, cfg.Table), args, nil
}

// ListFor returns one page of change records for an entity, newest first,
// together with the total row count (counted separately, not derived from
// the page).
func (r *ChangeLogRepo) ListFor(ctx context.Context, kind audit.EntityKind, entityID string, filter repository.HistoryFilter) ([]*repository.ChangeRecordRow, int, error) {
	cfg, ok := audit.ConfigFor(kind)
	if !ok {
		return nil, 0, fmt.Errorf("unknown entity kind %q", kind)
	}

	where := "WHERE entity_id = $1"
	args := []interface{}{entityID}
	if filter.RefID != "" {
		where += " AND ref_id = $2"
		args = append(args, filter.RefID)
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", cfg.Table, where)
	if err := r.db.Get(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count change records: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	query := fmt.Sprintf(`
        SELECT id, entity_id, ref_id,
               actor_id, actor_name, actor_email, actor_access_level, actor_role,
               change_type, payload, reason, occurred_at
        FROM %s %s
        ORDER BY occurred_at DESC
        LIMIT $%d OFFSET $%d
    `, cfg.Table, where, len(args)+1, len(args)+2)
	args = append(args, filter.PageSize, offset)

	var rows []*repository.ChangeRecordRow
	if err := r.db.Select(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list change records: %w", err)
	}
	return rows, total, nil
}
