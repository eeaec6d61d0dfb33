package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/logibee/backoffice/internal/db"
	"github.com/logibee/backoffice/internal/repository"
)

type WarningRepo struct {
	db db.DB
}

func NewWarningRepo(db db.DB) *WarningRepo {
	return &WarningRepo{db: db}
}

func (r *WarningRepo) Create(ctx context.Context, warning *repository.Warning) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO warnings (
            id, company_id, content, severity, sort_order, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, warning.ID, warning.CompanyID, warning.Content, warning.Severity,
		warning.SortOrder, warning.CreatedAt, warning.UpdatedAt)
	return err
}

func (r *WarningRepo) GetByID(ctx context.Context, id string) (*repository.Warning, error) {
	var warning repository.Warning
	err := r.db.Get(ctx, &warning, "SELECT * FROM warnings WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &warning, nil
}

func (r *WarningRepo) ListByCompany(ctx context.Context, companyID string) ([]*repository.Warning, error) {
	var warnings []*repository.Warning
	err := r.db.Select(ctx, &warnings, `
        SELECT * FROM warnings
        WHERE company_id = $1
        ORDER BY sort_order ASC
    `, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list warnings for company %s: %w", companyID, err)
	}
	return warnings, nil
}

func (r *WarningRepo) Update(ctx context.Context, warning *repository.Warning) error {
	_, err := r.db.Exec(ctx, `
        UPDATE warnings
        SET
            content = $1,
            severity = $2,
            sort_order = $3,
            updated_at = $4
        WHERE id = $5
    `, warning.Content, warning.Severity, warning.SortOrder, warning.UpdatedAt, warning.ID)
	return err
}

// UpdateSortOrderTx moves one warning inside the caller's transaction; the
// reorder endpoint batches these together with its audit append.
func (r *WarningRepo) UpdateSortOrderTx(ctx context.Context, tx db.Tx, id string, sortOrder int) error {
	tag, err := tx.Exec(ctx, `
        UPDATE warnings SET sort_order = $1, updated_at = now() WHERE id = $2
    `, sortOrder, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *WarningRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM warnings WHERE id = $1", id)
	return err
}
