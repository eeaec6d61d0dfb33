package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/logibee/backoffice/internal/db"
	"github.com/logibee/backoffice/internal/repository"
)

type CompanyRepo struct {
	db db.DB
}

func NewCompanyRepo(db db.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

func (r *CompanyRepo) Create(ctx context.Context, company *repository.Company) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO companies (
            id, name, business_number, company_type, status, phone, representative, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, company.ID, company.Name, company.BusinessNumber, company.CompanyType, company.Status,
		company.Phone, company.Representative, company.CreatedAt, company.UpdatedAt)
	return err
}

func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*repository.Company, error) {
	var company repository.Company
	err := r.db.Get(ctx, &company, "SELECT * FROM companies WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepo) Update(ctx context.Context, company *repository.Company) error {
	_, err := r.db.Exec(ctx, `
        UPDATE companies
        SET
            name = $1,
            business_number = $2,
            company_type = $3,
            status = $4,
            phone = $5,
            representative = $6,
            updated_at = $7
        WHERE id = $8
    `, company.Name, company.BusinessNumber, company.CompanyType, company.Status,
		company.Phone, company.Representative, company.UpdatedAt, company.ID)
	return err
}

func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM companies WHERE id = $1", id)
	return err
}
