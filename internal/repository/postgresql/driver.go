package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/logibee/backoffice/internal/db"
	"github.com/logibee/backoffice/internal/repository"
)

type DriverRepo struct {
	db db.DB
}

func NewDriverRepo(db db.DB) *DriverRepo {
	return &DriverRepo{db: db}
}

func (r *DriverRepo) Create(ctx context.Context, driver *repository.Driver) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO drivers (
            id, company_id, name, phone, vehicle_number, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, driver.ID, driver.CompanyID, driver.Name, driver.Phone, driver.VehicleNumber,
		driver.Status, driver.CreatedAt, driver.UpdatedAt)
	return err
}

func (r *DriverRepo) GetByID(ctx context.Context, id string) (*repository.Driver, error) {
	var driver repository.Driver
	err := r.db.Get(ctx, &driver, "SELECT * FROM drivers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepo) Update(ctx context.Context, driver *repository.Driver) error {
	_, err := r.db.Exec(ctx, `
        UPDATE drivers
        SET
            company_id = $1,
            name = $2,
            phone = $3,
            vehicle_number = $4,
            status = $5,
            updated_at = $6
        WHERE id = $7
    `, driver.CompanyID, driver.Name, driver.Phone, driver.VehicleNumber,
		driver.Status, driver.UpdatedAt, driver.ID)
	return err
}

func (r *DriverRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM drivers WHERE id = $1", id)
	return err
}
