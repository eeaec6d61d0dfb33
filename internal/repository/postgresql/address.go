package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/logibee/backoffice/internal/db"
	"github.com/logibee/backoffice/internal/repository"
)

type AddressRepo struct {
	db db.DB
}

func NewAddressRepo(db db.DB) *AddressRepo {
	return &AddressRepo{db: db}
}

func (r *AddressRepo) Create(ctx context.Context, address *repository.Address) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO addresses (
            id, company_id, alias, road_address, detail_address, metadata, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, address.ID, address.CompanyID, address.Alias, address.RoadAddress,
		address.DetailAddress, address.Metadata, address.CreatedAt, address.UpdatedAt)
	return err
}

func (r *AddressRepo) GetByID(ctx context.Context, id string) (*repository.Address, error) {
	var address repository.Address
	err := r.db.Get(ctx, &address, "SELECT * FROM addresses WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepo) Update(ctx context.Context, address *repository.Address) error {
	_, err := r.db.Exec(ctx, `
        UPDATE addresses
        SET
            alias = $1,
            road_address = $2,
            detail_address = $3,
            metadata = $4,
            updated_at = $5
        WHERE id = $6
    `, address.Alias, address.RoadAddress, address.DetailAddress, address.Metadata,
		address.UpdatedAt, address.ID)
	return err
}

func (r *AddressRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM addresses WHERE id = $1", id)
	return err
}
