package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/logibee/backoffice/internal/db"
	"github.com/logibee/backoffice/internal/repository"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, order *repository.Order) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO orders (
            id, company_id, cargo_name, cargo_weight, flow_status,
            price_sales, price_purchase, driver_id, vehicle_number,
            loading_address, unloading_address, metadata, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `, order.ID, order.CompanyID, order.CargoName, order.CargoWeight, order.FlowStatus,
		order.PriceSales, order.PricePurchase, order.DriverID, order.VehicleNumber,
		order.LoadingAddress, order.UnloadingAddress, order.Metadata, order.CreatedAt, order.UpdatedAt)
	return err
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) Update(ctx context.Context, order *repository.Order) error {
	_, err := r.db.Exec(ctx, `
        UPDATE orders
        SET
            cargo_name = $1,
            cargo_weight = $2,
            flow_status = $3,
            price_sales = $4,
            price_purchase = $5,
            driver_id = $6,
            vehicle_number = $7,
            loading_address = $8,
            unloading_address = $9,
            metadata = $10,
            updated_at = $11
        WHERE id = $12
    `, order.CargoName, order.CargoWeight, order.FlowStatus,
		order.PriceSales, order.PricePurchase, order.DriverID, order.VehicleNumber,
		order.LoadingAddress, order.UnloadingAddress, order.Metadata, order.UpdatedAt, order.ID)
	return err
}

// UpdateTx is Update within the caller's transaction; the dispatch flow
// shares one transaction between the order update and its SMS outbox task.
func (r *OrderRepo) UpdateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	_, err := tx.Exec(ctx, `
        UPDATE orders
        SET
            cargo_name = $1,
            cargo_weight = $2,
            flow_status = $3,
            price_sales = $4,
            price_purchase = $5,
            driver_id = $6,
            vehicle_number = $7,
            loading_address = $8,
            unloading_address = $9,
            metadata = $10,
            updated_at = $11
        WHERE id = $12
    `, order.CargoName, order.CargoWeight, order.FlowStatus,
		order.PriceSales, order.PricePurchase, order.DriverID, order.VehicleNumber,
		order.LoadingAddress, order.UnloadingAddress, order.Metadata, order.UpdatedAt, order.ID)
	return err
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	return err
}

func (r *OrderRepo) ListByCompany(ctx context.Context, companyID string, page, limit int) ([]*repository.Order, error) {
	offset := (page - 1) * limit
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, `
        SELECT * FROM orders
        WHERE company_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for company %s: %w", companyID, err)
	}
	return orders, nil
}
