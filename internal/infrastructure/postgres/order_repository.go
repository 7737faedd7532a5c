package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

var orderSortFields = map[string]bool{
	"id": true, "created_date": true, "status": true,
}

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	o := &entity.Order{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, created_date, status, customer_id
		FROM orders
		WHERE id = $1
	`, id)
	if err := row.Scan(&o.ID, &o.CreatedDate, &o.Status, &o.CustomerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	productIDs, err := r.productIDsFor(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.ProductIDs = productIDs[o.ID]
	return o, nil
}

func (r *OrderRepository) FindAll(ctx context.Context, filter repository.OrderFilter, req pagination.PageRequest) (pagination.Page[entity.Order], error) {
	var zero pagination.Page[entity.Order]
	exprs := orderFilterExpressions(filter)

	countQ, countArgs, err := countSQL("orders", exprs)
	if err != nil {
		return zero, err
	}
	var total int64
	if err := r.pool.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return zero, err
	}

	selQ, selArgs, err := pagedSelectSQL("orders",
		[]any{"id", "created_date", "status", "customer_id"},
		exprs, sortExpressions(req.Sort, orderSortFields), req)
	if err != nil {
		return zero, err
	}
	rows, err := r.pool.Query(ctx, selQ, selArgs...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	var items []entity.Order
	var ids []int64
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CreatedDate, &o.Status, &o.CustomerID); err != nil {
			return zero, err
		}
		items = append(items, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return zero, err
	}

	productIDs, err := r.productIDsFor(ctx, ids)
	if err != nil {
		return zero, err
	}
	for i := range items {
		items[i].ProductIDs = productIDs[items[i].ID]
	}
	return pagination.Page[entity.Order]{Items: items, Number: req.Page, Size: req.Size, Total: total}, nil
}

func (r *OrderRepository) productIDsFor(ctx context.Context, orderIDs []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, product_id
		FROM order_products
		WHERE order_id = ANY($1)
		ORDER BY product_id
	`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var orderID, productID int64
		if err := rows.Scan(&orderID, &productID); err != nil {
			return nil, err
		}
		out[orderID] = append(out[orderID], productID)
	}
	return out, rows.Err()
}

// Save writes the order row and rewrites its association rows inside a
// single transaction, so the product collection can never be observed
// half-updated.
func (r *OrderRepository) Save(ctx context.Context, o *entity.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if o.ID == 0 {
		row := tx.QueryRow(ctx, `
			INSERT INTO orders (created_date, status, customer_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`, o.CreatedDate, o.Status, o.CustomerID)
		if err := row.Scan(&o.ID); err != nil {
			return translateError(err)
		}
	} else {
		// created_date is immutable and deliberately left out
		res, err := tx.Exec(ctx, `
			UPDATE orders
			SET status = $1, customer_id = $2
			WHERE id = $3
		`, o.Status, o.CustomerID, o.ID)
		if err != nil {
			return translateError(err)
		}
		if res.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_products WHERE order_id = $1`, o.ID); err != nil {
		return err
	}
	for _, productID := range o.ProductIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_products (order_id, product_id)
			VALUES ($1, $2)
		`, o.ID, productID); err != nil {
			return translateError(err)
		}
	}
	return tx.Commit(ctx)
}

func (r *OrderRepository) Delete(ctx context.Context, o *entity.Order) error {
	// order_products rows go away via ON DELETE CASCADE
	_, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, o.ID)
	return err
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
