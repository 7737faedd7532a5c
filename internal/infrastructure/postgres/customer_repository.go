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

var customerSortFields = map[string]bool{
	"id": true, "first_name": true, "last_name": true, "email": true, "phone_number": true,
}

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c := &entity.Customer{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone_number
		FROM customers
		WHERE id = $1
	`, id)
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	orderIDs, err := r.orderIDsFor(ctx, []int64{c.ID})
	if err != nil {
		return nil, err
	}
	c.OrderIDs = orderIDs[c.ID]
	return c, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context, filter repository.CustomerFilter, req pagination.PageRequest) (pagination.Page[entity.Customer], error) {
	var zero pagination.Page[entity.Customer]
	exprs := customerFilterExpressions(filter)

	countQ, countArgs, err := countSQL("customers", exprs)
	if err != nil {
		return zero, err
	}
	var total int64
	if err := r.pool.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return zero, err
	}

	selQ, selArgs, err := pagedSelectSQL("customers",
		[]any{"id", "first_name", "last_name", "email", "phone_number"},
		exprs, sortExpressions(req.Sort, customerSortFields), req)
	if err != nil {
		return zero, err
	}
	rows, err := r.pool.Query(ctx, selQ, selArgs...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	var items []entity.Customer
	var ids []int64
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber); err != nil {
			return zero, err
		}
		items = append(items, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return zero, err
	}

	orderIDs, err := r.orderIDsFor(ctx, ids)
	if err != nil {
		return zero, err
	}
	for i := range items {
		items[i].OrderIDs = orderIDs[items[i].ID]
	}
	return pagination.Page[entity.Customer]{Items: items, Number: req.Page, Size: req.Size, Total: total}, nil
}

// orderIDsFor materializes the non-owning order collection for a batch
// of customers in one query.
func (r *CustomerRepository) orderIDsFor(ctx context.Context, customerIDs []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(customerIDs))
	if len(customerIDs) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_id
		FROM orders
		WHERE customer_id = ANY($1)
		ORDER BY id
	`, customerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var orderID, customerID int64
		if err := rows.Scan(&orderID, &customerID); err != nil {
			return nil, err
		}
		out[customerID] = append(out[customerID], orderID)
	}
	return out, rows.Err()
}

func (r *CustomerRepository) Save(ctx context.Context, c *entity.Customer) error {
	if c.ID == 0 {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO customers (first_name, last_name, email, phone_number)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, c.FirstName, c.LastName, c.Email, c.PhoneNumber)
		if err := row.Scan(&c.ID); err != nil {
			return translateError(err)
		}
		return nil
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE customers
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4
		WHERE id = $5
	`, c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.ID)
	if err != nil {
		return translateError(err)
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, c *entity.Customer) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, c.ID)
	return err
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)
