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

var productSortFields = map[string]bool{
	"id": true, "name": true, "description": true, "price": true,
}

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	p := &entity.Product{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, price
		FROM products
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	orderIDs, err := r.orderIDsFor(ctx, []int64{p.ID})
	if err != nil {
		return nil, err
	}
	p.OrderIDs = orderIDs[p.ID]
	return p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context, filter repository.ProductFilter, req pagination.PageRequest) (pagination.Page[entity.Product], error) {
	var zero pagination.Page[entity.Product]
	exprs := productFilterExpressions(filter)

	countQ, countArgs, err := countSQL("products", exprs)
	if err != nil {
		return zero, err
	}
	var total int64
	if err := r.pool.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return zero, err
	}

	selQ, selArgs, err := pagedSelectSQL("products",
		[]any{"id", "name", "description", "price"},
		exprs, sortExpressions(req.Sort, productSortFields), req)
	if err != nil {
		return zero, err
	}
	rows, err := r.pool.Query(ctx, selQ, selArgs...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	var items []entity.Product
	var ids []int64
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price); err != nil {
			return zero, err
		}
		items = append(items, p)
		ids = append(ids, p.ID)
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
	return pagination.Page[entity.Product]{Items: items, Number: req.Page, Size: req.Size, Total: total}, nil
}

// orderIDsFor force-loads the order collection for a batch of products.
// The delete guard in ProductService depends on this being complete.
func (r *ProductRepository) orderIDsFor(ctx context.Context, productIDs []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, product_id
		FROM order_products
		WHERE product_id = ANY($1)
		ORDER BY order_id
	`, productIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var orderID, productID int64
		if err := rows.Scan(&orderID, &productID); err != nil {
			return nil, err
		}
		out[productID] = append(out[productID], orderID)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Save(ctx context.Context, p *entity.Product) error {
	if p.ID == 0 {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO products (name, description, price)
			VALUES ($1, $2, $3)
			RETURNING id
		`, p.Name, p.Description, p.Price)
		if err := row.Scan(&p.ID); err != nil {
			return translateError(err)
		}
		return nil
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3
		WHERE id = $4
	`, p.Name, p.Description, p.Price, p.ID)
	if err != nil {
		return translateError(err)
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, p *entity.Product) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, p.ID)
	return err
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
