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

var employeeSortFields = map[string]bool{
	"id": true, "first_name": true, "last_name": true, "email": true, "role": true,
}

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	e := &entity.Employee{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, password, role
		FROM employees
		WHERE id = $1
	`, id)
	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Password, &e.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context, filter repository.EmployeeFilter, req pagination.PageRequest) (pagination.Page[entity.Employee], error) {
	var zero pagination.Page[entity.Employee]
	exprs := employeeFilterExpressions(filter)

	countQ, countArgs, err := countSQL("employees", exprs)
	if err != nil {
		return zero, err
	}
	var total int64
	if err := r.pool.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return zero, err
	}

	selQ, selArgs, err := pagedSelectSQL("employees",
		[]any{"id", "first_name", "last_name", "email", "password", "role"},
		exprs, sortExpressions(req.Sort, employeeSortFields), req)
	if err != nil {
		return zero, err
	}
	rows, err := r.pool.Query(ctx, selQ, selArgs...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	var items []entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Password, &e.Role); err != nil {
			return zero, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return zero, err
	}
	return pagination.Page[entity.Employee]{Items: items, Number: req.Page, Size: req.Size, Total: total}, nil
}

func (r *EmployeeRepository) Save(ctx context.Context, e *entity.Employee) error {
	if e.ID == 0 {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO employees (first_name, last_name, email, password, role)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, e.FirstName, e.LastName, e.Email, e.Password, e.Role)
		if err := row.Scan(&e.ID); err != nil {
			return translateError(err)
		}
		return nil
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, password = $4, role = $5
		WHERE id = $6
	`, e.FirstName, e.LastName, e.Email, e.Password, e.Role, e.ID)
	if err != nil {
		return translateError(err)
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, e *entity.Employee) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, e.ID)
	return err
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)
