package repository

import (
	"context"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

// The repository interfaces form the storage facade the services work
// against. FindByID returns (nil, nil) when no row matches; services
// turn that into their own not-found error. Save inserts when the
// entity has no identity yet and updates otherwise, persisting owned
// associations in the same call. FindAll always materializes
// association ID slices so relationship checks never observe a
// half-loaded collection.

type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	FindAll(ctx context.Context, filter CustomerFilter, page pagination.PageRequest) (pagination.Page[entity.Customer], error)
	Save(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, c *entity.Customer) error
}

type EmployeeRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Employee, error)
	FindAll(ctx context.Context, filter EmployeeFilter, page pagination.PageRequest) (pagination.Page[entity.Employee], error)
	Save(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, e *entity.Employee) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindAll(ctx context.Context, filter ProductFilter, page pagination.PageRequest) (pagination.Page[entity.Product], error)
	Save(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, p *entity.Product) error
}

type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindAll(ctx context.Context, filter OrderFilter, page pagination.PageRequest) (pagination.Page[entity.Order], error)
	Save(ctx context.Context, o *entity.Order) error
	Delete(ctx context.Context, o *entity.Order) error
}
