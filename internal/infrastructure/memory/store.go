// Package memory provides an in-process implementation of the
// repository interfaces: an explicit store object owning one map per
// entity plus monotonic identity counters, guarded by a single mutex.
// It is the lightweight backing store used by the service tests and
// mirrors the postgres semantics, including uniqueness checks and
// fully materialized association slices.
package memory

import (
	"slices"
	"sync"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/application"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

type Store struct {
	mu sync.Mutex

	customers map[int64]*entity.Customer
	employees map[int64]*entity.Employee
	products  map[int64]*entity.Product
	orders    map[int64]*entity.Order

	customerSeq int64
	employeeSeq int64
	productSeq  int64
	orderSeq    int64
}

func NewStore() *Store {
	return &Store{
		customers: make(map[int64]*entity.Customer),
		employees: make(map[int64]*entity.Employee),
		products:  make(map[int64]*entity.Product),
		orders:    make(map[int64]*entity.Order),
	}
}

func (s *Store) Customers() *CustomerRepository { return &CustomerRepository{store: s} }
func (s *Store) Employees() *EmployeeRepository { return &EmployeeRepository{store: s} }
func (s *Store) Products() *ProductRepository   { return &ProductRepository{store: s} }
func (s *Store) Orders() *OrderRepository       { return &OrderRepository{store: s} }

// Association slices are derived from the owning side (orders) on
// every read, so inverse collections can never be stale.

func (s *Store) orderIDsOfCustomer(customerID int64) []int64 {
	var ids []int64
	for _, o := range s.orders {
		if o.CustomerID != nil && *o.CustomerID == customerID {
			ids = append(ids, o.ID)
		}
	}
	slices.Sort(ids)
	return ids
}

func (s *Store) orderIDsOfProduct(productID int64) []int64 {
	var ids []int64
	for _, o := range s.orders {
		if slices.Contains(o.ProductIDs, productID) {
			ids = append(ids, o.ID)
		}
	}
	slices.Sort(ids)
	return ids
}

func uniqueViolation(field string) error {
	return &application.ConstraintError{Field: field, Reason: "already in use"}
}

// page slices the matched, sorted items into the requested window.
func page[T any](items []T, req pagination.PageRequest) pagination.Page[T] {
	total := int64(len(items))
	start := req.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + req.Size
	if end > len(items) {
		end = len(items)
	}
	return pagination.Page[T]{
		Items:  slices.Clone(items[start:end]),
		Number: req.Page,
		Size:   req.Size,
		Total:  total,
	}
}

// orderBy applies the sort keys in sequence; unknown fields are
// ignored. cmp returns the comparison for a single field name.
func orderBy[T any](items []T, keys []pagination.SortKey, cmp func(a, b T, field string) int) {
	slices.SortStableFunc(items, func(a, b T) int {
		for _, k := range keys {
			c := cmp(a, b, k.Field)
			if c == 0 {
				continue
			}
			if k.Desc {
				return -c
			}
			return c
		}
		return 0
	})
}
