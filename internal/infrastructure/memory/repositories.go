package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

var (
	_ repository.CustomerRepository = (*CustomerRepository)(nil)
	_ repository.EmployeeRepository = (*EmployeeRepository)(nil)
	_ repository.ProductRepository  = (*ProductRepository)(nil)
	_ repository.OrderRepository    = (*OrderRepository)(nil)
)

/***** customers *****/

type CustomerRepository struct {
	store *Store
}

func (r *CustomerRepository) materialize(c *entity.Customer) entity.Customer {
	cp := *c
	cp.OrderIDs = r.store.orderIDsOfCustomer(c.ID)
	return cp
}

func (r *CustomerRepository) FindByID(_ context.Context, id int64) (*entity.Customer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := r.materialize(c)
	return &cp, nil
}

func (r *CustomerRepository) FindAll(_ context.Context, filter repository.CustomerFilter, req pagination.PageRequest) (pagination.Page[entity.Customer], error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []entity.Customer
	for _, c := range s.customers {
		if filter.Matches(c) {
			matched = append(matched, r.materialize(c))
		}
	}
	orderBy(matched, req.Sort, func(a, b entity.Customer, field string) int {
		switch field {
		case "id":
			return cmp.Compare(a.ID, b.ID)
		case "first_name":
			return cmp.Compare(a.FirstName, b.FirstName)
		case "last_name":
			return cmp.Compare(a.LastName, b.LastName)
		case "email":
			return cmp.Compare(a.Email, b.Email)
		case "phone_number":
			return cmp.Compare(a.PhoneNumber, b.PhoneNumber)
		}
		return 0
	})
	return page(matched, req), nil
}

func (r *CustomerRepository) Save(_ context.Context, c *entity.Customer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, other := range s.customers {
		if other.ID == c.ID {
			continue
		}
		if other.Email == c.Email {
			return uniqueViolation("email")
		}
		if other.PhoneNumber == c.PhoneNumber {
			return uniqueViolation("phoneNumber")
		}
	}
	if c.ID == 0 {
		s.customerSeq++
		c.ID = s.customerSeq
	}
	cp := *c
	cp.OrderIDs = nil // non-owning side, derived on read
	s.customers[cp.ID] = &cp
	return nil
}

func (r *CustomerRepository) Delete(_ context.Context, c *entity.Customer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.customers, c.ID)
	return nil
}

/***** employees *****/

type EmployeeRepository struct {
	store *Store
}

func (r *EmployeeRepository) FindByID(_ context.Context, id int64) (*entity.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *EmployeeRepository) FindAll(_ context.Context, filter repository.EmployeeFilter, req pagination.PageRequest) (pagination.Page[entity.Employee], error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []entity.Employee
	for _, e := range s.employees {
		if filter.Matches(e) {
			matched = append(matched, *e)
		}
	}
	orderBy(matched, req.Sort, func(a, b entity.Employee, field string) int {
		switch field {
		case "id":
			return cmp.Compare(a.ID, b.ID)
		case "first_name":
			return cmp.Compare(a.FirstName, b.FirstName)
		case "last_name":
			return cmp.Compare(a.LastName, b.LastName)
		case "email":
			return cmp.Compare(a.Email, b.Email)
		case "role":
			return cmp.Compare(string(a.Role), string(b.Role))
		}
		return 0
	})
	return page(matched, req), nil
}

func (r *EmployeeRepository) Save(_ context.Context, e *entity.Employee) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, other := range s.employees {
		if other.ID != e.ID && other.Email == e.Email {
			return uniqueViolation("email")
		}
	}
	if e.ID == 0 {
		s.employeeSeq++
		e.ID = s.employeeSeq
	}
	cp := *e
	s.employees[cp.ID] = &cp
	return nil
}

func (r *EmployeeRepository) Delete(_ context.Context, e *entity.Employee) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.employees, e.ID)
	return nil
}

/***** products *****/

type ProductRepository struct {
	store *Store
}

func (r *ProductRepository) materialize(p *entity.Product) entity.Product {
	cp := *p
	cp.OrderIDs = r.store.orderIDsOfProduct(p.ID)
	return cp
}

func (r *ProductRepository) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := r.materialize(p)
	return &cp, nil
}

func (r *ProductRepository) FindAll(_ context.Context, filter repository.ProductFilter, req pagination.PageRequest) (pagination.Page[entity.Product], error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []entity.Product
	for _, p := range s.products {
		if filter.Matches(p) {
			matched = append(matched, r.materialize(p))
		}
	}
	orderBy(matched, req.Sort, func(a, b entity.Product, field string) int {
		switch field {
		case "id":
			return cmp.Compare(a.ID, b.ID)
		case "name":
			return cmp.Compare(a.Name, b.Name)
		case "description":
			return cmp.Compare(a.Description, b.Description)
		case "price":
			return a.Price.Cmp(b.Price)
		}
		return 0
	})
	return page(matched, req), nil
}

func (r *ProductRepository) Save(_ context.Context, p *entity.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, other := range s.products {
		if other.ID != p.ID && other.Name == p.Name {
			return uniqueViolation("name")
		}
	}
	if p.ID == 0 {
		s.productSeq++
		p.ID = s.productSeq
	}
	cp := *p
	cp.OrderIDs = nil // inverse side, derived on read
	s.products[cp.ID] = &cp
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, p *entity.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, p.ID)
	return nil
}

/***** orders *****/

type OrderRepository struct {
	store *Store
}

func cloneOrder(o *entity.Order) entity.Order {
	cp := *o
	cp.ProductIDs = slices.Clone(o.ProductIDs)
	if o.CustomerID != nil {
		id := *o.CustomerID
		cp.CustomerID = &id
	}
	return cp
}

func (r *OrderRepository) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := cloneOrder(o)
	return &cp, nil
}

func (r *OrderRepository) FindAll(_ context.Context, filter repository.OrderFilter, req pagination.PageRequest) (pagination.Page[entity.Order], error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []entity.Order
	for _, o := range s.orders {
		if filter.Matches(o) {
			matched = append(matched, cloneOrder(o))
		}
	}
	orderBy(matched, req.Sort, func(a, b entity.Order, field string) int {
		switch field {
		case "id":
			return cmp.Compare(a.ID, b.ID)
		case "created_date":
			return a.CreatedDate.Compare(b.CreatedDate)
		case "status":
			return cmp.Compare(string(a.Status), string(b.Status))
		}
		return 0
	})
	return page(matched, req), nil
}

// Save persists the order together with its owned association slice,
// in one step, matching the postgres repository's transactional write.
func (r *OrderRepository) Save(_ context.Context, o *entity.Order) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == 0 {
		s.orderSeq++
		o.ID = s.orderSeq
	}
	cp := cloneOrder(o)
	s.orders[cp.ID] = &cp
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, o *entity.Order) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, o.ID)
	return nil
}
