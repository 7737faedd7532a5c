package repository

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
)

// Filters carry the optional narrowing criteria of a list call.
// A nil field contributes nothing; every present field adds one
// conjunctive condition. A zero-value filter therefore matches every
// row. String matches are case-sensitive exact matches, except the
// EmailLike fields which are substring containment.
//
// The Matches methods are the in-memory side of the predicate; the
// postgres layer translates the same structs into SQL expressions.

type CustomerFilter struct {
	FirstName   *string
	LastName    *string
	EmailLike   *string
	PhoneNumber *string
}

func (f CustomerFilter) Matches(c *entity.Customer) bool {
	if f.FirstName != nil && c.FirstName != *f.FirstName {
		return false
	}
	if f.LastName != nil && c.LastName != *f.LastName {
		return false
	}
	if f.EmailLike != nil && !strings.Contains(c.Email, *f.EmailLike) {
		return false
	}
	if f.PhoneNumber != nil && c.PhoneNumber != *f.PhoneNumber {
		return false
	}
	return true
}

type EmployeeFilter struct {
	FirstName *string
	LastName  *string
	EmailLike *string
	Role      *entity.EmployeeRole
}

func (f EmployeeFilter) Matches(e *entity.Employee) bool {
	if f.FirstName != nil && e.FirstName != *f.FirstName {
		return false
	}
	if f.LastName != nil && e.LastName != *f.LastName {
		return false
	}
	if f.EmailLike != nil && !strings.Contains(e.Email, *f.EmailLike) {
		return false
	}
	if f.Role != nil && e.Role != *f.Role {
		return false
	}
	return true
}

type ProductFilter struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
}

func (f ProductFilter) Matches(p *entity.Product) bool {
	if f.Name != nil && p.Name != *f.Name {
		return false
	}
	if f.Description != nil && p.Description != *f.Description {
		return false
	}
	if f.Price != nil && !p.Price.Equal(*f.Price) {
		return false
	}
	return true
}

// OrderFilter narrows orders by creation lower bound ("on or after"),
// exact status, and membership of a product in the order's collection.
type OrderFilter struct {
	CreatedFrom *time.Time
	Status      *entity.OrderStatus
	ProductID   *int64
}

func (f OrderFilter) Matches(o *entity.Order) bool {
	if f.CreatedFrom != nil && o.CreatedDate.Before(*f.CreatedFrom) {
		return false
	}
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.ProductID != nil && !o.HasProduct(*f.ProductID) {
		return false
	}
	return true
}
