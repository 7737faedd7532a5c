package entity

import (
	"fmt"
	"slices"
	"time"
)

// OrderStatus enumerates the lifecycle states of an order.
// Transition legality is intentionally not enforced: any status may
// overwrite any other via update.
type OrderStatus string

const (
	StatusNew        OrderStatus = "NEW"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCanceled   OrderStatus = "CANCELED"
)

// ParseOrderStatus validates a raw status value.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusNew, StatusProcessing, StatusCompleted, StatusCanceled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status: %q", s)
}

// Order is the owning side of both relations: it holds the optional
// customer reference and the product collection. CreatedDate is stamped
// exactly once by OrderService when the order is added and is never
// updated afterwards.
type Order struct {
	ID          int64
	CreatedDate time.Time
	Status      OrderStatus
	CustomerID  *int64
	ProductIDs  []int64
}

// AddProduct links the product on both sides of the relation. This and
// RemoveProduct are the only places where the two collections are
// mutated together; service code must not touch them directly.
func (o *Order) AddProduct(p *Product) {
	if !slices.Contains(o.ProductIDs, p.ID) {
		o.ProductIDs = append(o.ProductIDs, p.ID)
	}
	if !slices.Contains(p.OrderIDs, o.ID) {
		p.OrderIDs = append(p.OrderIDs, o.ID)
	}
}

// RemoveProduct unlinks the product from both sides. Removing a product
// that is not in the order is a no-op.
func (o *Order) RemoveProduct(p *Product) {
	o.ProductIDs = slices.DeleteFunc(o.ProductIDs, func(id int64) bool { return id == p.ID })
	p.OrderIDs = slices.DeleteFunc(p.OrderIDs, func(id int64) bool { return id == o.ID })
}

// HasProduct reports whether the order currently references the product.
func (o *Order) HasProduct(productID int64) bool {
	return slices.Contains(o.ProductIDs, productID)
}
