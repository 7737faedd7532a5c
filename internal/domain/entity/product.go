package entity

import "github.com/shopspring/decimal"

// Product carries a unique name and a fixed-precision price
// (at most 9 integer digits and 2 fractional digits, never negative).
//
// OrderIDs is the inverse side of the order<->product many-to-many
// relation. Repositories always materialize it in full, so an empty
// slice really means "referenced by no order" and the delete guard in
// ProductService can trust it.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	OrderIDs    []int64
}

// ReferencedByOrders reports whether any order still links this product.
func (p *Product) ReferencedByOrders() bool {
	return len(p.OrderIDs) > 0
}
