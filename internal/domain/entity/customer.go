package entity

// Customer owns contact data and references the orders placed by it.
// Email and PhoneNumber are unique across all customers; the backing
// store enforces both constraints.
//
// OrderIDs is the non-owning side of the customer<->order relation and
// is always fully materialized by repositories.
type Customer struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	OrderIDs    []int64
}
