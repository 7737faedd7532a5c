package application

import (
	"errors"
	"fmt"
)

// The service error taxonomy. Handlers map these to HTTP statuses;
// everything else surfaces as an internal error.

// NotFoundError reports that an identifier resolved to no row.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func NewNotFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a mutation blocked by a relationship rule,
// e.g. deleting a product that orders still reference.
type ConflictError struct {
	Entity string
	ID     int64
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with id %d: %s", e.Entity, e.ID, e.Reason)
}

// ConstraintError is the client-visible translation of a store-level
// uniqueness violation (email, phone number, product name).
type ConstraintError struct {
	Field  string
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsConstraint(err error) bool {
	var c *ConstraintError
	return errors.As(err, &c)
}
