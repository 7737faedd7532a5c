package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/application"
)

const uniqueViolationCode = "23505"

// constraintFields maps database constraint names to the request field
// a client can act on.
var constraintFields = map[string]string{
	"customers_email_key":        "email",
	"customers_phone_number_key": "phoneNumber",
	"employees_email_key":        "email",
	"products_name_key":          "name",
}

// translateError converts a store-level uniqueness failure into the
// client-visible constraint error instead of leaking the raw pg error.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		field, ok := constraintFields[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		return &application.ConstraintError{Field: field, Reason: "already in use"}
	}
	return err
}
