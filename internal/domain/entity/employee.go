package entity

import "fmt"

// EmployeeRole enumerates the roles an employee can hold.
type EmployeeRole string

const (
	RoleManager EmployeeRole = "MANAGER"
	RoleAdmin   EmployeeRole = "ADMIN"
)

// ParseEmployeeRole validates a raw role value.
func ParseEmployeeRole(s string) (EmployeeRole, error) {
	switch EmployeeRole(s) {
	case RoleManager, RoleAdmin:
		return EmployeeRole(s), nil
	}
	return "", fmt.Errorf("unknown employee role: %q", s)
}

// Employee is an independent aggregate: it has no structural relation
// to orders or products. Email is unique across employees.
//
// Password is stored as received. The source system kept plaintext
// credentials and no verification flow exists to migrate to a hash.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      EmployeeRole
}
