package postgres

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

var dialect = goqu.Dialect("postgres")

// The filter translators turn the entity filter structs into goqu
// expressions, one conjunctive condition per present field. An empty
// filter produces no expressions, which renders a WHERE-less query.

func customerFilterExpressions(f repository.CustomerFilter) []goqu.Expression {
	exprs := make([]goqu.Expression, 0, 4)
	if f.FirstName != nil {
		exprs = append(exprs, goqu.C("first_name").Eq(*f.FirstName))
	}
	if f.LastName != nil {
		exprs = append(exprs, goqu.C("last_name").Eq(*f.LastName))
	}
	if f.EmailLike != nil {
		exprs = append(exprs, goqu.C("email").Like("%"+*f.EmailLike+"%"))
	}
	if f.PhoneNumber != nil {
		exprs = append(exprs, goqu.C("phone_number").Eq(*f.PhoneNumber))
	}
	return exprs
}

func employeeFilterExpressions(f repository.EmployeeFilter) []goqu.Expression {
	exprs := make([]goqu.Expression, 0, 4)
	if f.FirstName != nil {
		exprs = append(exprs, goqu.C("first_name").Eq(*f.FirstName))
	}
	if f.LastName != nil {
		exprs = append(exprs, goqu.C("last_name").Eq(*f.LastName))
	}
	if f.EmailLike != nil {
		exprs = append(exprs, goqu.C("email").Like("%"+*f.EmailLike+"%"))
	}
	if f.Role != nil {
		exprs = append(exprs, goqu.C("role").Eq(string(*f.Role)))
	}
	return exprs
}

func productFilterExpressions(f repository.ProductFilter) []goqu.Expression {
	exprs := make([]goqu.Expression, 0, 3)
	if f.Name != nil {
		exprs = append(exprs, goqu.C("name").Eq(*f.Name))
	}
	if f.Description != nil {
		exprs = append(exprs, goqu.C("description").Eq(*f.Description))
	}
	if f.Price != nil {
		exprs = append(exprs, goqu.C("price").Eq(*f.Price))
	}
	return exprs
}

func orderFilterExpressions(f repository.OrderFilter) []goqu.Expression {
	exprs := make([]goqu.Expression, 0, 3)
	if f.CreatedFrom != nil {
		exprs = append(exprs, goqu.C("created_date").Gte(*f.CreatedFrom))
	}
	if f.Status != nil {
		exprs = append(exprs, goqu.C("status").Eq(string(*f.Status)))
	}
	if f.ProductID != nil {
		// membership in the association, matching orders with at least
		// one linked product carrying the identifier
		exprs = append(exprs, goqu.L(
			"EXISTS (SELECT 1 FROM order_products op WHERE op.order_id = orders.id AND op.product_id = ?)",
			*f.ProductID,
		))
	}
	return exprs
}

// sortExpressions whitelists sortable columns; unknown fields are
// dropped rather than interpolated into SQL.
func sortExpressions(sort []pagination.SortKey, allowed map[string]bool) []exp.OrderedExpression {
	out := make([]exp.OrderedExpression, 0, len(sort))
	for _, k := range sort {
		if !allowed[k.Field] {
			continue
		}
		if k.Desc {
			out = append(out, goqu.C(k.Field).Desc())
		} else {
			out = append(out, goqu.C(k.Field).Asc())
		}
	}
	return out
}

func pagedSelectSQL(table string, cols []any, exprs []goqu.Expression, order []exp.OrderedExpression, req pagination.PageRequest) (string, []any, error) {
	ds := dialect.From(table).Prepared(true).Select(cols...)
	if len(exprs) > 0 {
		ds = ds.Where(exprs...)
	}
	if len(order) > 0 {
		ds = ds.Order(order...)
	}
	ds = ds.Limit(uint(req.Size)).Offset(uint(req.Offset()))
	return ds.ToSQL()
}

func countSQL(table string, exprs []goqu.Expression) (string, []any, error) {
	ds := dialect.From(table).Prepared(true).Select(goqu.COUNT(goqu.Star()))
	if len(exprs) > 0 {
		ds = ds.Where(exprs...)
	}
	return ds.ToSQL()
}
