package repository_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

func Test_CustomerFilter_Matches(t *testing.T) {
	c := &entity.Customer{
		FirstName:   "Alice",
		LastName:    "Anderson",
		Email:       "alice@example.com",
		PhoneNumber: "+15550100001",
	}

	tests := []struct {
		name   string
		filter repository.CustomerFilter
		want   bool
	}{
		{"empty_filter_matches_everything", repository.CustomerFilter{}, true},
		{"first_name_exact", repository.CustomerFilter{FirstName: strPtr("Alice")}, true},
		{"first_name_mismatch", repository.CustomerFilter{FirstName: strPtr("alice")}, false},
		{"email_substring", repository.CustomerFilter{EmailLike: strPtr("example")}, true},
		{"email_substring_miss", repository.CustomerFilter{EmailLike: strPtr("gmail")}, false},
		{"all_conditions_conjunctive", repository.CustomerFilter{
			FirstName: strPtr("Alice"),
			LastName:  strPtr("Anderson"),
			EmailLike: strPtr("alice@"),
		}, true},
		{"one_failing_condition_fails_all", repository.CustomerFilter{
			FirstName:   strPtr("Alice"),
			PhoneNumber: strPtr("+10000000000"),
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(c))
		})
	}
}

func Test_EmployeeFilter_Matches(t *testing.T) {
	e := &entity.Employee{
		FirstName: "Mark",
		LastName:  "Miller",
		Email:     "mark@example.com",
		Role:      entity.RoleManager,
	}

	admin := entity.RoleAdmin
	manager := entity.RoleManager

	assert.True(t, repository.EmployeeFilter{}.Matches(e))
	assert.True(t, repository.EmployeeFilter{Role: &manager}.Matches(e))
	assert.False(t, repository.EmployeeFilter{Role: &admin}.Matches(e))
	assert.True(t, repository.EmployeeFilter{EmailLike: strPtr("mark")}.Matches(e))
	assert.False(t, repository.EmployeeFilter{LastName: strPtr("Smith")}.Matches(e))
}

func Test_ProductFilter_Matches(t *testing.T) {
	p := &entity.Product{
		Name:        "Keyboard",
		Description: "Mechanical keyboard",
		Price:       decimal.RequireFromString("89.99"),
	}

	samePrice := decimal.RequireFromString("89.990")
	otherPrice := decimal.RequireFromString("90.00")

	assert.True(t, repository.ProductFilter{}.Matches(p))
	assert.True(t, repository.ProductFilter{Name: strPtr("Keyboard")}.Matches(p))
	// price comparison is numeric, not textual
	assert.True(t, repository.ProductFilter{Price: &samePrice}.Matches(p))
	assert.False(t, repository.ProductFilter{Price: &otherPrice}.Matches(p))
	assert.False(t, repository.ProductFilter{Description: strPtr("Membrane")}.Matches(p))
}

func Test_OrderFilter_Matches(t *testing.T) {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	o := &entity.Order{
		CreatedDate: created,
		Status:      entity.StatusProcessing,
		ProductIDs:  []int64{3, 7},
	}

	before := created.Add(-time.Hour)
	after := created.Add(time.Hour)
	processing := entity.StatusProcessing
	completed := entity.StatusCompleted
	inOrder := int64(7)
	notInOrder := int64(9)

	assert.True(t, repository.OrderFilter{}.Matches(o))
	assert.True(t, repository.OrderFilter{CreatedFrom: &before}.Matches(o))
	// bound is inclusive
	assert.True(t, repository.OrderFilter{CreatedFrom: &created}.Matches(o))
	assert.False(t, repository.OrderFilter{CreatedFrom: &after}.Matches(o))
	assert.True(t, repository.OrderFilter{Status: &processing}.Matches(o))
	assert.False(t, repository.OrderFilter{Status: &completed}.Matches(o))
	assert.True(t, repository.OrderFilter{ProductID: &inOrder}.Matches(o))
	assert.False(t, repository.OrderFilter{ProductID: &notInOrder}.Matches(o))
	assert.True(t, repository.OrderFilter{CreatedFrom: &before, Status: &processing, ProductID: &inOrder}.Matches(o))
}
