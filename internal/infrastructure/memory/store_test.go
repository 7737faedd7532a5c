package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/application"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/infrastructure/memory"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

func Test_CustomerRepository_SaveAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()

	a := &entity.Customer{FirstName: "A", Email: "a@example.com", PhoneNumber: "+1"}
	b := &entity.Customer{FirstName: "B", Email: "b@example.com", PhoneNumber: "+2"}
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func Test_CustomerRepository_FindByID_MissingIsNilNil(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()

	got, err := repo.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func Test_CustomerRepository_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()

	require.NoError(t, repo.Save(ctx, &entity.Customer{Email: "dup@example.com", PhoneNumber: "+1"}))
	err := repo.Save(ctx, &entity.Customer{Email: "dup@example.com", PhoneNumber: "+2"})

	var ce *application.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "email", ce.Field)
}

func Test_CustomerRepository_UniquePhoneJSONField(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()

	require.NoError(t, repo.Save(ctx, &entity.Customer{Email: "a@example.com", PhoneNumber: "+15550100001"}))
	err := repo.Save(ctx, &entity.Customer{Email: "b@example.com", PhoneNumber: "+15550100001"})

	var ce *application.ConstraintError
	require.ErrorAs(t, err, &ce)
	// same JSON field name the postgres constraint map reports
	assert.Equal(t, "phoneNumber", ce.Field)
}

func Test_CustomerRepository_OrderIDsDerivedFromOrders(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	customers := store.Customers()
	orders := store.Orders()

	c := &entity.Customer{Email: "c@example.com", PhoneNumber: "+1"}
	require.NoError(t, customers.Save(ctx, c))

	o := &entity.Order{CreatedDate: time.Now(), Status: entity.StatusNew, CustomerID: &c.ID}
	require.NoError(t, orders.Save(ctx, o))

	got, err := customers.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{o.ID}, got.OrderIDs)

	require.NoError(t, orders.Delete(ctx, o))
	got, err = customers.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.OrderIDs)
}

func Test_ProductRepository_OrderIDsDerivedFromOrders(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	products := store.Products()
	orders := store.Orders()

	p := &entity.Product{Name: "Widget", Price: decimal.RequireFromString("1.00")}
	require.NoError(t, products.Save(ctx, p))

	o := &entity.Order{CreatedDate: time.Now(), Status: entity.StatusNew, ProductIDs: []int64{p.ID}}
	require.NoError(t, orders.Save(ctx, o))

	got, err := products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{o.ID}, got.OrderIDs)
}

func Test_FindAll_FilterSortAndPage(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Employees()

	seed := []entity.Employee{
		{FirstName: "Ann", LastName: "Zimmer", Email: "ann@example.com", Role: entity.RoleAdmin},
		{FirstName: "Bob", LastName: "Young", Email: "bob@example.com", Role: entity.RoleManager},
		{FirstName: "Cid", LastName: "Xu", Email: "cid@example.com", Role: entity.RoleManager},
		{FirstName: "Dee", LastName: "Wong", Email: "dee@example.com", Role: entity.RoleManager},
	}
	for i := range seed {
		require.NoError(t, repo.Save(ctx, &seed[i]))
	}

	manager := entity.RoleManager
	req := pagination.PageRequest{Page: 0, Size: 2, Sort: []pagination.SortKey{{Field: "last_name"}}}
	page, err := repo.FindAll(ctx, repository.EmployeeFilter{Role: &manager}, req)
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Wong", page.Items[0].LastName)
	assert.Equal(t, "Xu", page.Items[1].LastName)

	req.Page = 1
	page, err = repo.FindAll(ctx, repository.EmployeeFilter{Role: &manager}, req)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Young", page.Items[0].LastName)
}

func Test_FindAll_PageBeyondEndIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()
	require.NoError(t, repo.Save(ctx, &entity.Customer{Email: "a@example.com", PhoneNumber: "+1"}))

	page, err := repo.FindAll(ctx, repository.CustomerFilter{}, pagination.PageRequest{Page: 5, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(1), page.Total)
}

func Test_FindAll_DescendingSort(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()

	for _, p := range []entity.Product{
		{Name: "A", Price: decimal.RequireFromString("3.00")},
		{Name: "B", Price: decimal.RequireFromString("1.00")},
		{Name: "C", Price: decimal.RequireFromString("2.00")},
	} {
		pp := p
		require.NoError(t, repo.Save(ctx, &pp))
	}

	req := pagination.PageRequest{Page: 0, Size: 10, Sort: []pagination.SortKey{{Field: "price", Desc: true}}}
	page, err := repo.FindAll(ctx, repository.ProductFilter{}, req)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "A", page.Items[0].Name)
	assert.Equal(t, "C", page.Items[1].Name)
	assert.Equal(t, "B", page.Items[2].Name)
}

func Test_OrderRepository_SaveIsolatesCaller(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Orders()

	o := &entity.Order{CreatedDate: time.Now(), Status: entity.StatusNew, ProductIDs: []int64{1}}
	require.NoError(t, repo.Save(ctx, o))

	// mutating the caller's slice must not leak into the store
	o.ProductIDs[0] = 99
	got, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, got.ProductIDs)
}
