package application_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/application"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/infrastructure/memory"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

func newCustomerFixture(t *testing.T) (*application.CustomerService, *application.OrderService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	logger := testLogger()
	customers := application.NewCustomerService(store.Customers(), store.Orders(), logger, nil)
	orders := application.NewOrderService(store.Orders(), store.Customers(), store.Products(), logger, nil, nil)
	return customers, orders, store
}

func Test_CustomerService_AddAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCustomerFixture(t)

	created, err := svc.Add(ctx, application.AddCustomerInput{
		FirstName:   "Alice",
		LastName:    "Anderson",
		Email:       "alice@example.com",
		PhoneNumber: "+15550100001",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Empty(t, got.OrderIDs)
}

func Test_CustomerService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCustomerFixture(t)

	_, err := svc.GetByID(ctx, 42)
	assert.True(t, application.IsNotFound(err))
}

func Test_CustomerService_Update_PartialFields(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCustomerFixture(t)

	created, err := svc.Add(ctx, application.AddCustomerInput{
		FirstName:   "Alice",
		LastName:    "Anderson",
		Email:       "alice@example.com",
		PhoneNumber: "+15550100001",
	})
	require.NoError(t, err)

	newLast := "Brown"
	updated, err := svc.Update(ctx, created.ID, application.UpdateCustomerInput{LastName: &newLast})
	require.NoError(t, err)

	assert.Equal(t, "Brown", updated.LastName)
	// untouched fields survive
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func Test_CustomerService_Update_NoChangeIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCustomerFixture(t)

	created, err := svc.Add(ctx, application.AddCustomerInput{
		FirstName: "Alice", LastName: "Anderson",
		Email: "alice@example.com", PhoneNumber: "+15550100001",
	})
	require.NoError(t, err)

	same := "Alice"
	updated, err := svc.Update(ctx, created.ID, application.UpdateCustomerInput{FirstName: &same})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
}

func Test_CustomerService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCustomerFixture(t)

	name := "Nobody"
	_, err := svc.Update(ctx, 7, application.UpdateCustomerInput{FirstName: &name})
	assert.True(t, application.IsNotFound(err))
}

func Test_CustomerService_Remove_SeversOrderReferences(t *testing.T) {
	ctx := context.Background()
	svc, orderSvc, store := newCustomerFixture(t)

	created, err := svc.Add(ctx, application.AddCustomerInput{
		FirstName: "Alice", LastName: "Anderson",
		Email: "alice@example.com", PhoneNumber: "+15550100001",
	})
	require.NoError(t, err)

	order, err := orderSvc.Add(ctx, application.AddOrderInput{CustomerID: &created.ID})
	require.NoError(t, err)

	deletedID, err := svc.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deletedID)

	// the order survives with its customer reference cleared
	survivor, err := store.Orders().FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, survivor)
	assert.Nil(t, survivor.CustomerID)

	_, err = svc.GetByID(ctx, created.ID)
	assert.True(t, application.IsNotFound(err))
}

func Test_CustomerService_Remove_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCustomerFixture(t)

	_, err := svc.Remove(ctx, 404)
	assert.True(t, application.IsNotFound(err))
}

func Test_CustomerService_List_FiltersAndPages(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCustomerFixture(t)

	seed := []application.AddCustomerInput{
		{FirstName: "Alice", LastName: "Anderson", Email: "alice@corp.com", PhoneNumber: "+1"},
		{FirstName: "Bob", LastName: "Brown", Email: "bob@corp.com", PhoneNumber: "+2"},
		{FirstName: "Carol", LastName: "Clark", Email: "carol@other.org", PhoneNumber: "+3"},
	}
	for _, in := range seed {
		_, err := svc.Add(ctx, in)
		require.NoError(t, err)
	}

	corp := "corp.com"
	req := pagination.PageRequest{Page: 0, Size: 10, Sort: []pagination.SortKey{{Field: "email"}}}
	page, err := svc.List(ctx, repository.CustomerFilter{EmailLike: &corp}, req)
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "alice@corp.com", page.Items[0].Email)
	assert.Equal(t, "bob@corp.com", page.Items[1].Email)
}

func Test_CustomerService_Remove_ListedOrderAlreadyGone(t *testing.T) {
	ctx := context.Background()
	svc, orderSvc, store := newCustomerFixture(t)

	created, err := svc.Add(ctx, application.AddCustomerInput{
		FirstName: "Alice", LastName: "Anderson",
		Email: "alice@example.com", PhoneNumber: "+15550100001",
	})
	require.NoError(t, err)

	order, err := orderSvc.Add(ctx, application.AddOrderInput{CustomerID: &created.ID})
	require.NoError(t, err)

	// deleting the order first must not break customer removal
	require.NoError(t, store.Orders().Delete(ctx, &entity.Order{ID: order.ID, CreatedDate: time.Now()}))

	_, err = svc.Remove(ctx, created.ID)
	require.NoError(t, err)
}
