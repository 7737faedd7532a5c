package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/application"
	handlers "github.com/iamlimeu/employeeProjectRestAPI/internal/interface/http"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/infrastructure/memory"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/validation"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	store := memory.NewStore()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	customerSvc := application.NewCustomerService(store.Customers(), store.Orders(), logger, nil)
	employeeSvc := application.NewEmployeeService(store.Employees(), logger, nil)
	productSvc := application.NewProductService(store.Products(), logger, nil, nil, 0)
	orderSvc := application.NewOrderService(store.Orders(), store.Customers(), store.Products(), logger, nil, nil)

	ch := handlers.NewCustomerHandler(customerSvc, logger)
	eh := handlers.NewEmployeeHandler(employeeSvc, logger)
	ph := handlers.NewProductHandler(productSvc, logger)
	oh := handlers.NewOrderHandler(orderSvc, logger)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/customers", ch.Add)
	api.GET("/customers", ch.List)
	api.GET("/customers/:id", ch.GetByID)
	api.PUT("/customers/:id", ch.Update)
	api.DELETE("/customers/:id", ch.Remove)
	api.POST("/employees", eh.Add)
	api.GET("/employees", eh.List)
	api.POST("/products", ph.Add)
	api.GET("/products/:id", ph.GetByID)
	api.DELETE("/products/:id", ph.Remove)
	api.POST("/orders", oh.Add)
	api.GET("/orders", oh.List)
	api.PUT("/orders/:id", oh.Update)
	api.POST("/orders/:id/products/:productId", oh.AddProduct)
	api.DELETE("/orders/:id/products/:productId", oh.RemoveProduct)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data, _ := envelope["data"].(map[string]any)
	return data
}

func Test_CustomerEndpoints_CreateFetchUpdateDelete(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"firstName":   "Alice",
		"lastName":    "Anderson",
		"email":       "alice@example.com",
		"phoneNumber": "+15550100001",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeData(t, w)
	id := int64(created["id"].(float64))
	assert.Equal(t, "Alice", created["firstName"])
	assert.Equal(t, []any{}, created["orderIds"])

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/customers/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/customers/%d", id), gin.H{"lastName": "Brown"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeData(t, w)
	assert.Equal(t, "Brown", updated["lastName"])
	assert.Equal(t, "Alice", updated["firstName"])

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/customers/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/customers/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_CustomerEndpoints_ValidationFailure(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"firstName":   "Alice",
		"lastName":    "Anderson",
		"email":       "not-an-email",
		"phoneNumber": "+15550100001",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, false, envelope["success"])
	assert.NotNil(t, envelope["error"])
}

func Test_CustomerEndpoints_PhoneFormat(t *testing.T) {
	r := newTestRouter(t)

	// not E.164, so binding rejects it before the service runs
	w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"firstName":   "Alice",
		"lastName":    "Anderson",
		"email":       "alice@example.com",
		"phoneNumber": "555-1234",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"firstName":   "Alice",
		"lastName":    "Anderson",
		"email":       "alice@example.com",
		"phoneNumber": "+15550100001",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/customers/%d", id), gin.H{"phoneNumber": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_CustomerEndpoints_BadPathID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/customers/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_CustomerEndpoints_ListEnvelope(t *testing.T) {
	r := newTestRouter(t)

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
			"firstName":   "C",
			"lastName":    "L",
			"email":       fmt.Sprintf("c%d@example.com", i),
			"phoneNumber": fmt.Sprintf("+1555010%04d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/customers?page=0&size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Len(t, data["content"], 2)
	assert.Equal(t, float64(0), data["pageNumber"])
	assert.Equal(t, float64(2), data["pageSize"])
	assert.Equal(t, float64(3), data["totalElements"])
	assert.Equal(t, float64(2), data["totalPages"])
	assert.Equal(t, true, data["first"])
	assert.Equal(t, false, data["last"])
}

func Test_EmployeeEndpoints_RoleValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/employees", gin.H{
		"firstName": "Mark",
		"lastName":  "Miller",
		"email":     "mark@example.com",
		"password":  "password123",
		"role":      "WIZARD",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/employees", gin.H{
		"firstName": "Mark",
		"lastName":  "Miller",
		"email":     "mark@example.com",
		"password":  "password123",
		"role":      "MANAGER",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// password never leaves the service boundary
	created := decodeData(t, w)
	_, exposed := created["password"]
	assert.False(t, exposed)
}

func Test_ProductEndpoints_PriceHandling(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/products", gin.H{
		"name":        "Keyboard",
		"description": "Mechanical keyboard",
		"price":       "89.9",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeData(t, w)
	assert.Equal(t, "89.90", created["price"])

	w = doJSON(t, r, http.MethodPost, "/api/products", gin.H{
		"name":  "Mouse",
		"price": "-5.00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_OrderEndpoints_ProductAssociation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/products", gin.H{"name": "Keyboard", "price": "89.99"})
	require.Equal(t, http.StatusCreated, w.Code)
	productID := int64(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/orders", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeData(t, w)
	orderID := int64(order["id"].(float64))
	assert.Equal(t, "NEW", order["status"])

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/orders/%d/products/%d", orderID, productID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []any{float64(productID)}, decodeData(t, w)["productIds"])

	// deleting a referenced product conflicts
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/products/%d", productID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/orders/%d/products/%d", orderID, productID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/products/%d", productID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_OrderEndpoints_StatusUpdateAndFilter(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := int64(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/orders", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/orders/%d", orderID), gin.H{"status": "COMPLETED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "COMPLETED", decodeData(t, w)["status"])

	w = doJSON(t, r, http.MethodGet, "/api/orders?status=COMPLETED", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(1), data["totalElements"])

	w = doJSON(t, r, http.MethodGet, "/api/orders?status=BOGUS", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_OrderEndpoints_UnknownCustomer(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{"customerId": 41})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
