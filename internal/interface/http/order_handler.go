package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/application"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/response"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/validation"
)

type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type orderRequest struct {
	Status     string `json:"status" binding:"omitempty,orderstatus"`
	CustomerID *int64 `json:"customerId"`
}

type orderUpdateRequest struct {
	Status *string `json:"status" binding:"omitempty,orderstatus"`
}

type orderResponse struct {
	ID          int64     `json:"id"`
	CreatedDate time.Time `json:"createdDate"`
	Status      string    `json:"status"`
	CustomerID  *int64    `json:"customerId"`
	ProductIDs  []int64   `json:"productIds"`
}

func toOrderResponse(o entity.Order) orderResponse {
	productIDs := o.ProductIDs
	if productIDs == nil {
		productIDs = []int64{}
	}
	return orderResponse{
		ID:          o.ID,
		CreatedDate: o.CreatedDate,
		Status:      string(o.Status),
		CustomerID:  o.CustomerID,
		ProductIDs:  productIDs,
	}
}

func (h *OrderHandler) Add(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	created, err := h.Svc.Add(c.Request.Context(), application.AddOrderInput{
		Status:     entity.OrderStatus(req.Status),
		CustomerID: req.CustomerID,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toOrderResponse(*created), "order created", nil)
}

func (h *OrderHandler) List(c *gin.Context) {
	req, ok := pageRequest(c, pagination.SortKey{Field: "created_date"})
	if !ok {
		return
	}
	filter := repository.OrderFilter{}
	if raw := queryPtr(c, "createdDate"); raw != nil {
		from, err := parseDateTime(*raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid createdDate filter", nil)
			return
		}
		filter.CreatedFrom = &from
	}
	if raw := queryPtr(c, "status"); raw != nil {
		status, err := entity.ParseOrderStatus(*raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		filter.Status = &status
	}
	if raw := queryPtr(c, "productId"); raw != nil {
		id, err := parseInt64(*raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid productId filter", nil)
			return
		}
		filter.ProductID = &id
	}
	page, err := h.Svc.List(c.Request.Context(), filter, req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	envelope := pagination.FromPage(pagination.MapPage(page, toOrderResponse))
	response.Success(c, http.StatusOK, envelope, "orders", nil)
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toOrderResponse(*order), "order", nil)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req orderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.UpdateOrderInput{}
	if req.Status != nil {
		status, err := entity.ParseOrderStatus(*req.Status)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		in.Status = &status
	}
	updated, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toOrderResponse(*updated), "order updated", nil)
}

func (h *OrderHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deletedID, err := h.Svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": deletedID}, "order deleted", nil)
}

func (h *OrderHandler) AddProduct(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	order, err := h.Svc.AddProduct(c.Request.Context(), orderID, productID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toOrderResponse(*order), "product added to order", nil)
}

func (h *OrderHandler) RemoveProduct(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	order, err := h.Svc.RemoveProduct(c.Request.Context(), orderID, productID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toOrderResponse(*order), "product removed from order", nil)
}
