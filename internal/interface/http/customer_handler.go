package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/application"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/response"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/validation"
)

type CustomerHandler struct {
	Svc    *application.CustomerService
	Logger *logrus.Logger
}

func NewCustomerHandler(svc *application.CustomerService, logger *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{Svc: svc, Logger: logger}
}

type customerRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,phone"`
}

type customerUpdateRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,phone"`
}

type customerResponse struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	OrderIDs    []int64 `json:"orderIds"`
}

func toCustomerResponse(c entity.Customer) customerResponse {
	orderIDs := c.OrderIDs
	if orderIDs == nil {
		orderIDs = []int64{}
	}
	return customerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		OrderIDs:    orderIDs,
	}
}

func (h *CustomerHandler) Add(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	created, err := h.Svc.Add(c.Request.Context(), application.AddCustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toCustomerResponse(*created), "customer created", nil)
}

func (h *CustomerHandler) List(c *gin.Context) {
	req, ok := pageRequest(c, pagination.SortKey{Field: "id"})
	if !ok {
		return
	}
	filter := repository.CustomerFilter{
		FirstName:   queryPtr(c, "firstName"),
		LastName:    queryPtr(c, "lastName"),
		EmailLike:   queryPtr(c, "email"),
		PhoneNumber: queryPtr(c, "phoneNumber"),
	}
	page, err := h.Svc.List(c.Request.Context(), filter, req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	envelope := pagination.FromPage(pagination.MapPage(page, toCustomerResponse))
	response.Success(c, http.StatusOK, envelope, "customers", nil)
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	customer, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toCustomerResponse(*customer), "customer", nil)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req customerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	updated, err := h.Svc.Update(c.Request.Context(), id, application.UpdateCustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toCustomerResponse(*updated), "customer updated", nil)
}

func (h *CustomerHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deletedID, err := h.Svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": deletedID}, "customer deleted", nil)
}
