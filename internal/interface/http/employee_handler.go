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

type EmployeeHandler struct {
	Svc    *application.EmployeeService
	Logger *logrus.Logger
}

func NewEmployeeHandler(svc *application.EmployeeService, logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{Svc: svc, Logger: logger}
}

type employeeRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,role"`
}

type employeeUpdateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	Role      *string `json:"role" binding:"omitempty,role"`
}

// employeeResponse never carries the credential back out.
type employeeResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func toEmployeeResponse(e entity.Employee) employeeResponse {
	return employeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Role:      string(e.Role),
	}
}

func (h *EmployeeHandler) Add(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	role, err := entity.ParseEmployeeRole(req.Role)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	created, err := h.Svc.Add(c.Request.Context(), application.AddEmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      role,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toEmployeeResponse(*created), "employee created", nil)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	req, ok := pageRequest(c, pagination.SortKey{Field: "last_name"})
	if !ok {
		return
	}
	filter := repository.EmployeeFilter{
		FirstName: queryPtr(c, "firstName"),
		LastName:  queryPtr(c, "lastName"),
		EmailLike: queryPtr(c, "email"),
	}
	if raw := queryPtr(c, "role"); raw != nil {
		role, err := entity.ParseEmployeeRole(*raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		filter.Role = &role
	}
	page, err := h.Svc.List(c.Request.Context(), filter, req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	envelope := pagination.FromPage(pagination.MapPage(page, toEmployeeResponse))
	response.Success(c, http.StatusOK, envelope, "employees", nil)
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	employee, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toEmployeeResponse(*employee), "employee", nil)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req employeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.UpdateEmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	if req.Role != nil {
		role, err := entity.ParseEmployeeRole(*req.Role)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		in.Role = &role
	}
	updated, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toEmployeeResponse(*updated), "employee updated", nil)
}

func (h *EmployeeHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deletedID, err := h.Svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": deletedID}, "employee deleted", nil)
}
