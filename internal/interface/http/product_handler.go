package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/application"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/response"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

// Price travels as a string so the fixed decimal precision survives
// JSON; the service parses and validates it.
type productRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
}

type productUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
}

type productResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	OrderIDs    []int64 `json:"orderIds"`
}

func toProductResponse(p entity.Product) productResponse {
	orderIDs := p.OrderIDs
	if orderIDs == nil {
		orderIDs = []int64{}
	}
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		OrderIDs:    orderIDs,
	}
}

func (h *ProductHandler) Add(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	created, err := h.Svc.Add(c.Request.Context(), application.AddProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toProductResponse(*created), "product created", nil)
}

func (h *ProductHandler) List(c *gin.Context) {
	req, ok := pageRequest(c, pagination.SortKey{Field: "id"})
	if !ok {
		return
	}
	filter := repository.ProductFilter{
		Name:        queryPtr(c, "name"),
		Description: queryPtr(c, "description"),
	}
	if raw := queryPtr(c, "price"); raw != nil {
		price, err := decimal.NewFromString(*raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid price filter", nil)
			return
		}
		filter.Price = &price
	}
	page, err := h.Svc.List(c.Request.Context(), filter, req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	envelope := pagination.FromPage(pagination.MapPage(page, toProductResponse))
	response.Success(c, http.StatusOK, envelope, "products", nil)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toProductResponse(*product), "product", nil)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req productUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	updated, err := h.Svc.Update(c.Request.Context(), id, application.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toProductResponse(*updated), "product updated", nil)
}

func (h *ProductHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deletedID, err := h.Svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": deletedID}, "product deleted", nil)
}
