package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/container"
	handlers "github.com/iamlimeu/employeeProjectRestAPI/internal/interface/http"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/interface/middleware"
)

type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	products := rg.Group("/products")
	{
		products.POST("", writeLimiter, m.Handler.Add)
		products.GET("", m.Handler.List)
		products.GET("/:id", m.Handler.GetByID)
		products.PUT("/:id", writeLimiter, m.Handler.Update)
		products.DELETE("/:id", writeLimiter, m.Handler.Remove)
	}
}
