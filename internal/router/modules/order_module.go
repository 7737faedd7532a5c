package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/container"
	handlers "github.com/iamlimeu/employeeProjectRestAPI/internal/interface/http"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/interface/middleware"
)

// OrderModule registers order CRUD plus the order<->product association
// endpoints under /api/orders.

type OrderModule struct {
	Handler *handlers.OrderHandler
}

func NewOrderModule(h *handlers.OrderHandler) *OrderModule {
	return &OrderModule{Handler: h}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	orders := rg.Group("/orders")
	{
		orders.POST("", writeLimiter, m.Handler.Add)
		orders.GET("", m.Handler.List)
		orders.GET("/:id", m.Handler.GetByID)
		orders.PUT("/:id", writeLimiter, m.Handler.Update)
		orders.DELETE("/:id", writeLimiter, m.Handler.Remove)

		orders.POST("/:id/products/:productId", writeLimiter, m.Handler.AddProduct)
		orders.DELETE("/:id/products/:productId", writeLimiter, m.Handler.RemoveProduct)
	}
}
