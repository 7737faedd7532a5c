package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/container"
	handlers "github.com/iamlimeu/employeeProjectRestAPI/internal/interface/http"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/interface/middleware"
)

// CustomerModule wires customer HTTP handlers into routes under /api/customers.

type CustomerModule struct {
	Handler *handlers.CustomerHandler
}

func NewCustomerModule(h *handlers.CustomerHandler) *CustomerModule {
	return &CustomerModule{Handler: h}
}

func (m *CustomerModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	customers := rg.Group("/customers")
	{
		customers.POST("", writeLimiter, m.Handler.Add)
		customers.GET("", m.Handler.List)
		customers.GET("/:id", m.Handler.GetByID)
		customers.PUT("/:id", writeLimiter, m.Handler.Update)
		customers.DELETE("/:id", writeLimiter, m.Handler.Remove)
	}
}
