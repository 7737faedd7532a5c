package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/container"
	handlers "github.com/iamlimeu/employeeProjectRestAPI/internal/interface/http"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/interface/middleware"
)

type EmployeeModule struct {
	Handler *handlers.EmployeeHandler
}

func NewEmployeeModule(h *handlers.EmployeeHandler) *EmployeeModule {
	return &EmployeeModule{Handler: h}
}

func (m *EmployeeModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	employees := rg.Group("/employees")
	{
		employees.POST("", writeLimiter, m.Handler.Add)
		employees.GET("", m.Handler.List)
		employees.GET("/:id", m.Handler.GetByID)
		employees.PUT("/:id", writeLimiter, m.Handler.Update)
		employees.DELETE("/:id", writeLimiter, m.Handler.Remove)
	}
}
