package router

import (
	"github.com/iamlimeu/employeeProjectRestAPI/internal/application"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/container"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/infrastructure/postgres"
	handlers "github.com/iamlimeu/employeeProjectRestAPI/internal/interface/http"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/router/modules"
)

// InitModules builds every repository, service, and handler from the
// container singletons and registers the feature modules with the
// registry. Call once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	pub := container.GetEvents()
	cfg := container.GetConfig()

	customerRepo := postgres.NewCustomerRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)

	customerSvc := application.NewCustomerService(customerRepo, orderRepo, logger, pub)
	employeeSvc := application.NewEmployeeService(employeeRepo, logger, pub)
	productSvc := application.NewProductService(productRepo, logger, pub, container.GetRedis(), cfg.ProductCacheTTL)
	orderSvc := application.NewOrderService(orderRepo, customerRepo, productRepo, logger, pub, productSvc)

	r.Add(modules.NewCustomerModule(handlers.NewCustomerHandler(customerSvc, logger)))
	r.Add(modules.NewEmployeeModule(handlers.NewEmployeeHandler(employeeSvc, logger)))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(productSvc, logger)))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(orderSvc, logger)))
}
