package handler

import (
	"net/http"

	"github.com/vfg2006/sales-api/internal/api/handler/router"
	"github.com/vfg2006/sales-api/internal/usecases/cataloging"
	"github.com/vfg2006/sales-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-api/internal/usecases/selling"
	"github.com/vfg2006/sales-api/pkg/middleware"
)

var jsonBody = []func(http.Handler) http.Handler{middleware.RequireJSON()}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Customers(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service),
		},
		{
			Path:        "/customers",
			Method:      http.MethodPost,
			Handler:     CreateCustomer(service),
			Middlewares: jsonBody,
		},
		{
			Path:    "/customers/:id",
			Method:  http.MethodGet,
			Handler: GetCustomer(service),
		},
		{
			Path:        "/customers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCustomer(service),
			Middlewares: jsonBody,
		},
		{
			Path:    "/customers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCustomer(service),
		},
	}
}

func Suppliers(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/suppliers",
			Method:  http.MethodGet,
			Handler: ListSuppliers(service),
		},
		{
			Path:        "/suppliers",
			Method:      http.MethodPost,
			Handler:     CreateSupplier(service),
			Middlewares: jsonBody,
		},
		{
			Path:    "/suppliers/:id",
			Method:  http.MethodGet,
			Handler: GetSupplier(service),
		},
		{
			Path:        "/suppliers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSupplier(service),
			Middlewares: jsonBody,
		},
		{
			Path:    "/suppliers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSupplier(service),
		},
	}
}

func Products(service cataloging.Cataloger, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:        "/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: jsonBody,
		},
		{
			Path:    "/products/:id",
			Method:  http.MethodGet,
			Handler: router.StaticSegment("id", "low-stock", LowStockProducts(reporter), GetProduct(service)),
		},
		{
			Path:        "/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(service),
			Middlewares: jsonBody,
		},
		{
			Path:    "/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
	}
}

func Sales(service selling.Seller, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:        "/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service),
			Middlewares: jsonBody,
		},
		{
			Path:    "/sales/:id",
			Method:  http.MethodGet,
			Handler: router.StaticSegment("id", "daily-report", DailySalesReport(reporter), GetSale(service)),
		},
		{
			Path:    "/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
