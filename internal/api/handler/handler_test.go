package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-api/internal/api/handler/router"
	"github.com/vfg2006/sales-api/internal/domain"
	catalogingmocks "github.com/vfg2006/sales-api/internal/usecases/cataloging/mocks"
	reportingmocks "github.com/vfg2006/sales-api/internal/usecases/reporting/mocks"
	sellingmocks "github.com/vfg2006/sales-api/internal/usecases/selling/mocks"
	"github.com/vfg2006/sales-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	cataloger *catalogingmocks.MockCataloger
	seller    *sellingmocks.MockSeller
	reporter  *reportingmocks.MockReporter
}

func newTestRouter(t *testing.T) (router.Router, testServices) {
	ctrl := gomock.NewController(t)

	services := testServices{
		cataloger: catalogingmocks.NewMockCataloger(ctrl),
		seller:    sellingmocks.NewMockSeller(ctrl),
		reporter:  reportingmocks.NewMockReporter(ctrl),
	}

	rt := router.New(
		router.WithRoutes(Customers(services.cataloger)...),
		router.WithRoutes(Suppliers(services.cataloger)...),
		router.WithRoutes(Products(services.cataloger, services.reporter)...),
		router.WithRoutes(Sales(services.seller, services.reporter)...),
	)

	return rt, services
}

func do(rt http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestCreateSale(t *testing.T) {
	soldAt := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		setup          func(s testServices)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Venda criada",
			body: `{"customerId": 1, "productId": 2, "productQty": 4}`,
			setup: func(s testServices) {
				s.seller.EXPECT().
					RecordSale(gomock.Any(), domain.CreateSaleRequest{CustomerID: 1, ProductID: 2, Quantity: 4}).
					Return(&domain.Sale{ID: 10, CustomerID: 1, ProductID: 2, Quantity: 4, Date: soldAt}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Corpo inválido",
			body:           `{"customerId": "um"}`,
			setup:          func(s testServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:           "Bytes após o objeto JSON",
			body:           `{"customerId": 1, "productId": 2, "productQty": 4}garbage`,
			setup:          func(s testServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:           "Dois objetos JSON",
			body:           `{"customerId": 1, "productId": 2, "productQty": 4} {"customerId": 1}`,
			setup:          func(s testServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "Espaços após o objeto JSON",
			body: "{\"customerId\": 1, \"productId\": 2, \"productQty\": 4}\n ",
			setup: func(s testServices) {
				s.seller.EXPECT().
					RecordSale(gomock.Any(), domain.CreateSaleRequest{CustomerID: 1, ProductID: 2, Quantity: 4}).
					Return(&domain.Sale{ID: 10, CustomerID: 1, ProductID: 2, Quantity: 4, Date: soldAt}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Quantidade ausente",
			body: `{"customerId": 1, "productId": 2}`,
			setup: func(s testServices) {
				s.seller.EXPECT().
					RecordSale(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewValidationError("productQty", "must be greater than zero"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "Produto inexistente",
			body: `{"customerId": 1, "productId": 99, "productQty": 1}`,
			setup: func(s testServices) {
				s.seller.EXPECT().RecordSale(gomock.Any(), gomock.Any()).Return(nil, domain.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrResourceNotFound,
		},
		{
			name: "Estoque insuficiente",
			body: `{"customerId": 1, "productId": 2, "productQty": 5}`,
			setup: func(s testServices) {
				s.seller.EXPECT().RecordSale(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInsufficientStock)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   apiErrors.ErrInsufficientStock,
		},
		{
			name: "Timeout do banco",
			body: `{"customerId": 1, "productId": 2, "productQty": 1}`,
			setup: func(s testServices) {
				s.seller.EXPECT().
					RecordSale(gomock.Any(), gomock.Any()).
					Return(nil, errors.Join(domain.ErrTransient, context.DeadlineExceeded))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   apiErrors.ErrServiceUnavailable,
		},
		{
			name: "Erro inesperado",
			body: `{"customerId": 1, "productId": 2, "productQty": 1}`,
			setup: func(s testServices) {
				s.seller.EXPECT().RecordSale(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, services := newTestRouter(t)
			tt.setup(services)

			rec := do(rt, http.MethodPost, "/sales", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
				return
			}

			var sale domain.Sale
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sale))
			assert.Equal(t, int64(10), sale.ID)
			assert.Equal(t, soldAt, sale.Date.UTC())
			assert.Contains(t, rec.Body.String(), `"salesId":10`)
		})
	}
}

func TestCreateSale_EmptyBody(t *testing.T) {
	rt, _ := newTestRouter(t)

	rec := do(rt, http.MethodPost, "/sales", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
}

func TestDailySalesReport(t *testing.T) {
	t.Run("Relatório do dia", func(t *testing.T) {
		rt, services := newTestRouter(t)

		services.reporter.EXPECT().
			DailyReport(gomock.Any(), time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)).
			Return([]*domain.DailySalesReportRow{
				{CustomerID: 1, CustomerName: "Ana", TotalProductQty: 5, TotalSalesAmount: decimal.NewFromInt(35)},
			}, nil)

		rec := do(rt, http.MethodGet, "/sales/daily-report?date=2024-03-10", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`[{"customerId":1,"customerName":"Ana","totalProductQty":5,"totalSalesAmount":35}]`,
			rec.Body.String())
	})

	t.Run("Dia sem vendas", func(t *testing.T) {
		rt, services := newTestRouter(t)

		services.reporter.EXPECT().
			DailyReport(gomock.Any(), gomock.Any()).
			Return([]*domain.DailySalesReportRow{}, nil)

		rec := do(rt, http.MethodGet, "/sales/daily-report?date=2024-03-11", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	for _, target := range []string{"/sales/daily-report", "/sales/daily-report?date=10-03-2024"} {
		t.Run("Data inválida "+target, func(t *testing.T) {
			rt, _ := newTestRouter(t)

			rec := do(rt, http.MethodGet, target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetSale_DispatchesByID(t *testing.T) {
	rt, services := newTestRouter(t)

	services.seller.EXPECT().GetSale(gomock.Any(), int64(3)).Return(nil, domain.ErrSaleNotFound)

	rec := do(rt, http.MethodGet, "/sales/3", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLowStockProducts(t *testing.T) {
	t.Run("Produtos abaixo do limite", func(t *testing.T) {
		rt, services := newTestRouter(t)

		services.reporter.EXPECT().
			LowStock(gomock.Any(), 10).
			Return([]*domain.LowStockProduct{
				{ProductID: 2, ProductName: "Caneta", ProductStock: 3, SupplierName: "Papelaria Central"},
			}, nil)

		rec := do(rt, http.MethodGet, "/products/low-stock?threshold=10", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`[{"productId":2,"productName":"Caneta","productStock":3,"supplierName":"Papelaria Central"}]`,
			rec.Body.String())
	})

	t.Run("Limite acima da faixa do estoque", func(t *testing.T) {
		rt, services := newTestRouter(t)

		services.reporter.EXPECT().
			LowStock(gomock.Any(), int(math.MaxInt32)).
			Return([]*domain.LowStockProduct{}, nil)

		rec := do(rt, http.MethodGet, "/products/low-stock?threshold=99999999999", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Limite abaixo da faixa do estoque", func(t *testing.T) {
		rt, services := newTestRouter(t)

		services.reporter.EXPECT().
			LowStock(gomock.Any(), int(math.MinInt32)).
			Return([]*domain.LowStockProduct{}, nil)

		rec := do(rt, http.MethodGet, "/products/low-stock?threshold=-99999999999", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		target       string
		expectedCode string
	}{
		{"/products/low-stock", apiErrors.ErrMissingRequiredData},
		{"/products/low-stock?threshold=dez", apiErrors.ErrInvalidFormat},
		{"/products/low-stock?threshold=2.5", apiErrors.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rt, _ := newTestRouter(t)

			rec := do(rt, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestProducts(t *testing.T) {
	t.Run("Busca por id", func(t *testing.T) {
		rt, services := newTestRouter(t)

		services.cataloger.EXPECT().
			GetProduct(gomock.Any(), int64(5)).
			Return(&domain.Product{ID: 5, Name: "Caderno", Price: decimal.RequireFromString("12.50"), Stock: 8, SupplierID: 1}, nil)

		rec := do(rt, http.MethodGet, "/products/5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"productId":5,"productName":"Caderno","productPrice":12.5,"productStock":8,"supplierId":1}`,
			rec.Body.String())
	})

	t.Run("Criação com fornecedor inexistente", func(t *testing.T) {
		rt, services := newTestRouter(t)

		services.cataloger.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(nil, domain.ErrSupplierNotFound)

		rec := do(rt, http.MethodPost, "/products",
			`{"productName":"Caderno","productPrice":12.5,"productStock":8,"supplierId":42}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Atualização usa o id da URL", func(t *testing.T) {
		rt, services := newTestRouter(t)

		services.cataloger.EXPECT().
			UpdateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Product) error {
				assert.Equal(t, int64(5), p.ID)
				assert.True(t, decimal.RequireFromString("9.99").Equal(p.Price))
				return nil
			})

		rec := do(rt, http.MethodPut, "/products/5",
			`{"productId":99,"productName":"Caderno","productPrice":"9.99","productStock":8,"supplierId":1}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Content-Type não JSON", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader("productName=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCustomers(t *testing.T) {
	t.Run("Criação", func(t *testing.T) {
		rt, services := newTestRouter(t)

		services.cataloger.EXPECT().
			CreateCustomer(gomock.Any(), &domain.Customer{Name: "Ana"}).
			Return(&domain.Customer{ID: 1, Name: "Ana"}, nil)

		rec := do(rt, http.MethodPost, "/customers", `{"customerName":"Ana"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"customerId":1,"customerName":"Ana"}`, rec.Body.String())
	})

	t.Run("Exclusão de cliente com vendas", func(t *testing.T) {
		rt, services := newTestRouter(t)

		services.cataloger.EXPECT().DeleteCustomer(gomock.Any(), int64(1)).Return(domain.ErrInUse)

		rec := do(rt, http.MethodDelete, "/customers/1", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceInUse, decodeAPIError(t, rec).Code)
	})

	t.Run("Id inválido", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, http.MethodGet, "/customers/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("Lista vazia", func(t *testing.T) {
		rt, services := newTestRouter(t)

		services.cataloger.EXPECT().ListCustomers(gomock.Any()).Return([]*domain.Customer{}, nil)

		rec := do(rt, http.MethodGet, "/customers", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestSuppliers_Update(t *testing.T) {
	rt, services := newTestRouter(t)

	services.cataloger.EXPECT().
		UpdateSupplier(gomock.Any(), &domain.Supplier{ID: 4, Name: "Atacado"}).
		Return(domain.ErrSupplierNotFound)

	rec := do(rt, http.MethodPut, "/suppliers/4", `{"supplierName":"Atacado"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type fakeCronJob struct {
	started bool
	status  map[string]any
}

func (f *fakeCronJob) TriggerManualRun() bool    { return f.started }
func (f *fakeCronJob) GetStatus() map[string]any { return f.status }

func TestCronJobs(t *testing.T) {
	job := &fakeCronJob{started: true, status: map[string]any{"enabled": true}}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{CronJobTypeLowStock: job})...))

	rec := do(rt, http.MethodPost, "/cron/low-stock/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = do(rt, http.MethodPost, "/cron/unknown/run", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	job.started = false
	rec = do(rt, http.MethodPost, "/cron/low-stock/run", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(rt, http.MethodGet, "/cron/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"low-stock":{"enabled":true}}`, rec.Body.String())
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheck(t *testing.T) {
	healthy := router.New(router.WithRoutes(Healthcheck(pingerFunc(func(context.Context) error { return nil }))...))
	rec := do(healthy, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	down := router.New(router.WithRoutes(Healthcheck(pingerFunc(func(context.Context) error { return domain.ErrTransient }))...))
	rec = do(down, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
