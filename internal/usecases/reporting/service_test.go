package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_DailyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	salesRepo := mocks.NewMockSalesRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(salesRepo, productRepo)

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Dia sem vendas retorna lista vazia", func(t *testing.T) {
		salesRepo.EXPECT().DailyReport(ctx, date).Return([]*domain.DailySalesReportRow{}, nil)

		report, err := service.DailyReport(ctx, date)
		require.NoError(t, err)
		assert.NotNil(t, report)
		assert.Empty(t, report)
	})

	t.Run("Totais por cliente", func(t *testing.T) {
		salesRepo.EXPECT().DailyReport(ctx, date).Return([]*domain.DailySalesReportRow{
			{CustomerID: 1, CustomerName: "Ana", TotalProductQty: 5, TotalSalesAmount: decimal.NewFromInt(35)},
		}, nil)

		report, err := service.DailyReport(ctx, date)
		require.NoError(t, err)
		require.Len(t, report, 1)
		assert.Equal(t, 5, report[0].TotalProductQty)
		assert.True(t, decimal.NewFromInt(35).Equal(report[0].TotalSalesAmount))
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		salesRepo.EXPECT().DailyReport(ctx, date).Return(nil, domain.ErrTransient)

		_, err := service.DailyReport(ctx, date)
		assert.ErrorIs(t, err, domain.ErrTransient)
	})
}

func TestService_LowStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	salesRepo := mocks.NewMockSalesRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(salesRepo, productRepo)

	productRepo.EXPECT().LowStock(ctx, 10).Return([]*domain.LowStockProduct{
		{ProductID: 2, ProductName: "Caneta", ProductStock: 3, SupplierName: "Papelaria Central"},
	}, nil)

	products, err := service.LowStock(ctx, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Papelaria Central", products[0].SupplierName)
}
