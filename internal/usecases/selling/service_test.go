package selling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_RecordSale(t *testing.T) {
	ctx := context.Background()
	soldAt := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		request     domain.CreateSaleRequest
		setup       func(repo *mocks.MockSalesRepository)
		expectedErr error
		validate    func(t *testing.T, sale *domain.Sale)
	}{
		{
			name:    "Venda registrada",
			request: domain.CreateSaleRequest{CustomerID: 1, ProductID: 2, Quantity: 4},
			setup: func(repo *mocks.MockSalesRepository) {
				repo.EXPECT().
					RecordSale(ctx, domain.CreateSaleRequest{CustomerID: 1, ProductID: 2, Quantity: 4}).
					Return(&domain.Sale{ID: 7, CustomerID: 1, ProductID: 2, Quantity: 4, Date: soldAt}, nil)
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, int64(7), sale.ID)
				assert.Equal(t, 4, sale.Quantity)
				assert.Equal(t, soldAt, sale.Date)
			},
		},
		{
			name:        "Quantidade zero não chega ao repositório",
			request:     domain.CreateSaleRequest{CustomerID: 1, ProductID: 2, Quantity: 0},
			setup:       func(repo *mocks.MockSalesRepository) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Produto ausente",
			request:     domain.CreateSaleRequest{CustomerID: 1, Quantity: 1},
			setup:       func(repo *mocks.MockSalesRepository) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:    "Estoque insuficiente",
			request: domain.CreateSaleRequest{CustomerID: 1, ProductID: 2, Quantity: 5},
			setup: func(repo *mocks.MockSalesRepository) {
				repo.EXPECT().
					RecordSale(ctx, gomock.Any()).
					Return(nil, domain.ErrInsufficientStock)
			},
			expectedErr: domain.ErrInsufficientStock,
		},
		{
			name:    "Cliente inexistente",
			request: domain.CreateSaleRequest{CustomerID: 99, ProductID: 2, Quantity: 1},
			setup: func(repo *mocks.MockSalesRepository) {
				repo.EXPECT().
					RecordSale(ctx, gomock.Any()).
					Return(nil, domain.ErrCustomerNotFound)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name:    "Falha temporária do banco",
			request: domain.CreateSaleRequest{CustomerID: 1, ProductID: 2, Quantity: 1},
			setup: func(repo *mocks.MockSalesRepository) {
				repo.EXPECT().
					RecordSale(ctx, gomock.Any()).
					Return(nil, errors.Join(domain.ErrTransient, context.DeadlineExceeded))
			},
			expectedErr: domain.ErrTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockSalesRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo)
			sale, err := service.RecordSale(ctx, tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, sale)
				return
			}

			require.NoError(t, err)
			tt.validate(t, sale)
		})
	}
}

func TestService_GetSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(repo)

	t.Run("Id inválido", func(t *testing.T) {
		_, err := service.GetSale(ctx, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Venda inexistente", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, int64(3)).Return(nil, domain.ErrSaleNotFound)

		_, err := service.GetSale(ctx, 3)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_DeleteSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().Delete(ctx, int64(5)).Return(nil)
	assert.NoError(t, service.DeleteSale(ctx, 5))

	assert.ErrorIs(t, service.DeleteSale(ctx, -1), domain.ErrValidation)
}
