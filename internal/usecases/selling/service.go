// Package selling registra vendas com baixa de estoque
package selling

import (
	"context"

	"github.com/vfg2006/sales-api/infrastructure/repository"
	"github.com/vfg2006/sales-api/internal/domain"
	"github.com/vfg2006/sales-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Seller interface {
	RecordSale(ctx context.Context, request domain.CreateSaleRequest) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]*domain.Sale, error)
	GetSale(ctx context.Context, id int64) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id int64) error
}

type Service struct {
	salesRepository repository.SalesRepository
}

func NewService(salesRepository repository.SalesRepository) Seller {
	return &Service{
		salesRepository: salesRepository,
	}
}

// RecordSale valida o pedido e grava a venda. Estoque insuficiente resulta em
// domain.ErrInsufficientStock sem nenhuma escrita.
func (s *Service) RecordSale(ctx context.Context, request domain.CreateSaleRequest) (*domain.Sale, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"customer_id": request.CustomerID,
		"product_id":  request.ProductID,
		"product_qty": request.Quantity,
	})

	sale, err := s.salesRepository.RecordSale(ctx, request)
	if err != nil {
		switch domain.KindOf(err) {
		case domain.KindNotFound, domain.KindConflict:
			logger.WithError(err).Warn("Venda recusada")
		default:
			logger.WithError(err).Error("Erro ao registrar venda")
		}
		return nil, err
	}

	logger.WithField("sales_id", sale.ID).Info("Venda registrada")

	return sale, nil
}

func (s *Service) ListSales(ctx context.Context) ([]*domain.Sale, error) {
	return s.salesRepository.GetAll(ctx)
}

func (s *Service) GetSale(ctx context.Context, id int64) (*domain.Sale, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be greater than zero")
	}

	return s.salesRepository.GetByID(ctx, id)
}

// DeleteSale remove o registro da venda sem devolver o estoque
func (s *Service) DeleteSale(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be greater than zero")
	}

	if err := s.salesRepository.Delete(ctx, id); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("Erro ao remover venda %d", id)
		return err
	}

	return nil
}
