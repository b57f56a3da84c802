// Package reporting contém as consultas derivadas: relatório diário e estoque baixo
package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/sales-api/infrastructure/repository"
	"github.com/vfg2006/sales-api/internal/domain"
	"github.com/vfg2006/sales-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Reporter interface {
	DailyReport(ctx context.Context, date time.Time) ([]*domain.DailySalesReportRow, error)
	LowStock(ctx context.Context, threshold int) ([]*domain.LowStockProduct, error)
}

type Service struct {
	salesRepository   repository.SalesRepository
	productRepository repository.ProductRepository
}

func NewService(
	salesRepository repository.SalesRepository,
	productRepository repository.ProductRepository,
) Reporter {
	return &Service{
		salesRepository:   salesRepository,
		productRepository: productRepository,
	}
}

// DailyReport agrega as vendas do dia UTC de date por cliente
func (s *Service) DailyReport(ctx context.Context, date time.Time) ([]*domain.DailySalesReportRow, error) {
	report, err := s.salesRepository.DailyReport(ctx, date)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar relatório diário de vendas")
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"date": date.Format(time.DateOnly),
		"rows": len(report),
	}).Debug("Relatório diário gerado")

	return report, nil
}

// LowStock lista produtos com estoque estritamente abaixo de threshold
func (s *Service) LowStock(ctx context.Context, threshold int) ([]*domain.LowStockProduct, error) {
	products, err := s.productRepository.LowStock(ctx, threshold)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar produtos com estoque baixo")
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"threshold": threshold,
		"rows":      len(products),
	}).Debug("Produtos com estoque baixo encontrados")

	return products, nil
}
