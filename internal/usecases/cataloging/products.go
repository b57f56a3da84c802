package cataloging

import (
	"context"

	"github.com/vfg2006/sales-api/internal/domain"
)

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepository.GetAll(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return get[domain.Product](ctx, s.productRepository, id)
}

// CreateProduct retorna domain.ErrSupplierNotFound se o fornecedor não existir
func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return create[domain.Product](ctx, s.productRepository, product, "produto")
}

func (s *Service) UpdateProduct(ctx context.Context, product *domain.Product) error {
	return update[domain.Product](ctx, s.productRepository, product, product.ID, "produto")
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return remove[domain.Product](ctx, s.productRepository, id, "produto")
}
