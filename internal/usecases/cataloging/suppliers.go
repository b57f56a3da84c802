package cataloging

import (
	"context"

	"github.com/vfg2006/sales-api/internal/domain"
)

func (s *Service) ListSuppliers(ctx context.Context) ([]*domain.Supplier, error) {
	return s.supplierRepository.GetAll(ctx)
}

func (s *Service) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	return get[domain.Supplier](ctx, s.supplierRepository, id)
}

func (s *Service) CreateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	return create[domain.Supplier](ctx, s.supplierRepository, supplier, "fornecedor")
}

func (s *Service) UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	return update[domain.Supplier](ctx, s.supplierRepository, supplier, supplier.ID, "fornecedor")
}

func (s *Service) DeleteSupplier(ctx context.Context, id int64) error {
	return remove[domain.Supplier](ctx, s.supplierRepository, id, "fornecedor")
}
