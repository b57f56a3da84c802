package cataloging

import (
	"context"

	"github.com/vfg2006/sales-api/internal/domain"
)

func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.customerRepository.GetAll(ctx)
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return get[domain.Customer](ctx, s.customerRepository, id)
}

func (s *Service) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	return create[domain.Customer](ctx, s.customerRepository, customer, "cliente")
}

func (s *Service) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	return update[domain.Customer](ctx, s.customerRepository, customer, customer.ID, "cliente")
}

// DeleteCustomer falha com domain.ErrInUse se o cliente tiver vendas
func (s *Service) DeleteCustomer(ctx context.Context, id int64) error {
	return remove[domain.Customer](ctx, s.customerRepository, id, "cliente")
}
