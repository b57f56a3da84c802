// Package cataloging mantém o cadastro de clientes, fornecedores e produtos
package cataloging

import (
	"context"

	"github.com/vfg2006/sales-api/infrastructure/repository"
	"github.com/vfg2006/sales-api/internal/domain"
	"github.com/vfg2006/sales-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Cataloger interface {
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error

	ListSuppliers(ctx context.Context) ([]*domain.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error)
	CreateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error
	DeleteSupplier(ctx context.Context, id int64) error

	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type Service struct {
	customerRepository repository.CustomerRepository
	supplierRepository repository.SupplierRepository
	productRepository  repository.ProductRepository
}

func NewService(
	customerRepository repository.CustomerRepository,
	supplierRepository repository.SupplierRepository,
	productRepository repository.ProductRepository,
) Cataloger {
	return &Service{
		customerRepository: customerRepository,
		supplierRepository: supplierRepository,
		productRepository:  productRepository,
	}
}

type validatable interface {
	Validate() error
}

// create valida a entidade antes de tocar no banco
func create[T any, P interface {
	*T
	validatable
}](ctx context.Context, repo repository.CRUD[T], entity P, kind string) (*T, error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	if err := repo.Add(ctx, entity); err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao criar %s", kind)
		return nil, err
	}

	return entity, nil
}

func update[T any, P interface {
	*T
	validatable
}](ctx context.Context, repo repository.CRUD[T], entity P, id int64, kind string) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be greater than zero")
	}

	if err := entity.Validate(); err != nil {
		return err
	}

	if err := repo.Update(ctx, entity); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("Erro ao atualizar %s %d", kind, id)
		return err
	}

	return nil
}

func remove[T any](ctx context.Context, repo repository.CRUD[T], id int64, kind string) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be greater than zero")
	}

	if err := repo.Delete(ctx, id); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("Erro ao remover %s %d", kind, id)
		return err
	}

	return nil
}

func get[T any](ctx context.Context, repo repository.CRUD[T], id int64) (*T, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be greater than zero")
	}

	return repo.GetByID(ctx, id)
}
