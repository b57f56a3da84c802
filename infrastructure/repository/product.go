package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-api/internal/domain"
)

//go:generate mockgen -source=product.go -destination=mocks/product_mock.go -package=mocks

type ProductRepository interface {
	CRUD[domain.Product]
	LowStock(ctx context.Context, threshold int) ([]*domain.LowStockProduct, error)
}

var productTable = table[domain.Product]{
	name:     "product",
	idColumn: "product_id",
	columns:  []string{"product_name", "product_price", "product_stock", "supplier_id"},
	notFound: domain.ErrProductNotFound,
	scan: func(s postgres.Scanner) (*domain.Product, error) {
		product := &domain.Product{}
		if err := s.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Stock,
			&product.SupplierID,
		); err != nil {
			return nil, err
		}
		return product, nil
	},
	values: func(p *domain.Product) []interface{} {
		return []interface{}{p.Name, p.Price, p.Stock, p.SupplierID}
	},
	id:    func(p *domain.Product) int64 { return p.ID },
	setID: func(p *domain.Product, id int64) { p.ID = id },
	// A única chave estrangeira de product é supplier_id
	referenceError: func(err error) error {
		return errors.Wrap(domain.ErrSupplierNotFound, postgres.ConstraintName(err))
	},
}

type productRepository struct {
	*crudRepository[domain.Product]
}

func NewProductRepository(conn postgres.Conn) ProductRepository {
	return &productRepository{
		crudRepository: newCRUDRepository(conn, productTable),
	}
}

// LowStock lista produtos com estoque estritamente abaixo de threshold
func (r *productRepository) LowStock(ctx context.Context, threshold int) ([]*domain.LowStockProduct, error) {
	query, args, err := squirrel.
		Select("p.product_id", "p.product_name", "p.product_stock", "s.supplier_name").
		From("product p").
		Join("supplier s ON p.supplier_id = s.supplier_id").
		Where(squirrel.Lt{"p.product_stock": threshold}).
		OrderBy("p.product_stock ASC", "p.product_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, postgres.ClassifyError(errors.Wrap(err, "erro ao buscar produtos com estoque baixo"))
	}
	defer rows.Close()

	products, err := scanAll(rows, scanLowStockProduct)
	if err != nil {
		return nil, postgres.ClassifyError(errors.Wrap(err, "erro ao escanear produtos com estoque baixo"))
	}

	return products, nil
}

func scanLowStockProduct(s postgres.Scanner) (*domain.LowStockProduct, error) {
	product := &domain.LowStockProduct{}
	if err := s.Scan(
		&product.ProductID,
		&product.ProductName,
		&product.ProductStock,
		&product.SupplierName,
	); err != nil {
		return nil, err
	}
	return product, nil
}
