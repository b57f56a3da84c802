package repository

import (
	"github.com/vfg2006/sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-api/internal/domain"
)

//go:generate mockgen -source=supplier.go -destination=mocks/supplier_mock.go -package=mocks

type SupplierRepository interface {
	CRUD[domain.Supplier]
}

var supplierTable = table[domain.Supplier]{
	name:     "supplier",
	idColumn: "supplier_id",
	columns:  []string{"supplier_name"},
	notFound: domain.ErrSupplierNotFound,
	scan: func(s postgres.Scanner) (*domain.Supplier, error) {
		supplier := &domain.Supplier{}
		if err := s.Scan(&supplier.ID, &supplier.Name); err != nil {
			return nil, err
		}
		return supplier, nil
	},
	values: func(s *domain.Supplier) []interface{} {
		return []interface{}{s.Name}
	},
	id:    func(s *domain.Supplier) int64 { return s.ID },
	setID: func(s *domain.Supplier, id int64) { s.ID = id },
}

func NewSupplierRepository(conn postgres.Conn) SupplierRepository {
	return newCRUDRepository(conn, supplierTable)
}
