package repository

import (
	"github.com/vfg2006/sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-api/internal/domain"
)

//go:generate mockgen -source=customer.go -destination=mocks/customer_mock.go -package=mocks

type CustomerRepository interface {
	CRUD[domain.Customer]
}

var customerTable = table[domain.Customer]{
	name:     "customer",
	idColumn: "customer_id",
	columns:  []string{"customer_name"},
	notFound: domain.ErrCustomerNotFound,
	scan: func(s postgres.Scanner) (*domain.Customer, error) {
		customer := &domain.Customer{}
		if err := s.Scan(&customer.ID, &customer.Name); err != nil {
			return nil, err
		}
		return customer, nil
	},
	values: func(c *domain.Customer) []interface{} {
		return []interface{}{c.Name}
	},
	id:    func(c *domain.Customer) int64 { return c.ID },
	setID: func(c *domain.Customer, id int64) { c.ID = id },
}

func NewCustomerRepository(conn postgres.Conn) CustomerRepository {
	return newCRUDRepository(conn, customerTable)
}
