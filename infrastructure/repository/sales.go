package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-api/internal/domain"
)

//go:generate mockgen -source=sales.go -destination=mocks/sales_mock.go -package=mocks

type SalesRepository interface {
	GetAll(ctx context.Context) ([]*domain.Sale, error)
	GetByID(ctx context.Context, id int64) (*domain.Sale, error)
	Delete(ctx context.Context, id int64) error
	RecordSale(ctx context.Context, request domain.CreateSaleRequest) (*domain.Sale, error)
	DailyReport(ctx context.Context, date time.Time) ([]*domain.DailySalesReportRow, error)
}

const (
	salesCustomerFK = "sales_customer_id_fkey"
	salesProductFK  = "sales_product_id_fkey"
)

var salesTable = table[domain.Sale]{
	name:     "sales",
	idColumn: "sales_id",
	columns:  []string{"customer_id", "product_id", "product_qty", "sales_date"},
	notFound: domain.ErrSaleNotFound,
	scan: func(s postgres.Scanner) (*domain.Sale, error) {
		sale := &domain.Sale{}
		if err := s.Scan(
			&sale.ID,
			&sale.CustomerID,
			&sale.ProductID,
			&sale.Quantity,
			&sale.Date,
		); err != nil {
			return nil, err
		}
		// TIMESTAMP sem fuso volta com zona fixa do driver
		sale.Date = sale.Date.UTC()
		return sale, nil
	},
	values: func(s *domain.Sale) []interface{} {
		return []interface{}{s.CustomerID, s.ProductID, s.Quantity, s.Date}
	},
	id:    func(s *domain.Sale) int64 { return s.ID },
	setID: func(s *domain.Sale, id int64) { s.ID = id },
}

type salesRepository struct {
	conn postgres.Conn
	crud *crudRepository[domain.Sale]
}

func NewSalesRepository(conn postgres.Conn) SalesRepository {
	return &salesRepository{
		conn: conn,
		crud: newCRUDRepository(conn, salesTable),
	}
}

func (r *salesRepository) GetAll(ctx context.Context) ([]*domain.Sale, error) {
	return r.crud.GetAll(ctx)
}

func (r *salesRepository) GetByID(ctx context.Context, id int64) (*domain.Sale, error) {
	return r.crud.GetByID(ctx, id)
}

// Delete remove apenas o registro da venda. O estoque não é devolvido.
func (r *salesRepository) Delete(ctx context.Context, id int64) error {
	return r.crud.Delete(ctx, id)
}

// RecordSale grava a venda e baixa o estoque do produto na mesma transação.
// Ou as duas mudanças ficam visíveis, ou nenhuma.
func (r *salesRepository) RecordSale(ctx context.Context, request domain.CreateSaleRequest) (*domain.Sale, error) {
	var sale *domain.Sale

	err := r.conn.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		stock, err := lockProductStock(ctx, tx, request.ProductID)
		if err != nil {
			return err
		}

		if err := ensureCustomerExists(ctx, tx, request.CustomerID); err != nil {
			return err
		}

		if stock < request.Quantity {
			return errors.Wrapf(domain.ErrInsufficientStock,
				"produto %d tem %d unidades, pedido de %d", request.ProductID, stock, request.Quantity)
		}

		saleID, err := insertSale(ctx, tx, request)
		if err != nil {
			return err
		}

		if err := decrementStock(ctx, tx, request.ProductID, request.Quantity); err != nil {
			return err
		}

		sale, err = r.crud.getByID(ctx, tx, saleID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return sale, nil
}

// lockProductStock lê o estoque com FOR UPDATE: vendas concorrentes do mesmo
// produto esperam o commit desta transação.
func lockProductStock(ctx context.Context, tx *sql.Tx, productID int64) (int, error) {
	query, args, err := squirrel.
		Select("product_stock").
		From("product").
		Where(squirrel.Eq{"product_id": productID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	var stock int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&stock); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errors.Wrapf(domain.ErrProductNotFound, "id %d", productID)
		}
		return 0, errors.Wrapf(err, "erro ao bloquear produto %d", productID)
	}

	return stock, nil
}

func ensureCustomerExists(ctx context.Context, tx *sql.Tx, customerID int64) error {
	query, args, err := squirrel.
		Select("1").
		From("customer").
		Where(squirrel.Eq{"customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	var exists int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.Wrapf(domain.ErrCustomerNotFound, "id %d", customerID)
		}
		return errors.Wrapf(err, "erro ao buscar cliente %d", customerID)
	}

	return nil
}

func insertSale(ctx context.Context, tx *sql.Tx, request domain.CreateSaleRequest) (int64, error) {
	query, args, err := squirrel.
		Insert("sales").
		Columns("customer_id", "product_id", "product_qty", "sales_date").
		Values(
			request.CustomerID,
			request.ProductID,
			request.Quantity,
			squirrel.Expr("clock_timestamp() AT TIME ZONE 'utc'"),
		).
		Suffix("RETURNING sales_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	var saleID int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&saleID); err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return 0, saleReferenceError(err, request)
		}
		return 0, errors.Wrap(err, "erro ao inserir venda")
	}

	return saleID, nil
}

// saleReferenceError cobre a janela entre a verificação e o insert em que o
// cliente ou o produto foi removido por outra transação
func saleReferenceError(err error, request domain.CreateSaleRequest) error {
	switch postgres.ConstraintName(err) {
	case salesCustomerFK:
		return errors.Wrapf(domain.ErrCustomerNotFound, "id %d", request.CustomerID)
	case salesProductFK:
		return errors.Wrapf(domain.ErrProductNotFound, "id %d", request.ProductID)
	default:
		return errors.Wrap(err, "erro ao inserir venda")
	}
}

// decrementStock só altera a linha se ainda houver estoque suficiente, o que
// mantém product_stock >= 0 mesmo sem o bloqueio anterior
func decrementStock(ctx context.Context, tx *sql.Tx, productID int64, quantity int) error {
	query, args, err := squirrel.
		Update("product").
		Set("product_stock", squirrel.Expr("product_stock - ?", quantity)).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.GtOrEq{"product_stock": quantity}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "erro ao baixar estoque do produto %d", productID)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao obter número de linhas afetadas")
	}

	if rowsAffected == 0 {
		return errors.Wrapf(domain.ErrInsufficientStock, "produto %d", productID)
	}

	return nil
}

// DailyReport agrega por cliente as vendas do dia (UTC) que contém date
func (r *salesRepository) DailyReport(ctx context.Context, date time.Time) ([]*domain.DailySalesReportRow, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	query, args, err := squirrel.
		Select(
			"c.customer_id",
			"c.customer_name",
			"SUM(s.product_qty) AS total_product_qty",
			"SUM(s.product_qty * p.product_price) AS total_sales_amount",
		).
		From("sales s").
		Join("customer c ON s.customer_id = c.customer_id").
		Join("product p ON s.product_id = p.product_id").
		Where(squirrel.GtOrEq{"s.sales_date": start}).
		Where(squirrel.Lt{"s.sales_date": end}).
		GroupBy("c.customer_id", "c.customer_name").
		OrderBy("c.customer_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, postgres.ClassifyError(errors.Wrap(err, "erro ao gerar relatório diário"))
	}
	defer rows.Close()

	report, err := scanAll(rows, scanDailySalesReportRow)
	if err != nil {
		return nil, postgres.ClassifyError(errors.Wrap(err, "erro ao escanear relatório diário"))
	}

	return report, nil
}

func scanDailySalesReportRow(s postgres.Scanner) (*domain.DailySalesReportRow, error) {
	row := &domain.DailySalesReportRow{}
	if err := s.Scan(
		&row.CustomerID,
		&row.CustomerName,
		&row.TotalProductQty,
		&row.TotalSalesAmount,
	); err != nil {
		return nil, err
	}
	return row, nil
}
