// Comando seeder aplica o DDL de referência e popula o banco com dados de demonstração.
package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-api/infrastructure/repository"
	"github.com/vfg2006/sales-api/internal/config"
	"github.com/vfg2006/sales-api/internal/domain"
	"github.com/vfg2006/sales-api/pkg/log"
)

type seedProduct struct {
	Name     string
	Price    string
	Stock    int
	Supplier string
}

var (
	suppliers = []string{"Papelaria Central", "Distribuidora Norte", "Atacado Sul"}

	products = []seedProduct{
		{"Caderno universitário", "18.90", 120, "Papelaria Central"},
		{"Caneta esferográfica azul", "2.50", 8, "Papelaria Central"},
		{"Grampeador", "34.00", 15, "Distribuidora Norte"},
		{"Resma de papel A4", "29.90", 4, "Distribuidora Norte"},
		{"Marca-texto amarelo", "5.75", 40, "Atacado Sul"},
	}

	customers = []string{"Ana Souza", "Bruno Lima", "Carla Mendes"}
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema")
	}
	logrus.Info("Schema aplicado")

	seeded, err := alreadySeeded(ctx, conn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao verificar dados existentes")
	}
	if seeded {
		logrus.Info("Banco já possui fornecedores, nada a fazer")
		return
	}

	startTime := time.Now()
	var customerIDs, productIDs []int64

	err = conn.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		supplierIDs, err := insertSuppliers(ctx, tx)
		if err != nil {
			return err
		}

		productIDs, err = insertProducts(ctx, tx, supplierIDs)
		if err != nil {
			return err
		}

		customerIDs, err = insertCustomers(ctx, tx)
		return err
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao popular o catálogo, nenhuma alteração foi gravada")
	}

	logrus.WithFields(logrus.Fields{
		"suppliers": len(suppliers),
		"products":  len(productIDs),
		"customers": len(customerIDs),
		"elapsed":   time.Since(startTime),
	}).Info("Catálogo populado")

	recordDemoSales(ctx, repository.NewSalesRepository(conn), customerIDs, productIDs)
}

func alreadySeeded(ctx context.Context, conn postgres.Conn) (bool, error) {
	query, args, err := squirrel.Select("EXISTS (SELECT 1 FROM supplier)").ToSql()
	if err != nil {
		return false, err
	}

	ctx, cancel := conn.WithTimeout(ctx)
	defer cancel()

	var exists bool
	err = conn.QueryRowContext(ctx, query, args...).Scan(&exists)
	return exists, err
}

func insertSuppliers(ctx context.Context, tx *sql.Tx) (map[string]int64, error) {
	logrus.Infof("Inserindo %d fornecedores...", len(suppliers))

	ids := make(map[string]int64, len(suppliers))
	for _, name := range suppliers {
		id, err := insertReturningID(ctx, tx, squirrel.
			Insert("supplier").
			Columns("supplier_name").
			Values(name).
			Suffix("RETURNING supplier_id"))
		if err != nil {
			return nil, errors.Wrapf(err, "fornecedor %q", name)
		}
		ids[name] = id
	}

	return ids, nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, supplierIDs map[string]int64) ([]int64, error) {
	logrus.Infof("Inserindo %d produtos...", len(products))

	ids := make([]int64, 0, len(products))
	for i, p := range products {
		supplierID, exists := supplierIDs[p.Supplier]
		if !exists {
			return nil, errors.Errorf("fornecedor %q não encontrado para o produto %q", p.Supplier, p.Name)
		}

		id, err := insertReturningID(ctx, tx, squirrel.
			Insert("product").
			Columns("product_name", "product_price", "product_stock", "supplier_id").
			Values(p.Name, decimal.RequireFromString(p.Price), p.Stock, supplierID).
			Suffix("RETURNING product_id"))
		if err != nil {
			return nil, errors.Wrapf(err, "produto [%d/%d] %q", i+1, len(products), p.Name)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func insertCustomers(ctx context.Context, tx *sql.Tx) ([]int64, error) {
	logrus.Infof("Inserindo %d clientes...", len(customers))

	ids := make([]int64, 0, len(customers))
	for _, name := range customers {
		id, err := insertReturningID(ctx, tx, squirrel.
			Insert("customer").
			Columns("customer_name").
			Values(name).
			Suffix("RETURNING customer_id"))
		if err != nil {
			return nil, errors.Wrapf(err, "cliente %q", name)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func insertReturningID(ctx context.Context, tx *sql.Tx, builder squirrel.InsertBuilder) (int64, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	var id int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&id)
	return id, err
}

// recordDemoSales passa pelo mesmo caminho transacional da API
func recordDemoSales(ctx context.Context, salesRepo repository.SalesRepository, customerIDs, productIDs []int64) {
	successCount := 0
	for i, customerID := range customerIDs {
		request := domain.CreateSaleRequest{
			CustomerID: customerID,
			ProductID:  productIDs[i%len(productIDs)],
			Quantity:   i + 1,
		}

		sale, err := salesRepo.RecordSale(ctx, request)
		if err != nil {
			logrus.WithError(err).WithField("customer_id", customerID).Warn("Venda de demonstração não registrada")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"sales_id":   sale.ID,
			"product_id": sale.ProductID,
			"qty":        sale.Quantity,
		}).Debug("Venda de demonstração registrada")
		successCount++
	}

	logrus.Infof("Vendas de demonstração concluídas. Sucesso: %d, Erros: %d", successCount, len(customerIDs)-successCount)
}
