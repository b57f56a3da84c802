package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-api/infrastructure/repository"
	"github.com/vfg2006/sales-api/internal/api"
	"github.com/vfg2006/sales-api/internal/config"
	"github.com/vfg2006/sales-api/internal/scheduler"
	"github.com/vfg2006/sales-api/internal/usecases/cataloging"
	"github.com/vfg2006/sales-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-api/internal/usecases/selling"
	"github.com/vfg2006/sales-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	customerRepo := repository.NewCustomerRepository(pgConn)
	supplierRepo := repository.NewSupplierRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	salesRepo := repository.NewSalesRepository(pgConn)

	cataloger := cataloging.NewService(customerRepo, supplierRepo, productRepo)
	seller := selling.NewService(salesRepo)
	reporter := reporting.NewService(salesRepo, productRepo)

	lowStockWatchService := scheduler.NewLowStockWatchService(reporter, cfg)
	if err := lowStockWatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor de estoque baixo")
	}

	server, err := api.New(cfg, pgConn, cataloger, seller, reporter, lowStockWatchService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn abre a conexão com o banco de dados ou encerra o processo
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
