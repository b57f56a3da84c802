package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-api/internal/api/handler"
	"github.com/vfg2006/sales-api/internal/api/handler/router"
	"github.com/vfg2006/sales-api/internal/config"
	"github.com/vfg2006/sales-api/internal/scheduler"
	"github.com/vfg2006/sales-api/internal/usecases/cataloging"
	"github.com/vfg2006/sales-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-api/internal/usecases/selling"
	"github.com/vfg2006/sales-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	db handler.Pinger,
	cataloger cataloging.Cataloger,
	seller selling.Seller,
	reporter reporting.Reporter,
	lowStockWatchService *scheduler.LowStockWatchService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		handler.CronJobTypeLowStock: lowStockWatchService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Customers(cataloger)...),
		router.WithRoutes(handler.Suppliers(cataloger)...),
		router.WithRoutes(handler.Products(cataloger, reporter)...),
		router.WithRoutes(handler.Sales(seller, reporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Run serve até receber SIGINT/SIGTERM ou até ctx ser cancelado
func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serveErr:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
