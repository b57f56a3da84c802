// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-api/internal/config"
	"github.com/vfg2006/sales-api/internal/domain"
	"github.com/vfg2006/sales-api/internal/usecases/reporting"
)

type LowStockWatchConfig struct {
	CronSchedule string
	Threshold    int
	Enabled      bool
}

// LowStockWatchService avisa periodicamente sobre produtos com estoque baixo.
// Só lê; nunca altera estoque.
type LowStockWatchService struct {
	scheduler *gocron.Scheduler
	reporter  reporting.Reporter
	config    LowStockWatchConfig

	runMutex        sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastFound       int
	lastError       string
}

func NewLowStockWatchService(reporter reporting.Reporter, cfg *config.Config) *LowStockWatchService {
	watchConfig := LowStockWatchConfig{
		CronSchedule: cfg.LowStockWatch.CronSchedule,
		Threshold:    cfg.LowStockWatch.Threshold,
		Enabled:      cfg.LowStockWatch.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": watchConfig.CronSchedule,
		"threshold":     watchConfig.Threshold,
	}).Info("Configuração do monitor de estoque baixo carregada")

	return &LowStockWatchService{
		scheduler: gocron.NewScheduler(time.UTC),
		reporter:  reporter,
		config:    watchConfig,
	}
}

func (s *LowStockWatchService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor de estoque baixo desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando monitor de estoque baixo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.CheckLowStock(ctx); err != nil {
			logrus.WithError(err).Error("Erro na verificação de estoque baixo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor de estoque baixo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor de estoque baixo")
		s.scheduler.Stop()
	}()

	return nil
}

// CheckLowStock consulta os produtos abaixo do limite e registra um aviso por
// produto. Retorna nil sem consultar se outra verificação estiver em andamento.
func (s *LowStockWatchService) CheckLowStock(ctx context.Context) ([]*domain.LowStockProduct, error) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Warn("Verificação de estoque baixo já está em execução")
		return nil, nil
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.runMutex.Unlock()

	products, err := s.reporter.LowStock(ctx, s.config.Threshold)

	s.runMutex.Lock()
	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastFound = len(products)
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.runMutex.Unlock()

	if err != nil {
		return nil, err
	}

	for _, product := range products {
		logrus.WithFields(logrus.Fields{
			"product_id":    product.ProductID,
			"product_name":  product.ProductName,
			"product_stock": product.ProductStock,
			"supplier_name": product.SupplierName,
		}).Warn("Produto com estoque baixo")
	}

	logrus.WithFields(logrus.Fields{
		"threshold": s.config.Threshold,
		"found":     len(products),
	}).Info("Verificação de estoque baixo concluída")

	return products, nil
}

// TriggerManualRun dispara uma verificação fora do agendamento
func (s *LowStockWatchService) TriggerManualRun() bool {
	s.runMutex.Lock()
	running := s.running
	s.runMutex.Unlock()

	if running {
		logrus.Info("Verificação de estoque baixo já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando verificação manual de estoque baixo")
	go func() {
		if _, err := s.CheckLowStock(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na verificação manual de estoque baixo")
		}
	}()

	return true
}

func (s *LowStockWatchService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"threshold":         s.config.Threshold,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_found":        s.lastFound,
		"last_error":        s.lastError,
	}
}
