package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-api/internal/config"
)

const defaultQueryTimeout = 5 * time.Second

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	WithTimeout(context.Context) (context.Context, context.CancelFunc)
	RunInTransaction(context.Context, func(context.Context, *sql.Tx) error) error
}

// Connection é o único dono da conectividade com o banco. Repositórios
// recebem uma Connection pronta e nunca abrem conexões próprias.
type Connection struct {
	*sql.DB
	queryTimeout time.Duration
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "postgres"
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	conn := NewConnectionFromDB(db, cfg.QueryTimeout)

	if err := conn.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return conn, nil
}

// NewConnectionFromDB embrulha um *sql.DB já aberto
func NewConnectionFromDB(db *sql.DB, queryTimeout time.Duration) *Connection {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}

	return &Connection{DB: db, queryTimeout: queryTimeout}
}

func (c *Connection) Ping(ctx context.Context) error {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	return ClassifyError(c.DB.PingContext(ctx))
}

// WithTimeout aplica o timeout por operação configurado em DATABASE_QUERY_TIMEOUT
func (c *Connection) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.queryTimeout)
}

// RunInTransaction executa fn dentro de uma transação read committed. Qualquer
// erro (ou panic) de fn desfaz a transação inteira antes de ser propagado.
// fn recebe o contexto já limitado pelo timeout da transação.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(context.Context, *sql.Tx) error) error {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	tx, err := c.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return ClassifyError(err)
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			logrus.WithError(rbErr).Warn("Erro ao desfazer transação")
		}
		return ClassifyError(err)
	}

	return ClassifyError(tx.Commit())
}
