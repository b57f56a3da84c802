package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito tanto por *Connection quanto por *sql.Tx, permitindo
// que os repositórios rodem no escopo de uma transação ou em auto-commit
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Scanner é satisfeito por *sql.Row e *sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}
