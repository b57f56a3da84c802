package postgres

import (
	"context"
	_ "embed"
)

// Schema é o DDL de referência das tabelas customer, supplier, product e sales.
// É idempotente (CREATE ... IF NOT EXISTS) e usado apenas pelo seeder e pelos
// testes de integração.
//
//go:embed schema.sql
var Schema string

// EnsureSchema aplica o DDL de referência
func (c *Connection) EnsureSchema(ctx context.Context) error {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	_, err := c.ExecContext(ctx, Schema)
	return ClassifyError(err)
}
