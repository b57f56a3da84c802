// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-api/internal/domain"
)

// CRUD é a capacidade uniforme de cada entidade
type CRUD[T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Add(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
}

// table descreve como uma entidade é mapeada para a sua tabela
type table[T any] struct {
	name     string
	idColumn string
	columns  []string // colunas de dados, na ordem de values
	notFound error

	scan   func(postgres.Scanner) (*T, error)
	values func(*T) []interface{}
	id     func(*T) int64
	setID  func(*T, int64)

	// referenceError traduz violação de chave estrangeira em insert/update
	referenceError func(err error) error
}

type crudRepository[T any] struct {
	conn  postgres.Conn
	table table[T]
}

func newCRUDRepository[T any](conn postgres.Conn, t table[T]) *crudRepository[T] {
	return &crudRepository[T]{conn: conn, table: t}
}

func (r *crudRepository[T]) selectBuilder() squirrel.SelectBuilder {
	columns := append([]string{r.table.idColumn}, r.table.columns...)

	return squirrel.
		Select(columns...).
		From(r.table.name).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *crudRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	query, args, err := r.selectBuilder().
		OrderBy(r.table.idColumn + " ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, postgres.ClassifyError(errors.Wrapf(err, "erro ao listar %s", r.table.name))
	}
	defer rows.Close()

	entities, err := scanAll(rows, r.table.scan)
	if err != nil {
		return nil, postgres.ClassifyError(errors.Wrapf(err, "erro ao escanear %s", r.table.name))
	}

	return entities, nil
}

func (r *crudRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	return r.getByID(ctx, r.conn, id)
}

// getByID roda em qualquer Queryer, inclusive dentro de uma transação
func (r *crudRepository[T]) getByID(ctx context.Context, q postgres.Queryer, id int64) (*T, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{r.table.idColumn: id}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	entity, err := r.table.scan(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(r.table.notFound, "id %d", id)
		}
		return nil, postgres.ClassifyError(errors.Wrapf(err, "erro ao buscar %s %d", r.table.name, id))
	}

	return entity, nil
}

func (r *crudRepository[T]) Add(ctx context.Context, entity *T) error {
	query, args, err := squirrel.
		Insert(r.table.name).
		Columns(r.table.columns...).
		Values(r.table.values(entity)...).
		Suffix("RETURNING " + r.table.idColumn).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	var id int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return r.writeError(err, "erro ao inserir %s", r.table.name)
	}

	r.table.setID(entity, id)
	return nil
}

func (r *crudRepository[T]) Update(ctx context.Context, entity *T) error {
	values := r.table.values(entity)
	setMap := make(map[string]interface{}, len(r.table.columns))
	for i, column := range r.table.columns {
		setMap[column] = values[i]
	}

	id := r.table.id(entity)
	query, args, err := squirrel.
		Update(r.table.name).
		SetMap(setMap).
		Where(squirrel.Eq{r.table.idColumn: id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return r.writeError(err, "erro ao atualizar %s %d", r.table.name, id)
	}

	return r.expectOneRow(result, id)
}

func (r *crudRepository[T]) Delete(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Delete(r.table.name).
		Where(squirrel.Eq{r.table.idColumn: id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	ctx, cancel := r.conn.WithTimeout(ctx)
	defer cancel()

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		// Exclusão restrita: registros referenciados não podem ser removidos
		if postgres.IsForeignKeyViolation(err) {
			return errors.Wrapf(domain.ErrInUse, "%s %d", r.table.name, id)
		}
		return postgres.ClassifyError(errors.Wrapf(err, "erro ao remover %s %d", r.table.name, id))
	}

	return r.expectOneRow(result, id)
}

func (r *crudRepository[T]) writeError(err error, format string, args ...interface{}) error {
	if postgres.IsForeignKeyViolation(err) && r.table.referenceError != nil {
		return r.table.referenceError(err)
	}

	if postgres.IsCheckViolation(err) {
		return errors.Wrapf(domain.ErrValidation, "%s viola a constraint %s", r.table.name, postgres.ConstraintName(err))
	}

	return postgres.ClassifyError(errors.Wrapf(err, format, args...))
}

func (r *crudRepository[T]) expectOneRow(result sql.Result, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao obter número de linhas afetadas")
	}

	if rowsAffected == 0 {
		return errors.Wrapf(r.table.notFound, "id %d", id)
	}

	return nil
}

func scanAll[T any](rows *sql.Rows, scan func(postgres.Scanner) (*T, error)) ([]*T, error) {
	entities := make([]*T, 0)
	for rows.Next() {
		entity, err := scan(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return entities, nil
}
