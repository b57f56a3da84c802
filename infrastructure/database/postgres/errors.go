package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
	"github.com/vfg2006/sales-api/internal/domain"
)

// Códigos do PostgreSQL que indicam falha temporária (seguro tentar de novo)
var transientCodes = map[pq.ErrorCode]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
	"55P03": {}, // lock_not_available
	"57014": {}, // query_canceled
	"57P01": {}, // admin_shutdown
	"53300": {}, // too_many_connections
}

const (
	foreignKeyViolation = pq.ErrorCode("23503")
	checkViolation      = pq.ErrorCode("23514")
)

// ClassifyError marca como domain.ErrTransient os erros de conectividade e
// timeout. Erros já classificados e erros desconhecidos passam inalterados.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if domain.KindOf(err) != domain.KindUnexpected {
		return err
	}

	if isTransient(err) {
		return fmt.Errorf("%w: %w", domain.ErrTransient, err)
	}

	return err
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code.Class() == "08" { // connection_exception
			return true
		}
		_, ok := transientCodes[pqErr.Code]
		return ok
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// IsForeignKeyViolation indica violação de chave estrangeira (23503)
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

// ConstraintName retorna o nome da constraint violada, quando houver
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

// IsCheckViolation indica violação de CHECK (ex.: estoque negativo)
func IsCheckViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == checkViolation
}
