package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jcastano/ganaderia-api/internal/domain"
)

// isSerializationFailure verifica si un error es un fallo de serialización o
// deadlock (40001 / 40P01): la transacción completa es segura de reintentar.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// classifyTxError traduce fallos de serialización a domain.ErrTxConflict;
// el resto de errores pasa intacto.
func classifyTxError(err error) error {
	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %v", domain.ErrTxConflict, err)
	}
	return err
}
