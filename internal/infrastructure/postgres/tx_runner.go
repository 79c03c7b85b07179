package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcastano/ganaderia-api/internal/application/herd"
	"github.com/jcastano/ganaderia-api/internal/domain"
	"github.com/jcastano/ganaderia-api/internal/domain/repository"
)

var _ herd.TxRunner = (*TxRunner)(nil)

// Reintentos ante fallos de serialización antes de rendirse.
const txMaxRetries = 3

// TxRunner ejecuta callbacks de reconciliación dentro de una transacción
// PostgreSQL SERIALIZABLE con advisory lock por propiedad.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia la transacción, toma el advisory lock de la propiedad (serializa
// reconciliaciones concurrentes del mismo predio; predios distintos corren en
// paralelo), ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Los fallos de serialización (SQLSTATE 40001/40P01) se reintentan completos
// hasta txMaxRetries veces y se devuelven como domain.ErrTxConflict.
func (r *TxRunner) Run(ctx context.Context, propertyID string, fn func(
	batchRepo repository.BatchRepository,
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	propertyRepo repository.PropertyRepository,
) error) error {
	var err error
	for attempt := 0; attempt <= txMaxRetries; attempt++ {
		err = r.runOnce(ctx, propertyID, fn)
		if err == nil || !errors.Is(err, domain.ErrTxConflict) {
			return err
		}
	}
	return err
}

func (r *TxRunner) runOnce(ctx context.Context, propertyID string, fn func(
	batchRepo repository.BatchRepository,
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	propertyRepo repository.PropertyRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// El lock se libera solo al cerrar la transacción (xact lock).
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, propertyID); err != nil {
		return fmt.Errorf("advisory lock propiedad %s: %w", propertyID, err)
	}

	batchRepo := NewBatchRepository(tx)
	stockRepo := NewStockRepository(tx)
	movRepo := NewMovementRepository(tx)
	propertyRepo := NewPropertyRepository(tx)

	if err := fn(batchRepo, stockRepo, movRepo, propertyRepo); err != nil {
		return classifyTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return classifyTxError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}
