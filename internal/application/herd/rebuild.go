package herd

import (
	"context"
	"fmt"
	"time"

	"github.com/jcastano/ganaderia-api/internal/domain/repository"
)

// RebuildFromLedger recomputo total y destructivo de una propiedad: borra
// lotes y agregados de las especies de hato, reaplica el libro completo en
// orden cronológico con el mismo despacho del camino incremental, evoluciona
// a hoy y recalcula el resumen de cabezas de la finca. Idempotente: dos
// corridas seguidas sin escrituras intermedias dejan el mismo estado.
// Cualquier error por evento aborta el rebuild entero; un rebuild parcial
// dejaría los agregados inconsistentes.
func (uc *ReconcileUseCase) RebuildFromLedger(ctx context.Context, propertyID string) error {
	start := time.Now()
	err := uc.txRunner.Run(ctx, propertyID, func(
		batchRepo repository.BatchRepository,
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		propertyRepo repository.PropertyRepository,
	) error {
		if err := batchRepo.DeleteByProperty(propertyID, uc.species); err != nil {
			return fmt.Errorf("borrar lotes: %w", err)
		}
		if err := stockRepo.DeleteByProperty(propertyID, uc.species); err != nil {
			return fmt.Errorf("borrar existencias: %w", err)
		}

		events, err := movRepo.ListByProperty(propertyID, uc.species)
		if err != nil {
			return fmt.Errorf("leer libro de movimientos: %w", err)
		}
		for _, event := range events {
			// Los marcadores son rastro de evoluciones pasadas; el motor las
			// recalcula solo, reaplicarlas duplicaría la transición.
			if event.IsEvolutionMarker() {
				continue
			}
			if err := uc.applyEvent(batchRepo, stockRepo, movRepo, event); err != nil {
				return fmt.Errorf("reaplicar movimiento %s (%s %s): %w", event.ID, event.Type, event.Date.Format("2006-01-02"), err)
			}
		}

		// Captura el envejecimiento posterior al último asiento registrado.
		now := uc.now()
		for _, species := range uc.species {
			if err := uc.evolveAllBatches(batchRepo, stockRepo, movRepo, propertyID, species, now); err != nil {
				return err
			}
		}

		var total int64
		for _, species := range uc.species {
			rows, err := stockRepo.List(propertyID, species)
			if err != nil {
				return err
			}
			for _, row := range rows {
				total += row.HeadCount
			}
		}
		return propertyRepo.UpdateCattleCount(propertyID, total)
	})
	if err != nil {
		return err
	}
	uc.log.Info().
		Str("property_id", propertyID).
		Dur("elapsed", time.Since(start)).
		Msg("rebuild del hato completado")
	return nil
}
