package herd

import (
	"context"
	"time"

	"github.com/jcastano/ganaderia-api/internal/domain"
	"github.com/jcastano/ganaderia-api/internal/domain/entity"
	"github.com/jcastano/ganaderia-api/internal/domain/repository"
)

// Deplete consume cabezas de una franja en su propia transacción (muertes y
// ventas registradas fuera del camino de eventos, p. ej. correcciones manuales).
func (uc *ReconcileUseCase) Deplete(
	ctx context.Context,
	propertyID, species, sex, bracket string,
	quantity int64,
	referenceDate time.Time,
) error {
	if !uc.isHerdSpecies(species) {
		return nil
	}
	return uc.txRunner.Run(ctx, propertyID, func(
		batchRepo repository.BatchRepository,
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		_ repository.PropertyRepository,
	) error {
		return uc.deplete(batchRepo, stockRepo, movRepo, propertyID, species, sex, bracket, quantity, referenceDate)
	})
}

// deplete asignador de bajas (misma tx del caller). Evoluciona primero las
// franjas hasta la fecha de referencia, valida disponibilidad total antes de
// escribir nada y luego consume lote por lote en orden FIFO (fecha base más
// vieja primero, desempate por secuencia de creación), reflejando cada resta
// en el agregado de existencias.
func (uc *ReconcileUseCase) deplete(
	batchRepo repository.BatchRepository,
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	propertyID, species, sex, bracket string,
	quantity int64,
	referenceDate time.Time,
) error {
	if quantity <= 0 {
		return nil
	}
	normalized, ok := entity.NormalizeBracket(bracket)
	if !ok {
		return domain.ErrInvalidBracket
	}
	if err := uc.evolveAllBatches(batchRepo, stockRepo, movRepo, propertyID, species, referenceDate); err != nil {
		return err
	}

	batches, err := batchRepo.ListLiveByBracket(propertyID, species, sex, normalized)
	if err != nil {
		return err
	}
	var available int64
	for _, b := range batches {
		available += b.CurrentQuantity
	}
	// Chequeo todo-o-nada: sin existencias suficientes no se muta nada.
	if available < quantity {
		return &domain.InsufficientStockError{
			Bracket:   normalized,
			Sex:       sex,
			Available: available,
			Requested: quantity,
		}
	}

	remaining := quantity
	for _, b := range batches {
		if remaining == 0 {
			break
		}
		take := b.CurrentQuantity
		if take > remaining {
			take = remaining
		}
		if err := batchRepo.UpdateQuantity(b.ID, b.CurrentQuantity-take); err != nil {
			return err
		}
		if err := uc.applyStockDelta(stockRepo, propertyID, species, sex, normalized, -take); err != nil {
			return err
		}
		remaining -= take
	}
	return nil
}
