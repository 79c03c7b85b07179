package herd

import (
	"context"

	"github.com/jcastano/ganaderia-api/internal/domain/entity"
	"github.com/jcastano/ganaderia-api/internal/domain/repository"
)

// StockBalance consulta de espejo: evoluciona las franjas a hoy y lee el
// agregado dentro de la misma transacción, para no servir un snapshot sin
// envejecer. Especies sin seguimiento devuelven vacío.
func (uc *ReconcileUseCase) StockBalance(ctx context.Context, propertyID, species string) ([]*entity.Stock, error) {
	if !uc.isHerdSpecies(species) {
		return nil, nil
	}
	var rows []*entity.Stock
	err := uc.txRunner.Run(ctx, propertyID, func(
		batchRepo repository.BatchRepository,
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		_ repository.PropertyRepository,
	) error {
		if err := uc.evolveAllBatches(batchRepo, stockRepo, movRepo, propertyID, species, uc.now()); err != nil {
			return err
		}
		var err error
		rows, err = stockRepo.List(propertyID, species)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
