package herd

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastano/ganaderia-api/internal/domain/entity"
	domainherd "github.com/jcastano/ganaderia-api/internal/domain/herd"
	"github.com/jcastano/ganaderia-api/internal/domain/repository"
)

// evolutionKey agrupa las transiciones idénticas de una misma pasada para
// emitir un solo marcador de auditoría por combinación.
type evolutionKey struct {
	sex  string
	from string
	to   string
}

// evolveAllBatches avanza la franja etaria de todos los lotes vivos de una
// propiedad+especie hasta la fecha de referencia. Por cada lote que cambia de
// franja mueve su cantidad entre los agregados vieja y nueva, persiste la
// franja vigente y acumula la transición para el marcador agrupado. Los lotes
// se recorren en orden (base_date, created_seq), así el agrupamiento es
// determinista. Especies sin seguimiento no hacen nada.
func (uc *ReconcileUseCase) evolveAllBatches(
	batchRepo repository.BatchRepository,
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	propertyID, species string,
	referenceDate time.Time,
) error {
	if !uc.isHerdSpecies(species) {
		return nil
	}
	batches, err := batchRepo.ListLive(propertyID, species)
	if err != nil {
		return err
	}

	groups := make(map[evolutionKey]int64)
	var order []evolutionKey // primera aparición, para emitir en orden estable
	for _, b := range batches {
		bracket, err := domainherd.ResolveBracket(b.OriginBracket, b.BaseDate, referenceDate)
		if err != nil {
			return err
		}
		if bracket == b.CurrentBracket {
			continue
		}
		if err := uc.applyStockDelta(stockRepo, propertyID, species, b.Sex, b.CurrentBracket, -b.CurrentQuantity); err != nil {
			return err
		}
		if err := uc.applyStockDelta(stockRepo, propertyID, species, b.Sex, bracket, b.CurrentQuantity); err != nil {
			return err
		}
		if err := batchRepo.UpdateBracket(b.ID, bracket); err != nil {
			return err
		}
		key := evolutionKey{sex: b.Sex, from: b.CurrentBracket, to: bracket}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] += b.CurrentQuantity
	}

	now := uc.now()
	for _, key := range order {
		qty := groups[key]
		marker := &entity.Movement{
			PropertyID:  propertyID,
			Species:     species,
			Sex:         key.sex,
			Bracket:     key.to,
			Type:        entity.MovementTypeAdjustment,
			Quantity:    decimal.NewFromInt(qty),
			Date:        referenceDate,
			Description: entity.EvolutionMarkerDescription(qty, key.from, key.to),
			CreatedAt:   now,
		}
		if err := movRepo.Create(marker); err != nil {
			return err
		}
	}
	return nil
}
