package herd

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastano/ganaderia-api/internal/domain"
	"github.com/jcastano/ganaderia-api/internal/domain/entity"
	"github.com/jcastano/ganaderia-api/internal/domain/repository"
	"github.com/jcastano/ganaderia-api/pkg/logger"
)

// ReconcileUseCase es el orquestador del libro de hato: convierte el libro de
// movimientos (nacimientos, muertes, ventas, compras, ajustes) en lotes y
// existencias consistentes, evolucionando franjas etarias antes de aplicar
// cada evento. Es el único dueño de escritura sobre lotes y existencias.
type ReconcileUseCase struct {
	txRunner TxRunner
	species  []string // especies con seguimiento de hato
	log      *logger.Logger
	now      func() time.Time
}

// NewReconcileUseCase construye el caso de uso. herdSpecies vacío usa las
// especies por defecto (bovino y bufalino).
func NewReconcileUseCase(txRunner TxRunner, herdSpecies []string, log *logger.Logger) *ReconcileUseCase {
	if len(herdSpecies) == 0 {
		herdSpecies = []string{entity.SpeciesBovino, entity.SpeciesBufalino}
	}
	return &ReconcileUseCase{
		txRunner: txRunner,
		species:  herdSpecies,
		log:      log,
		now:      time.Now,
	}
}

// HerdSpecies devuelve las especies bajo seguimiento.
func (uc *ReconcileUseCase) HerdSpecies() []string {
	out := make([]string, len(uc.species))
	copy(out, uc.species)
	return out
}

func (uc *ReconcileUseCase) isHerdSpecies(species string) bool {
	for _, s := range uc.species {
		if s == species {
			return true
		}
	}
	return false
}

// ApplyEvent camino incremental: reconcilia un asiento recién agregado al libro.
// Evoluciona las franjas de la propiedad+especie hasta la fecha del evento y
// luego lo despacha según su tipo. Los marcadores de evolución del propio motor
// y las especies sin seguimiento se omiten.
func (uc *ReconcileUseCase) ApplyEvent(ctx context.Context, event *entity.Movement) error {
	if event == nil || event.PropertyID == "" {
		return domain.ErrInvalidInput
	}
	if event.IsEvolutionMarker() || !uc.isHerdSpecies(event.Species) {
		return nil
	}
	return uc.txRunner.Run(ctx, event.PropertyID, func(
		batchRepo repository.BatchRepository,
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		_ repository.PropertyRepository,
	) error {
		return uc.applyEvent(batchRepo, stockRepo, movRepo, event)
	})
}

// applyEvent despacho común a los caminos incremental y de rebuild (misma tx del caller).
func (uc *ReconcileUseCase) applyEvent(
	batchRepo repository.BatchRepository,
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	event *entity.Movement,
) error {
	if err := uc.evolveAllBatches(batchRepo, stockRepo, movRepo, event.PropertyID, event.Species, event.Date); err != nil {
		return err
	}
	switch event.Type {
	case entity.MovementTypeBirth, entity.MovementTypePurchase:
		return uc.createBatch(batchRepo, stockRepo, event, event.Quantity)
	case entity.MovementTypeAdjustment:
		// Ajuste positivo es alta (nuevo lote); negativo es baja, como en una venta.
		if event.Quantity.IsNegative() {
			return uc.deplete(batchRepo, stockRepo, movRepo, event.PropertyID, event.Species,
				event.Sex, event.Bracket, event.Quantity.Neg().IntPart(), event.Date)
		}
		return uc.createBatch(batchRepo, stockRepo, event, event.Quantity)
	case entity.MovementTypeDeath, entity.MovementTypeSale:
		return uc.deplete(batchRepo, stockRepo, movRepo, event.PropertyID, event.Species,
			event.Sex, event.Bracket, event.Quantity.Abs().IntPart(), event.Date)
	default:
		// Vacunas y demás tipos no afectan existencias.
		return nil
	}
}

// createBatch alta de un lote: valida/normaliza la franja de origen, trunca la
// cantidad a entero no negativo (no-op en cero) y refleja el alta en el
// agregado de existencias de la franja de origen.
func (uc *ReconcileUseCase) createBatch(
	batchRepo repository.BatchRepository,
	stockRepo repository.StockRepository,
	event *entity.Movement,
	quantity decimal.Decimal,
) error {
	bracket, ok := entity.NormalizeBracket(event.Bracket)
	if !ok {
		return domain.ErrInvalidBracket
	}
	qty := quantity.IntPart()
	if qty <= 0 {
		return nil
	}
	now := uc.now()
	batch := &entity.Batch{
		ID:              uuid.New().String(),
		PropertyID:      event.PropertyID,
		Species:         event.Species,
		Sex:             event.Sex,
		OriginBracket:   bracket,
		CurrentBracket:  bracket,
		BaseDate:        event.Date,
		OriginQuantity:  qty,
		CurrentQuantity: qty,
		OriginSource:    event.Type,
		CreatedAt:       now,
	}
	if err := batchRepo.Create(batch); err != nil {
		return err
	}
	return uc.applyStockDelta(stockRepo, event.PropertyID, event.Species, event.Sex, bracket, qty)
}

// applyStockDelta aplica un delta de cabezas al agregado. El piso en cero es
// defensivo: los llamadores validan disponibilidad antes de restar, así que si
// el piso llega a actuar hay una inconsistencia que se deja registrada.
func (uc *ReconcileUseCase) applyStockDelta(
	stockRepo repository.StockRepository,
	propertyID, species, sex, bracket string,
	delta int64,
) error {
	if delta == 0 {
		return nil
	}
	stock, err := stockRepo.GetForUpdate(propertyID, species, sex, bracket)
	if err != nil {
		return err
	}
	next := stock.HeadCount + delta
	if next < 0 {
		uc.log.Warn().
			Str("property_id", propertyID).
			Str("species", species).
			Str("sex", sex).
			Str("bracket", bracket).
			Int64("head_count", stock.HeadCount).
			Int64("delta", delta).
			Msg("existencias negativas; se aplica piso en cero")
		next = 0
	}
	stock.HeadCount = next
	stock.UpdatedAt = uc.now()
	return stockRepo.Upsert(stock)
}
