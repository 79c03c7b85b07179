package repository

import "github.com/jcastano/ganaderia-api/internal/domain/entity"

// BatchRepository define el puerto de persistencia de lotes (cohortes).
// El orquestador de reconciliación es el único que escribe por aquí.
type BatchRepository interface {
	Create(batch *entity.Batch) error
	// ListLive lotes con existencias (> 0) de una propiedad+especie,
	// ordenados por (base_date, created_seq) ascendente.
	ListLive(propertyID, species string) ([]*entity.Batch, error)
	// ListLiveByBracket igual que ListLive pero filtrado por sexo y franja
	// vigente; es el orden FIFO que consume el asignador de bajas.
	ListLiveByBracket(propertyID, species, sex, bracket string) ([]*entity.Batch, error)
	UpdateBracket(id, bracket string) error
	UpdateQuantity(id string, quantity int64) error
	// DeleteByProperty borra los lotes de las especies indicadas (rebuild destructivo).
	DeleteByProperty(propertyID string, species []string) error
}
