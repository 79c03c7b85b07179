package repository

import "github.com/jcastano/ganaderia-api/internal/domain/entity"

// StockRepository define el puerto del agregado de existencias por
// propiedad/especie/sexo/franja. Usado dentro de transacciones.
type StockRepository interface {
	// Get devuelve la fila, o una en cero si no existe.
	Get(propertyID, species, sex, bracket string) (*entity.Stock, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(propertyID, species, sex, bracket string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// List filas de una propiedad+especie (incluye las que quedaron en cero).
	List(propertyID, species string) ([]*entity.Stock, error)
	// DeleteByProperty borra las filas de las especies indicadas (rebuild destructivo).
	DeleteByProperty(propertyID string, species []string) error
}
