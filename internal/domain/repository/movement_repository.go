package repository

import "github.com/jcastano/ganaderia-api/internal/domain/entity"

// MovementRepository define el puerto sobre el libro de movimientos.
// El libro es append-only y lo poseen los productores de eventos; este motor
// solo lo lee, salvo para escribir sus marcadores de evolución.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListByProperty movimientos de una propiedad para las especies indicadas,
	// ordenados por fecha ascendente (desempate por created_at).
	ListByProperty(propertyID string, species []string) ([]*entity.Movement, error)
}
