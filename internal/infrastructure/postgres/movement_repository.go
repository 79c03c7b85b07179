package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcastano/ganaderia-api/internal/domain/entity"
	"github.com/jcastano/ganaderia-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL del puerto del libro de
// movimientos (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un asiento (el motor solo escribe marcadores de evolución).
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO herd_movements (id, property_id, species, sex, bracket, type, quantity, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.PropertyID, movement.Species, movement.Sex,
		movement.Bracket, movement.Type, movement.Quantity, movement.Date,
		movement.Description, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByProperty movimientos de las especies indicadas en orden cronológico
// ascendente; created_at desempata asientos del mismo día.
func (r *MovementRepo) ListByProperty(propertyID string, species []string) ([]*entity.Movement, error) {
	query := `
		SELECT id, property_id, species, sex, bracket, type, quantity, date, description, created_at
		FROM herd_movements
		WHERE property_id = $1 AND species = ANY($2)
		ORDER BY date ASC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, propertyID, species)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.PropertyID, &m.Species, &m.Sex, &m.Bracket,
			&m.Type, &m.Quantity, &m.Date, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
