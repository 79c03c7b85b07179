package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastano/ganaderia-api/internal/domain"
	"github.com/jcastano/ganaderia-api/internal/domain/entity"
	"github.com/jcastano/ganaderia-api/internal/domain/repository"
)

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implementación de PropertyRepository sobre PostgreSQL.
type PropertyRepo struct {
	q Querier
}

// NewPropertyRepository construye el adaptador de fincas.
func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

// GetByID obtiene una finca por ID.
func (r *PropertyRepo) GetByID(id string) (*entity.Property, error) {
	query := `SELECT id, name, cattle_count, updated_at FROM properties WHERE id = $1`
	var p entity.Property
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.CattleCount, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return &p, nil
}

// ListIDs todas las fincas, para el recalculo masivo.
func (r *PropertyRepo) ListIDs() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id FROM properties ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan property id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UpdateCattleCount actualiza el resumen de cabezas de la finca.
func (r *PropertyRepo) UpdateCattleCount(id string, total int64) error {
	query := `UPDATE properties SET cattle_count = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, total); err != nil {
		return fmt.Errorf("update cattle count: %w", err)
	}
	return nil
}
