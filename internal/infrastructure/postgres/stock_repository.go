package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastano/ganaderia-api/internal/domain/entity"
	"github.com/jcastano/ganaderia-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador del agregado de existencias.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la fila del agregado; si no existe devuelve una en cero.
func (r *StockRepo) Get(propertyID, species, sex, bracket string) (*entity.Stock, error) {
	return r.get(propertyID, species, sex, bracket, false)
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(propertyID, species, sex, bracket string) (*entity.Stock, error) {
	return r.get(propertyID, species, sex, bracket, true)
}

func (r *StockRepo) get(propertyID, species, sex, bracket string, forUpdate bool) (*entity.Stock, error) {
	query := `
		SELECT property_id, species, sex, bracket, head_count, updated_at
		FROM herd_stock
		WHERE property_id = $1 AND species = $2 AND sex = $3 AND bracket = $4`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, propertyID, species, sex, bracket).Scan(
		&s.PropertyID, &s.Species, &s.Sex, &s.Bracket, &s.HeadCount, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{PropertyID: propertyID, Species: species, Sex: sex, Bracket: bracket}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la fila del agregado.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO herd_stock (property_id, species, sex, bracket, head_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (property_id, species, sex, bracket)
		DO UPDATE SET head_count = EXCLUDED.head_count, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.PropertyID, stock.Species, stock.Sex, stock.Bracket, stock.HeadCount)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// List filas del agregado de una propiedad+especie en orden estable.
func (r *StockRepo) List(propertyID, species string) ([]*entity.Stock, error) {
	query := `
		SELECT property_id, species, sex, bracket, head_count, updated_at
		FROM herd_stock
		WHERE property_id = $1 AND species = $2
		ORDER BY sex ASC, bracket ASC`
	rows, err := r.q.Query(context.Background(), query, propertyID, species)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.PropertyID, &s.Species, &s.Sex, &s.Bracket, &s.HeadCount, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// DeleteByProperty borra las filas de las especies indicadas (rebuild destructivo).
func (r *StockRepo) DeleteByProperty(propertyID string, species []string) error {
	query := `DELETE FROM herd_stock WHERE property_id = $1 AND species = ANY($2)`
	if _, err := r.q.Exec(context.Background(), query, propertyID, species); err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}
