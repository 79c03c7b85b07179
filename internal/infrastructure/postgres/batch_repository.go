package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcastano/ganaderia-api/internal/domain/entity"
	"github.com/jcastano/ganaderia-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, property_id, species, sex, origin_bracket, current_bracket,
	base_date, origin_quantity, current_quantity, origin_source, created_seq, created_at`

// Create persiste un lote nuevo; created_seq lo asigna la secuencia de la tabla.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	if batch.ID == "" {
		batch.ID = uuid.New().String()
	}
	query := `
		INSERT INTO herd_batches (id, property_id, species, sex, origin_bracket, current_bracket,
			base_date, origin_quantity, current_quantity, origin_source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_seq`
	err := r.q.QueryRow(context.Background(), query,
		batch.ID, batch.PropertyID, batch.Species, batch.Sex,
		batch.OriginBracket, batch.CurrentBracket, batch.BaseDate,
		batch.OriginQuantity, batch.CurrentQuantity, batch.OriginSource, batch.CreatedAt,
	).Scan(&batch.CreatedSeq)
	if err != nil {
		return fmt.Errorf("create batch: %w", err)
	}
	return nil
}

// ListLive lotes con existencias de la propiedad+especie en orden (base_date, created_seq).
func (r *BatchRepo) ListLive(propertyID, species string) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM herd_batches
		WHERE property_id = $1 AND species = $2 AND current_quantity > 0
		ORDER BY base_date ASC, created_seq ASC`
	return r.list(query, propertyID, species)
}

// ListLiveByBracket lotes vivos de un sexo y franja vigente, mismo orden FIFO.
func (r *BatchRepo) ListLiveByBracket(propertyID, species, sex, bracket string) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM herd_batches
		WHERE property_id = $1 AND species = $2 AND sex = $3 AND current_bracket = $4
			AND current_quantity > 0
		ORDER BY base_date ASC, created_seq ASC`
	return r.list(query, propertyID, species, sex, bracket)
}

func (r *BatchRepo) list(query string, args ...any) ([]*entity.Batch, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.PropertyID, &b.Species, &b.Sex,
			&b.OriginBracket, &b.CurrentBracket, &b.BaseDate,
			&b.OriginQuantity, &b.CurrentQuantity, &b.OriginSource,
			&b.CreatedSeq, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// UpdateBracket persiste la franja vigente tras una evolución.
func (r *BatchRepo) UpdateBracket(id, bracket string) error {
	query := `UPDATE herd_batches SET current_bracket = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, bracket); err != nil {
		return fmt.Errorf("update batch bracket: %w", err)
	}
	return nil
}

// UpdateQuantity persiste la cantidad restante tras una baja.
func (r *BatchRepo) UpdateQuantity(id string, quantity int64) error {
	query := `UPDATE herd_batches SET current_quantity = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, quantity); err != nil {
		return fmt.Errorf("update batch quantity: %w", err)
	}
	return nil
}

// DeleteByProperty borra los lotes de las especies indicadas (rebuild destructivo).
func (r *BatchRepo) DeleteByProperty(propertyID string, species []string) error {
	query := `DELETE FROM herd_batches WHERE property_id = $1 AND species = ANY($2)`
	if _, err := r.q.Exec(context.Background(), query, propertyID, species); err != nil {
		return fmt.Errorf("delete batches: %w", err)
	}
	return nil
}
