package herd

import (
	"context"

	"github.com/jcastano/ganaderia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cada unidad de reconciliación es todo-o-nada y
// las reconciliaciones concurrentes de una misma propiedad se serializan
// (advisory lock por propertyID); propiedades distintas corren en paralelo.
type TxRunner interface {
	Run(ctx context.Context, propertyID string, fn func(
		batchRepo repository.BatchRepository,
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		propertyRepo repository.PropertyRepository,
	) error) error
}
