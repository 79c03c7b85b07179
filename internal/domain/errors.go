package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidBracket    = errors.New("franja etaria no reconocida")
	ErrInsufficientStock = errors.New("existencias insuficientes")
	ErrTxConflict        = errors.New("conflicto de serialización en la transacción")
)

// InsufficientStockError detalla el rechazo de una baja (muerte/venta) por falta
// de existencias en la franja solicitada. El movimiento que la originó no debe
// persistirse aguas arriba.
type InsufficientStockError struct {
	Bracket   string
	Sex       string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("existencias insuficientes en %s (%s): disponibles %d, solicitadas %d",
		e.Bracket, e.Sex, e.Available, e.Requested)
}

// Is permite detectar el caso con errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
