package entity

import "time"

// Property finca/propiedad. Solo los campos que el motor de reconciliación
// toca: el resumen de cabezas se recalcula al final de cada rebuild.
type Property struct {
	ID          string
	Name        string
	CattleCount int64
	UpdatedAt   time.Time
}
