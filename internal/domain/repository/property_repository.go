package repository

import "github.com/jcastano/ganaderia-api/internal/domain/entity"

// PropertyRepository define el puerto sobre la finca, limitado a lo que el
// motor necesita: el resumen de cabezas y el listado para el recalculo masivo.
type PropertyRepository interface {
	GetByID(id string) (*entity.Property, error)
	ListIDs() ([]string, error)
	UpdateCattleCount(id string, total int64) error
}
