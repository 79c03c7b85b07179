package herd

import (
	"time"

	"github.com/jcastano/ganaderia-api/internal/domain"
	"github.com/jcastano/ganaderia-api/internal/domain/entity"
)

// ResolveBracket resuelve la franja etaria vigente a la fecha de referencia
// (servicio de dominio puro: determinista, sin efectos; se usa tanto para la
// evolución en vivo como para la vista previa en UI).
//
// Camina franja por franja restando la duración de cada una de los meses
// transcurridos desde la fecha base, hasta que el resto no alcanza para otra
// transición o se llega a la franja terminal.
func ResolveBracket(originBracket string, baseDate, referenceDate time.Time) (string, error) {
	label, ok := entity.NormalizeBracket(originBracket)
	if !ok {
		return "", domain.ErrInvalidBracket
	}
	elapsed := MonthsBetween(baseDate, referenceDate)
	if elapsed == 0 {
		return label, nil
	}
	idx, _ := entity.BracketIndex(label)
	remaining := elapsed
	for idx < len(entity.AgeBrackets)-1 {
		d := entity.AgeBrackets[idx].DurationMonths
		if remaining < d {
			break
		}
		remaining -= d
		idx++
	}
	return entity.AgeBrackets[idx].Label, nil
}

// MonthsBetween meses completos de calendario entre base y referencia:
// diferencia de meses, menos uno si el día del mes aún no se cumple, con piso
// en cero (referencias anteriores a la base no envejecen).
func MonthsBetween(base, reference time.Time) int {
	months := (reference.Year()-base.Year())*12 + int(reference.Month()) - int(base.Month())
	if reference.Day() < base.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
