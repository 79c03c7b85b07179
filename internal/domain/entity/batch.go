package entity

import "time"

// Especies con seguimiento de hato. El resto de especies de la finca
// (aves, porcinos de engorde, etc.) no pasan por el motor de reconciliación.
const (
	SpeciesBovino   = "bovino"
	SpeciesBufalino = "bufalino"
)

// Sexos registrados por lote.
const (
	SexMacho  = "macho"
	SexHembra = "hembra"
)

// Batch es un lote (cohorte): animales de una misma propiedad, especie, sexo y
// franja de origen que comparten fecha base. Se envejece y se consume como unidad.
//
// Invariantes:
//   - CurrentQuantity >= 0; un lote en cero queda retirado pero no se borra.
//   - CurrentBracket es siempre la franja implicada por OriginBracket + BaseDate
//     a la última fecha de referencia reconciliada; nunca va adelantada.
//   - BaseDate es inmutable tras la creación (nacimiento, compra o declaración).
type Batch struct {
	ID              string
	PropertyID      string
	Species         string
	Sex             string
	OriginBracket   string
	CurrentBracket  string
	BaseDate        time.Time
	OriginQuantity  int64
	CurrentQuantity int64
	OriginSource    string // tipo de movimiento que originó el lote
	CreatedSeq      int64  // secuencia de creación, desempate del orden FIFO
	CreatedAt       time.Time
}
