package entity

import "time"

// Stock fila materializada del agregado de existencias: cabezas actuales por
// propiedad, especie, sexo y franja etaria. Derivada exclusivamente de los
// lotes; el invariante es HeadCount == suma de CurrentQuantity de los lotes
// cuyo CurrentBracket coincide.
type Stock struct {
	PropertyID string
	Species    string
	Sex        string
	Bracket    string
	HeadCount  int64
	UpdatedAt  time.Time
}
