package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de hato.
const (
	MovementTypeBirth      = "birth"      // nacimiento
	MovementTypeDeath      = "death"      // muerte
	MovementTypeSale       = "sale"       // venta
	MovementTypePurchase   = "purchase"   // compra
	MovementTypeAdjustment = "adjustment" // ajuste (declaración inicial, corrección)
	MovementTypeVaccine    = "vaccine"    // vacunación (no afecta existencias)
)

// EvolutionMarkerPrefix centinela en la descripción de los asientos de ajuste
// generados por el motor al evolucionar franjas. Son pista de auditoría: el
// replay los omite para no aplicar dos veces una transición que el motor
// recalcula por sí mismo.
const EvolutionMarkerPrefix = "[evolucion]"

// Movement asiento del libro de movimientos (append-only). El esquema lo posee
// el productor de eventos aguas arriba; este motor lo consume y solo escribe
// sus propios marcadores de evolución.
type Movement struct {
	ID          string
	PropertyID  string
	Species     string
	Sex         string
	Bracket     string
	Type        string
	Quantity    decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

// IsEvolutionMarker indica si el asiento fue generado por el motor de evolución.
func (m *Movement) IsEvolutionMarker() bool {
	return strings.HasPrefix(m.Description, EvolutionMarkerPrefix)
}

// EvolutionMarkerDescription arma la descripción de un marcador agrupado:
// una entrada por combinación (sexo, franja origen, franja destino).
func EvolutionMarkerDescription(quantity int64, fromBracket, toBracket string) string {
	return fmt.Sprintf("%s %d de %s a %s", EvolutionMarkerPrefix, quantity, fromBracket, toBracket)
}
