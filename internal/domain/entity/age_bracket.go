package entity

import "strings"

// Etiquetas canónicas de las franjas etarias del hato.
const (
	Bracket0a4    = "0-4m"
	Bracket5a12   = "5-12m"
	Bracket13a24  = "13-24m"
	Bracket25a36  = "25-36m"
	Bracket36oMas = "36+m"
)

// AgeBracket define una franja etaria. DurationMonths es cuántos meses completos
// permanece un lote en la franja antes de pasar a la siguiente; 0 marca la
// franja terminal (sin transición posterior).
type AgeBracket struct {
	Label          string
	MinMonths      int
	DurationMonths int
}

// AgeBrackets conjunto canónico, totalmente ordenado por edad.
var AgeBrackets = []AgeBracket{
	{Label: Bracket0a4, MinMonths: 0, DurationMonths: 4},
	{Label: Bracket5a12, MinMonths: 5, DurationMonths: 8},
	{Label: Bracket13a24, MinMonths: 13, DurationMonths: 12},
	{Label: Bracket25a36, MinMonths: 25, DurationMonths: 12},
	{Label: Bracket36oMas, MinMonths: 36, DurationMonths: 0},
}

// NormalizeBracket lleva una etiqueta posiblemente heredada al conjunto canónico.
// Acepta mayúsculas/espacios y rangos sin la unidad final ("0-4", "36+" -> "0-4m", "36+m").
// Devuelve false si la etiqueta no corresponde a ninguna franja canónica.
func NormalizeBracket(label string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return "", false
	}
	if !strings.HasSuffix(s, "m") {
		s += "m"
	}
	if _, ok := BracketIndex(s); ok {
		return s, true
	}
	return "", false
}

// BracketIndex posición de una etiqueta canónica dentro de AgeBrackets.
func BracketIndex(label string) (int, bool) {
	for i, b := range AgeBrackets {
		if b.Label == label {
			return i, true
		}
	}
	return 0, false
}
