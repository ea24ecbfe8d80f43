package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity é o nível de impacto de uma mudança. A ordem é dada pelo
// valor inteiro, então comparações usam <, >= direto (nunca ordem
// lexicográfica das strings).
type Severity int

const (
	SevNone Severity = iota
	SevLow
	SevMedium
	SevHigh
	SevCritical
)

var sevNames = [...]string{"none", "low", "medium", "high", "critical"}

// String retorna o nome em minúsculas ("low", "critical", ...).
func (s Severity) String() string {
	if s < SevNone || s > SevCritical {
		return "unknown"
	}
	return sevNames[s]
}

// Label retorna o nome em maiúsculas para exibição ("HIGH").
func (s Severity) Label() string {
	return strings.ToUpper(s.String())
}

// Meets informa se s atinge ou excede o limiar dado.
func (s Severity) Meets(threshold Severity) bool {
	return s >= threshold
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseSeverity normaliza uma string de severidade. Entrada desconhecida
// é erro: regra mal formada deve falhar no load, não no meio da análise.
func ParseSeverity(raw string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none":
		return SevNone, nil
	case "low":
		return SevLow, nil
	case "medium":
		return SevMedium, nil
	case "high":
		return SevHigh, nil
	case "critical":
		return SevCritical, nil
	default:
		return SevNone, fmt.Errorf("severidade inválida: %q", raw)
	}
}

// MaxSeverity retorna a maior severidade entre a e b.
func MaxSeverity(a, b Severity) Severity {
	if b > a {
		return b
	}
	return a
}
