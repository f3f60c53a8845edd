// Package movement clasifica los movimientos del scraper y arma la vista unificada
// a partir de los documentos vivos y de los envoltorios del histórico.
package movement

import (
	"strings"

	"github.com/grupogen/premios-api/internal/domain/entity"
)

// Classify deriva el tipo de reporte a partir del texto "movimiento".
// Sólo coincidencias exactas (sin distinguir mayúsculas): adjustment/adjust → AJUSTE,
// egress → EGRESO; todo lo demás, incluso vacío, es INGRESO.
func Classify(kind string) entity.MovementType {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "adjustment", "adjust":
		return entity.MovementAjuste
	case "egress":
		return entity.MovementEgreso
	default:
		return entity.MovementIngreso
	}
}

// ResolveLocation elige el depósito que se muestra para el movimiento:
// los egresos salen del origen, ingresos y ajustes impactan en el destino.
func ResolveLocation(t entity.MovementType, origin, destination string) string {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if t == entity.MovementEgreso {
		return firstNonEmpty(origin, destination)
	}
	return firstNonEmpty(destination, origin)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
