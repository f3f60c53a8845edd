package movement

import (
	"fmt"
	"strings"

	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/normalize"
)

// PayloadKey campo del envoltorio histórico que trae los movimientos.
const PayloadKey = "data"

// shapeMatcher reconoce una de las formas en que el histórico guarda la lista de movimientos.
type shapeMatcher struct {
	name  string
	match func(payload any) []any
}

// historyShapes en orden de prioridad: gana el primero que encuentra una lista no vacía.
var historyShapes = []shapeMatcher{
	{name: "array", match: asList},
	{name: "items", match: listField("items")},
	{name: "rows", match: listField("rows")},
	{name: "movements", match: listField("movements")},
}

// MatchShape devuelve el nombre de la forma reconocida y sus elementos.
// Sin coincidencia devuelve ("", nil).
func MatchShape(payload any) (string, []any) {
	for _, s := range historyShapes {
		if items := s.match(payload); len(items) > 0 {
			return s.name, items
		}
	}
	return "", nil
}

// FromDocument mapea un documento plano de la colección viva.
func FromDocument(doc entity.Document, tier entity.SourceTier) entity.MovementRecord {
	return entity.MovementRecord{
		ID:                  documentID(doc),
		OccurredAt:          doc["fecha"],
		MovementKind:        normalize.Text(doc["movimiento"]),
		OriginLocation:      normalize.Text(doc["depositoOrigen"]),
		DestinationLocation: normalize.Text(doc["depositoDestino"]),
		RewardDescription:   normalize.Text(doc["recompensa"]),
		Quantity:            doc["cantidad"],
		Entity:              normalize.Text(doc["entidad"]),
		ScrapedAt:           doc["scrapedAt"],
		Tier:                tier,
	}
}

// ExtractHistorical desarma un envoltorio del histórico. Los elementos sin id reciben
// "history-<idEnvoltorio>-<índice>" y heredan la marca de scraping del envoltorio si no tienen una.
// Un payload que no coincide con ninguna forma no aporta movimientos.
func ExtractHistorical(wrapper entity.Document) []entity.MovementRecord {
	_, items := MatchShape(wrapper[PayloadKey])
	if len(items) == 0 {
		return nil
	}
	wrapperID := documentID(wrapper)
	out := make([]entity.MovementRecord, 0, len(items))
	for i, item := range items {
		sub, ok := asMap(item)
		if !ok {
			continue
		}
		rec := FromDocument(sub, entity.TierHistorical)
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("history-%s-%d", wrapperID, i)
		}
		rec.ScrapedAt = firstPresent(sub["scrapedAt"], wrapper["scrapedAt"], wrapper["seenAt"], wrapper["expiresAt"])
		out = append(out, rec)
	}
	return out
}

func documentID(doc entity.Document) string {
	if id := normalize.Text(doc["_id"]); id != "" {
		return id
	}
	return normalize.Text(doc["id"])
}

func firstPresent(values ...any) any {
	for _, v := range values {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

func listField(key string) func(any) []any {
	return func(payload any) []any {
		m, ok := asMap(payload)
		if !ok {
			return nil
		}
		return asList(m[key])
	}
}

func asMap(v any) (entity.Document, bool) {
	switch m := v.(type) {
	case entity.Document:
		return m, m != nil
	case map[string]any:
		return entity.Document(m), m != nil
	}
	return nil, false
}

func asList(v any) []any {
	switch l := v.(type) {
	case []any:
		return l
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out
	case []entity.Document:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out
	}
	return nil
}
