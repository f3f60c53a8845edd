package movement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/movement"
)

func item(id string) map[string]any {
	m := map[string]any{"movimiento": "Egress", "recompensa": "(1062) Café", "cantidad": "1"}
	if id != "" {
		m["_id"] = id
	}
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// MatchShape
// ──────────────────────────────────────────────────────────────────────────────

func TestMatchShape_FormasReconocidas(t *testing.T) {
	cases := map[string]any{
		"array":     []any{item("a")},
		"items":     map[string]any{"items": []any{item("a")}},
		"rows":      map[string]any{"rows": []any{item("a")}},
		"movements": map[string]any{"movements": []any{item("a")}},
	}
	for want, payload := range cases {
		name, items := movement.MatchShape(payload)
		assert.Equal(t, want, name)
		assert.Len(t, items, 1)
	}
}

func TestMatchShape_GanaLaPrimeraNoVacia(t *testing.T) {
	payload := map[string]any{
		"items":     []any{},
		"rows":      []any{item("r1"), item("r2")},
		"movements": []any{item("m1")},
	}
	name, items := movement.MatchShape(payload)
	assert.Equal(t, "rows", name, "items vacío no cuenta; rows va antes que movements")
	assert.Len(t, items, 2)
}

func TestMatchShape_SinCoincidencia(t *testing.T) {
	for _, payload := range []any{nil, "texto", 12, map[string]any{"otra": []any{1}}, []any{}} {
		name, items := movement.MatchShape(payload)
		assert.Empty(t, name)
		assert.Nil(t, items)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ExtractHistorical
// ──────────────────────────────────────────────────────────────────────────────

func TestExtractHistorical_IDsSinteticosDistintos(t *testing.T) {
	wrapper := entity.Document{
		"_id":  "w1",
		"data": map[string]any{"items": []any{item(""), item("")}},
	}
	recs := movement.ExtractHistorical(wrapper)
	require.Len(t, recs, 2)
	assert.Equal(t, "history-w1-0", recs[0].ID)
	assert.Equal(t, "history-w1-1", recs[1].ID)
	for _, r := range recs {
		assert.Equal(t, entity.TierHistorical, r.Tier)
	}
}

func TestExtractHistorical_ConservaIDPropio(t *testing.T) {
	wrapper := entity.Document{"_id": "w1", "data": []any{item("propio"), map[string]any{"id": "alt"}}}
	recs := movement.ExtractHistorical(wrapper)
	require.Len(t, recs, 2)
	assert.Equal(t, "propio", recs[0].ID)
	assert.Equal(t, "alt", recs[1].ID)
}

func TestExtractHistorical_HeredaScrapedAt(t *testing.T) {
	scraped := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	seen := time.Date(2025, 1, 11, 12, 0, 0, 0, time.UTC)

	own := item("")
	own["scrapedAt"] = "2025-01-01T00:00:00Z"

	recs := movement.ExtractHistorical(entity.Document{
		"_id":       "w1",
		"scrapedAt": scraped,
		"seenAt":    seen,
		"data":      []any{own, item("")},
	})
	require.Len(t, recs, 2)
	assert.Equal(t, "2025-01-01T00:00:00Z", recs[0].ScrapedAt, "el propio tiene prioridad")
	assert.Equal(t, scraped, recs[1].ScrapedAt, "hereda el scrapedAt del envoltorio")

	recs = movement.ExtractHistorical(entity.Document{
		"_id":       "w2",
		"expiresAt": seen,
		"data":      []any{item("")},
	})
	require.Len(t, recs, 1)
	assert.Equal(t, seen, recs[0].ScrapedAt, "sin scrapedAt ni seenAt usa expiresAt")
}

func TestExtractHistorical_IgnoraElementosNoObjeto(t *testing.T) {
	recs := movement.ExtractHistorical(entity.Document{
		"_id":  "w1",
		"data": []any{"basura", 3, item("")},
	})
	require.Len(t, recs, 1)
	assert.Equal(t, "history-w1-2", recs[0].ID, "el índice es la posición dentro de la lista original")
}

func TestExtractHistorical_PayloadDesconocido(t *testing.T) {
	assert.Empty(t, movement.ExtractHistorical(entity.Document{"_id": "w1", "data": map[string]any{"x": 1}}))
	assert.Empty(t, movement.ExtractHistorical(entity.Document{"_id": "w1"}))
}

func TestFromDocument_MapeaCampos(t *testing.T) {
	rec := movement.FromDocument(entity.Document{
		"_id":             "abc",
		"fecha":           "15/01/2025 10:00:00",
		"movimiento":      " Egress ",
		"depositoOrigen":  "DEPOSITO BETTICA",
		"depositoDestino": 7,
		"recompensa":      "(1062) Café",
		"cantidad":        "2",
		"entidad":         "Bettica",
		"scrapedAt":       "2025-01-15T13:00:00Z",
	}, entity.TierCurrent)

	assert.Equal(t, "abc", rec.ID)
	assert.Equal(t, "15/01/2025 10:00:00", rec.OccurredAt)
	assert.Equal(t, "Egress", rec.MovementKind)
	assert.Equal(t, "DEPOSITO BETTICA", rec.OriginLocation)
	assert.Equal(t, "7", rec.DestinationLocation)
	assert.Equal(t, "(1062) Café", rec.RewardDescription)
	assert.Equal(t, "2", rec.Quantity)
	assert.Equal(t, "Bettica", rec.Entity)
	assert.Equal(t, entity.TierCurrent, rec.Tier)
}
