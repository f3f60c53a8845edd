package entity

// Document documento crudo de la base de extracción, ya convertido a tipos Go
// (map[string]any, []any, time.Time, string, números). Ningún campo es confiable.
type Document map[string]any

// SourceTier origen de un movimiento dentro de la vista unificada.
type SourceTier string

const (
	TierCurrent    SourceTier = "current"    // colección del período en curso
	TierHistorical SourceTier = "historical" // archivo histórico (documento envoltorio)
)

// MovementType tipo de movimiento expuesto en el reporte.
type MovementType string

const (
	MovementIngreso MovementType = "INGRESO"
	MovementEgreso  MovementType = "EGRESO"
	MovementAjuste  MovementType = "AJUSTE"
)

// MovementRecord movimiento de premios/puntos tal como lo dejó el scraper.
// OccurredAt, Quantity y ScrapedAt conservan el valor crudo: se normalizan al armar el reporte.
type MovementRecord struct {
	ID                  string
	OccurredAt          any    // "fecha"
	MovementKind        string // "movimiento": Egress, Adjustment, ...
	OriginLocation      string // "depositoOrigen"
	DestinationLocation string // "depositoDestino"
	RewardDescription   string // "recompensa", puede traer "(1062) ..."
	Quantity            any    // "cantidad"
	Entity              string // "entidad"
	ScrapedAt           any
	Tier                SourceTier
}
