package dto

// PrizeDTO premio del catálogo (GET /api/prizes).
type PrizeDTO struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Category             string  `json:"category"`
	DefaultPurchasePrice float64 `json:"defaultPurchasePrice"` // costo unitario
	Points               float64 `json:"points"`
	Active               bool    `json:"active"`
	ScrapedAt            string  `json:"scrapedAt"` // hora AR, "" si no hay
}
