package entity

// PrizeItem ítem del catálogo de premios (colección agritems).
// Los campos numéricos llegan como número o texto según la corrida del scraper.
type PrizeItem struct {
	ID              string
	Description     string // vacío = sin descripción
	Category        string
	StockGrupoGen   any
	StockMonteverde any
	StockBettica    any
	StockTobago1    any
	Cost            any
	Points          any
	Status          any
	ScrapedAt       any
}
