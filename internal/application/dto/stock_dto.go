package dto

// StockRowDTO existencia de un premio en un depósito (GET /api/stocks).
type StockRowDTO struct {
	ID           string  `json:"id"` // "<itemId>-<depósito>"
	PrizeName    string  `json:"prizeName"`
	LocationName string  `json:"locationName"`
	Quantity     float64 `json:"quantity"`
	MinQuantity  float64 `json:"minQuantity"`
	LastUpdated  *string `json:"lastUpdated"`
}

// DepositTotalDTO total de cafés egresados por depósito (GET /api/cafes).
type DepositTotalDTO struct {
	ID            string  `json:"id"` // monteverde | bettica | tobago1
	LocationName  string  `json:"locationName"`
	TotalQuantity float64 `json:"totalQuantity"`
}
