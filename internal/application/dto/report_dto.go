package dto

// MovementRowDTO fila del reporte de movimientos (GET /api/movements).
type MovementRowDTO struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"` // dd/MM/yyyy HH:mm:ss (hora AR) o el texto crudo si no se pudo parsear
	PrizeName    string  `json:"prizeName"`
	LocationName string  `json:"locationName"`
	Type         string  `json:"type"` // INGRESO | EGRESO | AJUSTE
	Quantity     float64 `json:"quantity"`
	Entity       string  `json:"entity"`
	RewardRaw    string  `json:"rewardRaw"`
	IsCafeCombo  bool    `json:"isCafeCombo"`
	Movement     string  `json:"movement"` // texto original: "Egress", "Adjustment", ...
	LastUpdated  *string `json:"lastUpdated"`
}

// MovementReport resultado del armado del reporte.
// LastUpdated se calcula sobre todos los movimientos, sin aplicar el filtro de fechas.
type MovementReport struct {
	Rows        []MovementRowDTO
	LastUpdated *string
}

// MovementReportQuery parámetros crudos de GET /api/movements.
type MovementReportQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Period    string `query:"period"` // YYYY-MM, restringe el histórico a ese período
}
