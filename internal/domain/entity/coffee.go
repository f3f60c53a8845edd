package entity

// CoffeeEgress salida de café hacia una entidad.
type CoffeeEgress struct {
	Entidad  any
	Cantidad any
}

// CoffeeMovementDoc documento de movimientos de café (vivo o histórico).
type CoffeeMovementDoc struct {
	TipoCafe    string
	Egresos     []CoffeeEgress
	ScrapedAt   any
	PeriodMonth string // sólo en el histórico, "YYYY-MM"
}
