package entity

// Depósitos físicos conocidos.
const (
	DepositGrupoGen   = "DEPOSITO GRUPO GEN"
	DepositMonteverde = "DEPOSITO MONTEVERDE"
	DepositBettica    = "DEPOSITO BETTICA"
	DepositTobago1    = "DEPOSITO TOBAGO 1"

	// Placeholder marcador para nombres vacíos o ausentes.
	Placeholder = "—"
)
