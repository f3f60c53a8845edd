package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/movement"
)

func TestClassify(t *testing.T) {
	cases := map[string]entity.MovementType{
		"Adjust":      entity.MovementAjuste,
		"adjustment":  entity.MovementAjuste,
		" ADJUSTMENT": entity.MovementAjuste,
		"EGRESS":      entity.MovementEgreso,
		"egress":      entity.MovementEgreso,
		"Egress ":     entity.MovementEgreso,
		"Ingress":     entity.MovementIngreso,
		"":            entity.MovementIngreso,
		"egresses":    entity.MovementIngreso, // sólo coincidencia exacta
		"readjust":    entity.MovementIngreso,
	}
	for in, want := range cases {
		assert.Equal(t, want, movement.Classify(in), "%q", in)
	}
}

func TestResolveLocation(t *testing.T) {
	assert.Equal(t, "ORIGEN", movement.ResolveLocation(entity.MovementEgreso, "ORIGEN", "DESTINO"))
	assert.Equal(t, "DESTINO", movement.ResolveLocation(entity.MovementEgreso, "", "DESTINO"),
		"egreso sin origen cae al destino")
	assert.Equal(t, "DESTINO", movement.ResolveLocation(entity.MovementIngreso, "ORIGEN", "DESTINO"))
	assert.Equal(t, "DESTINO", movement.ResolveLocation(entity.MovementAjuste, "ORIGEN", " DESTINO "))
	assert.Equal(t, "ORIGEN", movement.ResolveLocation(entity.MovementIngreso, "ORIGEN", "  "),
		"ingreso sin destino cae al origen")
	assert.Equal(t, "", movement.ResolveLocation(entity.MovementIngreso, "", ""))
}
