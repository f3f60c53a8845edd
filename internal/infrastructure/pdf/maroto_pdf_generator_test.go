package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupogen/premios-api/internal/application/dto"
	"github.com/grupogen/premios-api/internal/domain/entity"
)

func TestFormatQuantity(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"999":      "999",
		"25000":    "25.000",
		"1234567":  "1.234.567",
		"-1234.5":  "-1.234,5",
		"0.25":     "0,25",
		"-100":     "-100",
		"100000.1": "100.000,1",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatQuantity(decimal.RequireFromString(in)), in)
	}
}

func TestTotalsByType_AgrupaPorTipo(t *testing.T) {
	rows := []dto.MovementRowDTO{
		{Type: "INGRESO", Quantity: 10},
		{Type: "EGRESO", Quantity: 0.1},
		{Type: "EGRESO", Quantity: 0.2},
		{Type: "AJUSTE", Quantity: -3},
	}
	totals := TotalsByType(rows)
	assert.True(t, totals[entity.MovementIngreso].Equal(decimal.NewFromInt(10)))
	assert.True(t, totals[entity.MovementEgreso].Equal(decimal.RequireFromString("0.3")))
	assert.True(t, totals[entity.MovementAjuste].Equal(decimal.NewFromInt(-3)))
}

func TestTotalsByType_SinFilas(t *testing.T) {
	totals := TotalsByType(nil)
	require.Len(t, totals, 3)
	for _, v := range totals {
		assert.True(t, v.IsZero())
	}
}

func TestGenerateMovementsPDF(t *testing.T) {
	last := "20/01/2025 09:00:00"
	rep := &dto.MovementReport{
		LastUpdated: &last,
		Rows: []dto.MovementRowDTO{
			{ID: "m1", Date: "15/01/2025 07:00:00", PrizeName: "Café", LocationName: entity.DepositBettica, Type: "EGRESO", Quantity: 1, Entity: "Tobago"},
			{ID: "m2", Date: "16/01/2025 07:00:00", PrizeName: "", LocationName: "", Type: "INGRESO", Quantity: 1500},
		},
	}

	out, err := NewMovementsPDFGenerator("Premios").GenerateMovementsPDF(context.Background(), rep, "Movimientos")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateMovementsPDF_ReporteVacio(t *testing.T) {
	out, err := NewMovementsPDFGenerator("Premios").GenerateMovementsPDF(context.Background(), &dto.MovementReport{}, "Movimientos")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
