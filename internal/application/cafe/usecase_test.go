package cafe_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupogen/premios-api/internal/application/cafe"
	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/domain/entity"
)

type fakeCoffeeSource struct {
	current      []entity.CoffeeMovementDoc
	history      []entity.CoffeeMovementDoc
	err          error
	currentCalls int
	historyKeys  []string
}

func (f *fakeCoffeeSource) FetchCurrentCoffeeMovements(context.Context) ([]entity.CoffeeMovementDoc, error) {
	f.currentCalls++
	return f.current, f.err
}

func (f *fakeCoffeeSource) FetchHistoricalCoffeeMovements(_ context.Context, periodKey string) ([]entity.CoffeeMovementDoc, error) {
	f.historyKeys = append(f.historyKeys, periodKey)
	return f.history, f.err
}

// 15/01/2025 12:00 UTC → mes en curso "2025-01" en hora AR.
func fixedClock() time.Time { return time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC) }

func newUC(src *fakeCoffeeSource) *cafe.DepositTotalsUseCase {
	return cafe.NewDepositTotalsUseCase(src).WithClock(fixedClock)
}

func totals(t *testing.T, uc *cafe.DepositTotalsUseCase, period string) map[string]float64 {
	t.Helper()
	rows, err := uc.GetDepositTotals(context.Background(), period)
	require.NoError(t, err)
	require.Len(t, rows, 3, "siempre tres depósitos")
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.LocationName] = r.TotalQuantity
	}
	return out
}

func TestGetDepositTotals_IgnoraCantidadesNoNumericas(t *testing.T) {
	src := &fakeCoffeeSource{current: []entity.CoffeeMovementDoc{{
		TipoCafe: "Café chico",
		Egresos: []entity.CoffeeEgress{
			{Entidad: "Monteverde Centro", Cantidad: "5"},
			{Entidad: "x", Cantidad: "abc"},
		},
	}}}
	got := totals(t, newUC(src), "")

	assert.Equal(t, 5.0, got[entity.DepositMonteverde])
	assert.Equal(t, 0.0, got[entity.DepositBettica])
	assert.Equal(t, 0.0, got[entity.DepositTobago1])
}

func TestGetDepositTotals_SumaPorDeposito(t *testing.T) {
	src := &fakeCoffeeSource{current: []entity.CoffeeMovementDoc{
		{Egresos: []entity.CoffeeEgress{
			{Entidad: "BETTICA", Cantidad: 0.1},
			{Entidad: "Bettica Sur", Cantidad: 0.2},
			{Entidad: "Tobago", Cantidad: nil}, // vale 0
		}},
		{Egresos: []entity.CoffeeEgress{
			{Entidad: "tobago 1", Cantidad: "3"},
			{Entidad: "Sucursal Norte", Cantidad: 100}, // no es uno de los tres depósitos
		}},
	}}
	got := totals(t, newUC(src), "2025-01")

	assert.Equal(t, 0.3, got[entity.DepositBettica], "la suma decimal no acumula error de punto flotante")
	assert.Equal(t, 3.0, got[entity.DepositTobago1])
	assert.Equal(t, 0.0, got[entity.DepositMonteverde])
}

func TestGetDepositTotals_OrdenEIDs(t *testing.T) {
	rows, err := newUC(&fakeCoffeeSource{}).GetDepositTotals(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "monteverde", rows[0].ID)
	assert.Equal(t, "bettica", rows[1].ID)
	assert.Equal(t, "tobago1", rows[2].ID)
}

func TestGetDepositTotals_MesActualUsaColeccionViva(t *testing.T) {
	src := &fakeCoffeeSource{}
	totals(t, newUC(src), "")
	totals(t, newUC(src), "2025-01")
	assert.Equal(t, 2, src.currentCalls)
	assert.Empty(t, src.historyKeys)
}

func TestGetDepositTotals_MesAnteriorUsaHistorico(t *testing.T) {
	src := &fakeCoffeeSource{history: []entity.CoffeeMovementDoc{{
		PeriodMonth: "2024-12",
		Egresos:     []entity.CoffeeEgress{{Entidad: "Monteverde", Cantidad: "7"}},
	}}}
	got := totals(t, newUC(src), " 2024-12 ")

	assert.Equal(t, 0, src.currentCalls)
	assert.Equal(t, []string{"2024-12"}, src.historyKeys)
	assert.Equal(t, 7.0, got[entity.DepositMonteverde])
}

func TestGetDepositTotals_PeriodoInvalido(t *testing.T) {
	src := &fakeCoffeeSource{}
	_, err := newUC(src).GetDepositTotals(context.Background(), "diciembre")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, src.currentCalls)
	assert.Empty(t, src.historyKeys)
}

func TestGetDepositTotals_FallaDeFuente(t *testing.T) {
	boom := errors.New("sin conexión")
	_, err := newUC(&fakeCoffeeSource{err: boom}).GetDepositTotals(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.ErrorIs(t, err, boom)
}
