package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupogen/premios-api/internal/application/stock"
	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/domain/entity"
)

type fakeCatalog struct {
	items     []entity.PrizeItem
	latest    *time.Time
	errItems  error
	errLatest error
}

func (f *fakeCatalog) FetchCatalogItems(context.Context) ([]entity.PrizeItem, error) {
	return f.items, f.errItems
}

func (f *fakeCatalog) FetchLatestCatalogTimestamp(context.Context) (*time.Time, error) {
	return f.latest, f.errLatest
}

func TestGetSnapshot_CuatroFilasPorPremio(t *testing.T) {
	latest := time.Date(2025, 1, 20, 15, 0, 0, 0, time.UTC)
	src := &fakeCatalog{
		latest: &latest,
		items: []entity.PrizeItem{{
			ID:              "p1",
			Description:     "Taza térmica",
			StockGrupoGen:   "10",
			StockMonteverde: 3,
			StockBettica:    nil,
			StockTobago1:    "n/d",
		}},
	}
	rows, err := stock.NewSnapshotUseCase(src).GetSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "p1-"+entity.DepositGrupoGen, rows[0].ID)
	assert.Equal(t, entity.DepositGrupoGen, rows[0].LocationName)
	assert.Equal(t, 10.0, rows[0].Quantity)
	assert.Equal(t, entity.DepositMonteverde, rows[1].LocationName)
	assert.Equal(t, 3.0, rows[1].Quantity)
	assert.Equal(t, entity.DepositBettica, rows[2].LocationName)
	assert.Equal(t, 0.0, rows[2].Quantity)
	assert.Equal(t, entity.DepositTobago1, rows[3].LocationName)
	assert.Equal(t, 0.0, rows[3].Quantity)

	for _, r := range rows {
		assert.Equal(t, "Taza térmica", r.PrizeName)
		assert.Equal(t, 0.0, r.MinQuantity)
		require.NotNil(t, r.LastUpdated)
		assert.Equal(t, "20/01/2025 12:00:00", *r.LastUpdated)
	}
}

func TestGetSnapshot_ExcluyeCombos(t *testing.T) {
	src := &fakeCatalog{items: []entity.PrizeItem{
		{ID: "c1", Description: "Café + factura o alfajor"},
		{ID: "c2", Description: "  canje café + alfajor "},
		{ID: "c3", Description: "GASEOSA + ALFAJOR"},
		{ID: "p1", Description: "Mochila"},
	}}
	rows, err := stock.NewSnapshotUseCase(src).GetSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4, "sólo la mochila")
	for _, r := range rows {
		assert.Equal(t, "Mochila", r.PrizeName)
		assert.Nil(t, r.LastUpdated, "sin marca de scraping")
	}
}

func TestGetSnapshot_NombreVacio(t *testing.T) {
	src := &fakeCatalog{items: []entity.PrizeItem{{ID: "p1"}}}
	rows, err := stock.NewSnapshotUseCase(src).GetSnapshot(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, entity.Placeholder, rows[0].PrizeName)
}

func TestGetSnapshot_FallaDeFuente(t *testing.T) {
	boom := errors.New("timeout")
	_, err := stock.NewSnapshotUseCase(&fakeCatalog{errLatest: boom}).GetSnapshot(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.ErrorIs(t, err, boom)

	_, err = stock.NewSnapshotUseCase(&fakeCatalog{errItems: boom}).GetSnapshot(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestExcluded(t *testing.T) {
	assert.True(t, stock.Excluded("Café chico para llevar + 2 facturas"))
	assert.True(t, stock.Excluded("CAFE + FACTURA O ALFAJOR"))
	assert.False(t, stock.Excluded("Café"))
	assert.False(t, stock.Excluded(""))
}
