package prize_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupogen/premios-api/internal/application/prize"
	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/domain/entity"
)

type fakeCatalog struct {
	items []entity.PrizeItem
	err   error
}

func (f *fakeCatalog) FetchCatalogItems(context.Context) ([]entity.PrizeItem, error) {
	return f.items, f.err
}

func (f *fakeCatalog) FetchLatestCatalogTimestamp(context.Context) (*time.Time, error) {
	return nil, nil
}

func TestList_NormalizaCampos(t *testing.T) {
	src := &fakeCatalog{items: []entity.PrizeItem{
		{
			ID:          "p1",
			Description: "Termo",
			Category:    "Hogar",
			Cost:        "$ 1500.50",
			Points:      1200,
			Status:      "Inactive",
			ScrapedAt:   time.Date(2025, 1, 20, 15, 0, 0, 0, time.UTC),
		},
		{ID: "p2", Cost: nil, Points: "abc", ScrapedAt: "cualquier cosa"},
	}}
	out, err := prize.NewCatalogUseCase(src).List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "Termo", out[0].Name)
	assert.Equal(t, "Hogar", out[0].Category)
	assert.Equal(t, 1500.5, out[0].DefaultPurchasePrice)
	assert.Equal(t, 1200.0, out[0].Points)
	assert.False(t, out[0].Active)
	assert.Equal(t, "20/01/2025 12:00:00", out[0].ScrapedAt)

	assert.Equal(t, entity.Placeholder, out[1].Name)
	assert.Equal(t, 0.0, out[1].DefaultPurchasePrice)
	assert.Equal(t, 0.0, out[1].Points)
	assert.True(t, out[1].Active, "sin estado cuenta como activo")
	assert.Equal(t, "", out[1].ScrapedAt)
}

func TestList_FallaDeFuente(t *testing.T) {
	_, err := prize.NewCatalogUseCase(&fakeCatalog{err: errors.New("x")}).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
