// Package prize expone el catálogo de premios normalizado.
package prize

import (
	"context"
	"fmt"

	"github.com/grupogen/premios-api/internal/application/dto"
	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/normalize"
	"github.com/grupogen/premios-api/internal/domain/repository"
)

// CatalogUseCase lista los premios.
type CatalogUseCase struct {
	catalog repository.CatalogSource
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalog repository.CatalogSource) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List devuelve el catálogo con costo y puntos numéricos y el estado como booleano.
func (uc *CatalogUseCase) List(ctx context.Context) ([]dto.PrizeDTO, error) {
	items, err := uc.catalog.FetchCatalogItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("prize.List: %w: %w", domain.ErrUpstream, err)
	}
	out := make([]dto.PrizeDTO, 0, len(items))
	for _, it := range items {
		name := it.Description
		if name == "" {
			name = entity.Placeholder
		}
		scrapedAt := ""
		if t, ok := normalize.ParseDate(it.ScrapedAt); ok {
			scrapedAt = normalize.FormatDisplay(t)
		}
		out = append(out, dto.PrizeDTO{
			ID:                   it.ID,
			Name:                 name,
			Category:             it.Category,
			DefaultPurchasePrice: normalize.CoerceNumber(it.Cost),
			Points:               normalize.CoerceNumber(it.Points),
			Active:               normalize.ParseActive(it.Status),
			ScrapedAt:            scrapedAt,
		})
	}
	return out, nil
}
