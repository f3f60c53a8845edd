// Package stock arma la foto de existencias por premio y depósito.
package stock

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grupogen/premios-api/internal/application/dto"
	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/normalize"
	"github.com/grupogen/premios-api/internal/domain/repository"
)

// excludedDescriptions combos de café que el catálogo publica como ítems propios.
// Claves ya normalizadas con normalize.CatalogKey.
var excludedDescriptions = map[string]struct{}{
	"CAFE + FACTURA O ALFAJOR":            {},
	"CAFE CHICO PARA LLEVAR + 2 FACTURAS": {},
	"CANJE CAFE + ALFAJOR":                {},
	"GASEOSA + ALFAJOR":                   {},
}

// depositColumns columnas de stock del catálogo, en el orden en que se emiten las filas.
var depositColumns = []struct {
	location string
	qty      func(entity.PrizeItem) any
}{
	{entity.DepositGrupoGen, func(p entity.PrizeItem) any { return p.StockGrupoGen }},
	{entity.DepositMonteverde, func(p entity.PrizeItem) any { return p.StockMonteverde }},
	{entity.DepositBettica, func(p entity.PrizeItem) any { return p.StockBettica }},
	{entity.DepositTobago1, func(p entity.PrizeItem) any { return p.StockTobago1 }},
}

// SnapshotUseCase genera las filas de stock.
type SnapshotUseCase struct {
	catalog repository.CatalogSource
}

// NewSnapshotUseCase construye el caso de uso.
func NewSnapshotUseCase(catalog repository.CatalogSource) *SnapshotUseCase {
	return &SnapshotUseCase{catalog: catalog}
}

// GetSnapshot devuelve una fila por (premio, depósito), salteando los combos excluidos.
// Todas las filas comparten la misma última actualización.
func (uc *SnapshotUseCase) GetSnapshot(ctx context.Context) ([]dto.StockRowDTO, error) {
	var (
		items  []entity.PrizeItem
		latest *time.Time
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = uc.catalog.FetchCatalogItems(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = uc.catalog.FetchLatestCatalogTimestamp(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("stock.GetSnapshot: %w: %w", domain.ErrUpstream, err)
	}

	var lastUpdated *string
	if latest != nil {
		s := normalize.FormatDisplay(*latest)
		lastUpdated = &s
	}

	out := make([]dto.StockRowDTO, 0, len(items)*len(depositColumns))
	for _, item := range items {
		if Excluded(item.Description) {
			continue
		}
		name := item.Description
		if name == "" {
			name = entity.Placeholder
		}
		for _, col := range depositColumns {
			out = append(out, dto.StockRowDTO{
				ID:           item.ID + "-" + col.location,
				PrizeName:    name,
				LocationName: col.location,
				Quantity:     normalize.CoerceNumber(col.qty(item)),
				MinQuantity:  0,
				LastUpdated:  lastUpdated,
			})
		}
	}
	return out, nil
}

// Excluded indica si la descripción corresponde a un combo que no se muestra en el stock.
func Excluded(description string) bool {
	_, ok := excludedDescriptions[normalize.CatalogKey(description)]
	return ok
}
