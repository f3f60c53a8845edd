// Package report arma el reporte de movimientos sobre la vista unificada
// (colección vigente + archivo histórico).
package report

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/movement"
	"github.com/grupogen/premios-api/internal/domain/repository"
)

// Merger une los movimientos vigentes y los del histórico en una sola secuencia.
type Merger struct {
	source repository.MovementSource
}

// NewMerger construye el merger sobre la fuente de movimientos.
func NewMerger(source repository.MovementSource) *Merger {
	return &Merger{source: source}
}

// Merge lee ambas fuentes en paralelo y concatena: primero los vigentes, después el histórico
// en el orden de sus envoltorios. Si cualquiera de las lecturas falla, falla todo.
func (m *Merger) Merge(ctx context.Context, period string) ([]entity.MovementRecord, error) {
	var current, history []entity.Document

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := m.source.FetchCurrentMovements(gctx)
		if err != nil {
			return fmt.Errorf("movimientos vigentes: %w", err)
		}
		current = docs
		return nil
	})
	g.Go(func() error {
		docs, err := m.source.FetchHistoricalMovements(gctx, period)
		if err != nil {
			return fmt.Errorf("movimientos históricos: %w", err)
		}
		history = docs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("report.Merge: %w: %w", domain.ErrUpstream, err)
	}

	records := make([]entity.MovementRecord, 0, len(current)+len(history))
	for _, doc := range current {
		records = append(records, movement.FromDocument(doc, entity.TierCurrent))
	}
	for _, wrapper := range history {
		records = append(records, movement.ExtractHistorical(wrapper)...)
	}
	return records, nil
}
