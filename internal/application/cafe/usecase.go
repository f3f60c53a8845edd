// Package cafe calcula los cafés egresados por depósito en un mes.
package cafe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grupogen/premios-api/internal/application/dto"
	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/normalize"
	"github.com/grupogen/premios-api/internal/domain/repository"
)

// reportedDeposits filas fijas de la respuesta, en este orden.
var reportedDeposits = []struct {
	id       string
	location string
}{
	{"monteverde", entity.DepositMonteverde},
	{"bettica", entity.DepositBettica},
	{"tobago1", entity.DepositTobago1},
}

// DepositTotalsUseCase suma las cantidades egresadas por depósito.
type DepositTotalsUseCase struct {
	source repository.CoffeeMovementSource
	now    func() time.Time
}

// NewDepositTotalsUseCase construye el caso de uso.
func NewDepositTotalsUseCase(source repository.CoffeeMovementSource) *DepositTotalsUseCase {
	return &DepositTotalsUseCase{source: source, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DepositTotalsUseCase) WithClock(now func() time.Time) *DepositTotalsUseCase {
	uc.now = now
	return uc
}

// GetDepositTotals devuelve siempre tres filas (Monteverde, Bettica, Tobago 1).
// period "YYYY-MM"; vacío = mes actual. El mes actual se lee de la colección viva,
// los anteriores del histórico filtrado por periodMonth.
func (uc *DepositTotalsUseCase) GetDepositTotals(ctx context.Context, period string) ([]dto.DepositTotalDTO, error) {
	current := normalize.MonthKey(uc.now())
	period = strings.TrimSpace(period)
	if period == "" {
		period = current
	}
	if !normalize.ValidMonthKey(period) {
		return nil, fmt.Errorf("%w: período %q (YYYY-MM)", domain.ErrInvalidInput, period)
	}

	var (
		docs []entity.CoffeeMovementDoc
		err  error
	)
	if period == current {
		docs, err = uc.source.FetchCurrentCoffeeMovements(ctx)
	} else {
		docs, err = uc.source.FetchHistoricalCoffeeMovements(ctx, period)
	}
	if err != nil {
		return nil, fmt.Errorf("cafe.GetDepositTotals: %w: %w", domain.ErrUpstream, err)
	}

	totals := SumByDeposit(docs)
	out := make([]dto.DepositTotalDTO, 0, len(reportedDeposits))
	for _, d := range reportedDeposits {
		out = append(out, dto.DepositTotalDTO{
			ID:            d.id,
			LocationName:  d.location,
			TotalQuantity: totals[d.location].InexactFloat64(),
		})
	}
	return out, nil
}

// SumByDeposit agrupa los egresos por depósito. Las cantidades que no son número se ignoran.
func SumByDeposit(docs []entity.CoffeeMovementDoc) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, doc := range docs {
		for _, eg := range doc.Egresos {
			qty, ok := normalize.StrictNumber(eg.Cantidad)
			if !ok {
				continue
			}
			dep := normalize.EntityToDeposit(eg.Entidad)
			totals[dep] = totals[dep].Add(decimal.NewFromFloat(qty))
		}
	}
	return totals
}
