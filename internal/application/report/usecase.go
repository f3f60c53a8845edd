package report

import (
	"context"
	"fmt"
	"time"

	"github.com/grupogen/premios-api/internal/application/dto"
	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/movement"
	"github.com/grupogen/premios-api/internal/domain/normalize"
)

// Filter rango de fechas (inclusivo en ambos extremos) y período opcional del histórico.
type Filter struct {
	Start  *time.Time
	End    *time.Time
	Period string
}

// Active indica si hay algún límite de fecha.
func (f Filter) Active() bool {
	return f.Start != nil || f.End != nil
}

func (f Filter) contains(t time.Time) bool {
	if f.Start != nil && t.Before(*f.Start) {
		return false
	}
	if f.End != nil && t.After(*f.End) {
		return false
	}
	return true
}

// ReportUseCase arma el reporte de movimientos.
type ReportUseCase struct {
	merger      *Merger
	queryLayout normalize.QueryLayout
}

// NewReportUseCase construye el caso de uso. queryLayout define la gramática de startDate/endDate.
func NewReportUseCase(merger *Merger, queryLayout normalize.QueryLayout) *ReportUseCase {
	return &ReportUseCase{merger: merger, queryLayout: queryLayout}
}

// ParseFilter convierte los parámetros de la consulta en un Filter.
// endDate se extiende al final del día. Devuelve domain.ErrInvalidInput ante fechas o período mal formados.
func (uc *ReportUseCase) ParseFilter(q dto.MovementReportQuery) (Filter, error) {
	var f Filter
	if q.StartDate != "" {
		t, err := normalize.ParseQueryDate(q.StartDate, uc.queryLayout)
		if err != nil {
			return Filter{}, err
		}
		f.Start = &t
	}
	if q.EndDate != "" {
		t, err := normalize.ParseQueryDate(q.EndDate, uc.queryLayout)
		if err != nil {
			return Filter{}, err
		}
		end := normalize.EndOfDay(t)
		f.End = &end
	}
	if q.Period != "" {
		if !normalize.ValidMonthKey(q.Period) {
			return Filter{}, fmt.Errorf("%w: período %q (YYYY-MM)", domain.ErrInvalidInput, q.Period)
		}
		f.Period = q.Period
	}
	return f, nil
}

// BuildReport une las fuentes, calcula la última actualización sobre el conjunto completo,
// aplica el filtro de fechas y mapea cada movimiento sobreviviente a una fila.
// Con filtro activo, los movimientos con fecha ilegible quedan afuera.
func (uc *ReportUseCase) BuildReport(ctx context.Context, f Filter) (*dto.MovementReport, error) {
	records, err := uc.merger.Merge(ctx, f.Period)
	if err != nil {
		return nil, err
	}

	lastUpdated := LatestScrapedAt(records)

	rows := make([]dto.MovementRowDTO, 0, len(records))
	for _, rec := range records {
		if f.Active() {
			occurred, ok := normalize.ParseDate(rec.OccurredAt)
			if !ok || !f.contains(occurred) {
				continue
			}
		}
		rows = append(rows, toRow(rec, lastUpdated))
	}
	return &dto.MovementReport{Rows: rows, LastUpdated: lastUpdated}, nil
}

// LatestScrapedAt devuelve el scrapedAt más reciente ya formateado, o nil si ninguno se pudo parsear.
func LatestScrapedAt(records []entity.MovementRecord) *string {
	var latest time.Time
	found := false
	for _, rec := range records {
		t, ok := normalize.ParseDate(rec.ScrapedAt)
		if !ok {
			continue
		}
		if !found || t.After(latest) {
			latest, found = t, true
		}
	}
	if !found {
		return nil
	}
	s := normalize.FormatDisplay(latest)
	return &s
}

func toRow(rec entity.MovementRecord, lastUpdated *string) dto.MovementRowDTO {
	kind := movement.Classify(rec.MovementKind)
	return dto.MovementRowDTO{
		ID:           rec.ID,
		Date:         normalize.DisplayDate(rec.OccurredAt),
		PrizeName:    normalize.CleanPrizeName(rec.RewardDescription),
		LocationName: movement.ResolveLocation(kind, rec.OriginLocation, rec.DestinationLocation),
		Type:         string(kind),
		Quantity:     normalize.CoerceNumber(rec.Quantity),
		Entity:       rec.Entity,
		RewardRaw:    rec.RewardDescription,
		IsCafeCombo:  normalize.IsCafeCombo(rec.RewardDescription),
		Movement:     rec.MovementKind,
		LastUpdated:  lastUpdated,
	}
}
