// Package pdf genera la versión imprimible del reporte de movimientos de premios.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app + título │ Última actualización   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Premio | Depósito | Tipo | Cant. | Entidad   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: cantidades por tipo de movimiento                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/grupogen/premios-api/internal/application/dto"
	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/normalize"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorEgreso  = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorIngreso = &props.Color{Red: 20, Green: 120, Blue: 50}
)

// MovementsPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MovementsPDFGenerator struct {
	appName string
	now     func() time.Time
}

// NewMovementsPDFGenerator construye el generador. appName va en el encabezado.
func NewMovementsPDFGenerator(appName string) *MovementsPDFGenerator {
	return &MovementsPDFGenerator{appName: appName, now: time.Now}
}

// GenerateMovementsPDF genera el PDF y devuelve sus bytes.
func (g *MovementsPDFGenerator) GenerateMovementsPDF(_ context.Context, report *dto.MovementReport, title string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(title, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, title, report.LastUpdated, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(appName, title string, lastUpdated *string, generatedAt time.Time) core.Row {
	updated := entity.Placeholder
	if lastUpdated != nil {
		updated = *lastUpdated
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(strings.ToUpper(appName), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Última actualización: "+updated, props.Text{
				Size: 8, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+normalize.FormatDisplay(generatedAt), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Premio", 4, align.Left),
		h("Depósito", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("Entidad", 2, align.Left),
	)
}

// tableRows una fila por movimiento; los egresos en rojo, los ingresos en verde.
func tableRows(rows []dto.MovementRowDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		typeColor := colorGray
		switch r.Type {
		case string(entity.MovementEgreso):
			typeColor = colorEgreso
		case string(entity.MovementIngreso):
			typeColor = colorIngreso
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(r.Date, props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(4).Add(text.New(nonEmpty(r.PrizeName, entity.Placeholder), props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(r.LocationName, entity.Placeholder), props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(1).Add(text.New(r.Type, props.Text{
				Size: 7, Top: 1, Align: align.Center, Color: typeColor, Style: fontstyle.Bold,
			})),
			col.New(1).Add(text.New(formatQuantity(decimal.NewFromFloat(r.Quantity)), props.Text{
				Size: 7, Top: 1, Align: align.Right, Right: 1,
			})),
			col.New(2).Add(text.New(nonEmpty(r.Entity, entity.Placeholder), props.Text{Size: 7, Top: 1, Left: 1})),
		))
	}
	return result
}

// totalsRow suma las cantidades por tipo de movimiento.
func totalsRow(rows []dto.MovementRowDTO) core.Row {
	totals := TotalsByType(rows)
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Ingresos:"),
			label("Egresos:"),
			label("Ajustes:"),
			label(fmt.Sprintf("Movimientos: %d", len(rows))),
		),
		col.New(3).Add(
			value(formatQuantity(totals[entity.MovementIngreso])),
			value(formatQuantity(totals[entity.MovementEgreso])),
			value(formatQuantity(totals[entity.MovementAjuste])),
		),
	)
}

// TotalsByType acumula las cantidades de las filas agrupadas por tipo.
func TotalsByType(rows []dto.MovementRowDTO) map[entity.MovementType]decimal.Decimal {
	totals := map[entity.MovementType]decimal.Decimal{
		entity.MovementIngreso: decimal.Zero,
		entity.MovementEgreso:  decimal.Zero,
		entity.MovementAjuste:  decimal.Zero,
	}
	for _, r := range rows {
		t := entity.MovementType(r.Type)
		totals[t] = totals[t].Add(decimal.NewFromFloat(r.Quantity))
	}
	return totals
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatQuantity separa miles con punto y decimales con coma.
// Ej: 25000 → "25.000", -1234.5 → "-1.234,5"
func formatQuantity(d decimal.Decimal) string {
	s := d.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := sign + groupThousands(intPart)
	if hasFrac {
		out += "," + frac
	}
	return out
}

// groupThousands inserta puntos de miles en un string de dígitos.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
