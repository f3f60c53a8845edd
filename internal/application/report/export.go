package report

import (
	"context"
	"fmt"
	"time"

	"github.com/grupogen/premios-api/internal/application/dto"
)

// PDFGenerator genera la representación impresa del reporte. La implementa infrastructure/pdf.
type PDFGenerator interface {
	GenerateMovementsPDF(ctx context.Context, report *dto.MovementReport, title string) ([]byte, error)
}

// ExportUseCase exporta el reporte de movimientos a PDF con el mismo filtro que la vista JSON.
type ExportUseCase struct {
	report    *ReportUseCase
	generator PDFGenerator
	now       func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(report *ReportUseCase, generator PDFGenerator) *ExportUseCase {
	return &ExportUseCase{report: report, generator: generator, now: time.Now}
}

// ExportPDF arma el reporte y devuelve (bytes, nombre de archivo).
func (uc *ExportUseCase) ExportPDF(ctx context.Context, f Filter) ([]byte, string, error) {
	rep, err := uc.report.BuildReport(ctx, f)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateMovementsPDF(ctx, rep, filterTitle(f))
	if err != nil {
		return nil, "", fmt.Errorf("report.ExportPDF: %w", err)
	}
	filename := fmt.Sprintf("movimientos-%s.pdf", uc.now().Format("20060102-150405"))
	return pdf, filename, nil
}

// filterTitle describe el rango aplicado, ej: "Movimientos del 01/01/2025 al 31/01/2025".
func filterTitle(f Filter) string {
	const layout = "02/01/2006"
	switch {
	case f.Start != nil && f.End != nil:
		return fmt.Sprintf("Movimientos del %s al %s", f.Start.Format(layout), f.End.Format(layout))
	case f.Start != nil:
		return "Movimientos desde " + f.Start.Format(layout)
	case f.End != nil:
		return "Movimientos hasta " + f.End.Format(layout)
	default:
		return "Movimientos"
	}
}
