package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grupogen/premios-api/internal/application/dto"
	"github.com/grupogen/premios-api/internal/application/report"
	"github.com/grupogen/premios-api/pkg/logger"
)

// MovementHandler reporte de movimientos en JSON y PDF.
type MovementHandler struct {
	report *report.ReportUseCase
	export *report.ExportUseCase
	log    *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(rep *report.ReportUseCase, export *report.ExportUseCase, log *logger.Logger) *MovementHandler {
	return &MovementHandler{report: rep, export: export, log: log}
}

// List godoc
// @Summary      Movimientos de premios (vivos + histórico)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Fecha desde (inclusive)"
// @Param        endDate    query  string  false  "Fecha hasta (inclusive, hasta el fin del día)"
// @Param        period     query  string  false  "Período del histórico YYYY-MM"
// @Success      200  {array}   dto.MovementRowDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	f, err := h.parseFilter(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.report.BuildReport(c.UserContext(), f)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out.Rows)
}

// ExportPDF godoc
// @Summary      Movimientos en PDF
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        startDate  query  string  false  "Fecha desde (inclusive)"
// @Param        endDate    query  string  false  "Fecha hasta (inclusive)"
// @Param        period     query  string  false  "Período del histórico YYYY-MM"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/export.pdf [get]
func (h *MovementHandler) ExportPDF(c *fiber.Ctx) error {
	f, err := h.parseFilter(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	pdf, filename, err := h.export.ExportPDF(c.UserContext(), f)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func (h *MovementHandler) parseFilter(c *fiber.Ctx) (report.Filter, error) {
	var q dto.MovementReportQuery
	if err := c.QueryParser(&q); err != nil {
		return report.Filter{}, err
	}
	return h.report.ParseFilter(q)
}
