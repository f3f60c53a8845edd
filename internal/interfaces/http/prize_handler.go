package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grupogen/premios-api/internal/application/prize"
	"github.com/grupogen/premios-api/pkg/logger"
)

// PrizeHandler catálogo de premios.
type PrizeHandler struct {
	uc  *prize.CatalogUseCase
	log *logger.Logger
}

// NewPrizeHandler construye el handler.
func NewPrizeHandler(uc *prize.CatalogUseCase, log *logger.Logger) *PrizeHandler {
	return &PrizeHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Catálogo de premios
// @Tags         prizes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.PrizeDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/prizes [get]
func (h *PrizeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
