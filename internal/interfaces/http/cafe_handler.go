package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grupogen/premios-api/internal/application/cafe"
	"github.com/grupogen/premios-api/pkg/logger"
)

// CafeHandler egresos de café por depósito.
type CafeHandler struct {
	uc  *cafe.DepositTotalsUseCase
	log *logger.Logger
}

// NewCafeHandler construye el handler.
func NewCafeHandler(uc *cafe.DepositTotalsUseCase, log *logger.Logger) *CafeHandler {
	return &CafeHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Total de café egresado por depósito
// @Tags         cafes
// @Security     Bearer
// @Produce      json
// @Param        month  query  string  false  "Período YYYY-MM (por defecto el mes en curso)"
// @Success      200  {array}   dto.DepositTotalDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cafes [get]
func (h *CafeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetDepositTotals(c.UserContext(), c.Query("month"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
