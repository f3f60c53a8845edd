package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grupogen/premios-api/internal/application/stock"
	"github.com/grupogen/premios-api/pkg/logger"
)

// StockHandler stock actual por depósito.
type StockHandler struct {
	uc  *stock.SnapshotUseCase
	log *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.SnapshotUseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Stock por premio y depósito
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockRowDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetSnapshot(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
