package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/grupogen/premios-api/internal/domain/repository"
)

// HealthHandler verifica las bases de datos.
type HealthHandler struct {
	service  string
	checkers map[string]repository.HealthChecker
	timeout  time.Duration
}

// NewHealthHandler construye el handler. checkers: nombre → base a verificar.
func NewHealthHandler(service string, checkers map[string]repository.HealthChecker) *HealthHandler {
	return &HealthHandler{service: service, checkers: checkers, timeout: 3 * time.Second}
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	status := fiber.StatusOK
	deps := make(fiber.Map, len(h.checkers))
	for name, chk := range h.checkers {
		if err := chk.Ping(ctx); err != nil {
			deps[name] = err.Error()
			status = fiber.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}
	overall := "ok"
	if status != fiber.StatusOK {
		overall = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{"status": overall, "service": h.service, "dependencies": deps})
}
