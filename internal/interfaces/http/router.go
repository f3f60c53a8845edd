package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grupogen/premios-api/internal/application/auth"
	"github.com/grupogen/premios-api/internal/application/cafe"
	"github.com/grupogen/premios-api/internal/application/prize"
	"github.com/grupogen/premios-api/internal/application/report"
	"github.com/grupogen/premios-api/internal/application/stock"
	"github.com/grupogen/premios-api/internal/application/usecase"
	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ReportUC  *report.ReportUseCase
	ExportUC  *report.ExportUseCase
	StockUC   *stock.SnapshotUseCase
	CafeUC    *cafe.DepositTotalsUseCase
	PrizeUC   *prize.CatalogUseCase
	Health    *HealthHandler
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Health != nil {
		app.Get("/health", deps.Health.Check)
	}

	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Users: alta y listado sólo ADMIN; cambio de contraseña para cualquier rol
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users := api.Group("/users", requireAuth)
	users.Post("/change-password", userHandler.ChangePassword)
	users.Post("/", RequireRole(entity.RoleAdmin), userHandler.Create)
	users.Get("/", RequireRole(entity.RoleAdmin), userHandler.List)

	// Datos del scraper (cualquier usuario logueado)
	prizeHandler := NewPrizeHandler(deps.PrizeUC, deps.Log)
	api.Get("/prizes", requireAuth, prizeHandler.List)

	stockHandler := NewStockHandler(deps.StockUC, deps.Log)
	api.Get("/stocks", requireAuth, stockHandler.List)

	movementHandler := NewMovementHandler(deps.ReportUC, deps.ExportUC, deps.Log)
	movements := api.Group("/movements", requireAuth)
	movements.Get("/", movementHandler.List)
	movements.Get("/export.pdf", movementHandler.ExportPDF)

	cafeHandler := NewCafeHandler(deps.CafeUC, deps.Log)
	api.Get("/cafes", requireAuth, cafeHandler.List)
}
