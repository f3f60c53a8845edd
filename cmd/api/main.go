package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/grupogen/premios-api/internal/application/auth"
	"github.com/grupogen/premios-api/internal/application/cafe"
	"github.com/grupogen/premios-api/internal/application/prize"
	"github.com/grupogen/premios-api/internal/application/report"
	"github.com/grupogen/premios-api/internal/application/stock"
	"github.com/grupogen/premios-api/internal/application/usecase"
	"github.com/grupogen/premios-api/internal/domain/normalize"
	"github.com/grupogen/premios-api/internal/domain/repository"
	"github.com/grupogen/premios-api/internal/infrastructure/mongodb"
	infrapdf "github.com/grupogen/premios-api/internal/infrastructure/pdf"
	"github.com/grupogen/premios-api/internal/infrastructure/postgres"
	httpRouter "github.com/grupogen/premios-api/internal/interfaces/http"
	"github.com/grupogen/premios-api/pkg/config"
	"github.com/grupogen/premios-api/pkg/logger"
	"github.com/grupogen/premios-api/pkg/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB (extract)")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("cerrar MongoDB")
		}
	}()

	userRepo := postgres.NewUserRepository(pool)
	extractRepo := mongodb.NewExtractRepository(store)

	// Email de alta: sin SMTP configurado el alta sigue funcionando sin aviso
	var mail usecase.MailSender
	if cfg.SMTP.Enabled() {
		mail = mailer.New(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, mail, usecase.WelcomeConfig{
		AppName: cfg.App.Name,
		AppURL:  cfg.App.URL,
	}, log.Named("users"))

	reportUC := report.NewReportUseCase(report.NewMerger(extractRepo), normalize.QueryLayout(cfg.Report.QueryDateLayout))
	exportUC := report.NewExportUseCase(reportUC, infrapdf.NewMovementsPDFGenerator(cfg.App.Name))
	stockUC := stock.NewSnapshotUseCase(extractRepo)
	cafeUC := cafe.NewDepositTotalsUseCase(extractRepo)
	prizeUC := prize.NewCatalogUseCase(extractRepo)

	health := httpRouter.NewHealthHandler(cfg.App.Name, map[string]repository.HealthChecker{
		"postgres": postgres.NewHealth(pool),
		"mongo":    store,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Premios API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		ReportUC:  reportUC,
		ExportUC:  exportUC,
		StockUC:   stockUC,
		CafeUC:    cafeUC,
		PrizeUC:   prizeUC,
		Health:    health,
		JWTSecret: cfg.JWT.Secret,
		Log:       log.Named("api"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
