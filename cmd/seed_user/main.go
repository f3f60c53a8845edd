// seed_user crea el primer usuario del dashboard en la base de usuarios.
//
// Uso: SEED_EMAIL=admin@grupogen.com.ar SEED_PASSWORD=... [SEED_ROLE=ADMIN] go run ./cmd/seed_user
// Si el email ya existe no hace nada.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/grupogen/premios-api/internal/application/dto"
	"github.com/grupogen/premios-api/internal/application/usecase"
	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/infrastructure/postgres"
	"github.com/grupogen/premios-api/pkg/config"
	"github.com/grupogen/premios-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadSeed()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Sin mailer: el seed no avisa por email
	uc := usecase.NewUserUseCase(postgres.NewUserRepository(pool), nil, usecase.WelcomeConfig{
		AppName: cfg.App.Name,
		AppURL:  cfg.App.URL,
	}, log.Named("seed"))

	user, err := uc.Create(ctx, dto.CreateUserRequest{
		Email:    cfg.Seed.Email,
		Password: cfg.Seed.Password,
		Role:     cfg.Seed.Role,
	})
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		fmt.Printf("El usuario %s ya existe, no se hace nada\n", cfg.Seed.Email)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Usuario creado: %s (%s)\n", user.Email, user.Role)
}
