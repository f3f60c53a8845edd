package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grupogen/premios-api/pkg/config"
)

// NewPool crea el pool de conexiones a la base de usuarios y verifica la conexión con un ping.
// El pool se abre una sola vez en main y se inyecta en los repositorios.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// La base de usuarios tiene poco tráfico: login y administración.
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// Health envuelve el pool para el endpoint /health.
type Health struct {
	pool *pgxpool.Pool
}

// NewHealth construye el chequeo.
func NewHealth(pool *pgxpool.Pool) *Health { return &Health{pool: pool} }

// Ping verifica la conexión.
func (h *Health) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}
