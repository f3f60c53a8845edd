package repository

import (
	"context"
	"time"

	"github.com/grupogen/premios-api/internal/domain/entity"
)

// MovementSource lectura de movimientos desde la base de extracción.
type MovementSource interface {
	// FetchCurrentMovements devuelve los movimientos del período en curso (un documento plano por movimiento).
	FetchCurrentMovements(ctx context.Context) ([]entity.Document, error)
	// FetchHistoricalMovements devuelve los documentos envoltorio del archivo.
	// periodKey vacío = todos los períodos.
	FetchHistoricalMovements(ctx context.Context, periodKey string) ([]entity.Document, error)
}

// CoffeeMovementSource lectura de movimientos de café.
type CoffeeMovementSource interface {
	FetchCurrentCoffeeMovements(ctx context.Context) ([]entity.CoffeeMovementDoc, error)
	FetchHistoricalCoffeeMovements(ctx context.Context, periodKey string) ([]entity.CoffeeMovementDoc, error)
}

// CatalogSource lectura del catálogo de premios y su marca de actualización.
type CatalogSource interface {
	FetchCatalogItems(ctx context.Context) ([]entity.PrizeItem, error)
	// FetchLatestCatalogTimestamp devuelve el scrapedAt más reciente, o nil si no hay ninguno.
	FetchLatestCatalogTimestamp(ctx context.Context) (*time.Time, error)
}

// HealthChecker lo implementan las fuentes que pueden verificar su conexión.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
