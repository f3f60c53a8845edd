package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/normalize"
	"github.com/grupogen/premios-api/internal/domain/repository"
)

var (
	_ repository.MovementSource       = (*ExtractRepo)(nil)
	_ repository.CoffeeMovementSource = (*ExtractRepo)(nil)
	_ repository.CatalogSource        = (*ExtractRepo)(nil)
)

// ExtractRepo implementa las fuentes de lectura sobre las colecciones del scraper.
type ExtractRepo struct {
	store *Store
}

// NewExtractRepository construye el repositorio sobre una conexión abierta.
func NewExtractRepository(store *Store) *ExtractRepo {
	return &ExtractRepo{store: store}
}

// FetchCurrentMovements devuelve todos los documentos de la colección viva.
func (r *ExtractRepo) FetchCurrentMovements(ctx context.Context) ([]entity.Document, error) {
	docs, err := r.find(ctx, r.store.collections.Movements, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongodb.FetchCurrentMovements: %w", err)
	}
	return docs, nil
}

// FetchHistoricalMovements devuelve los envoltorios del histórico.
// periodKey vacío trae todos; si no, sólo los del mes indicado.
func (r *ExtractRepo) FetchHistoricalMovements(ctx context.Context, periodKey string) ([]entity.Document, error) {
	filter := bson.M{}
	if periodKey != "" {
		filter["periodMonth"] = periodKey
	}
	docs, err := r.find(ctx, r.store.collections.MovementHistory, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb.FetchHistoricalMovements: %w", err)
	}
	return docs, nil
}

// FetchCurrentCoffeeMovements movimientos de café del mes en curso.
func (r *ExtractRepo) FetchCurrentCoffeeMovements(ctx context.Context) ([]entity.CoffeeMovementDoc, error) {
	docs, err := r.find(ctx, r.store.collections.Coffee, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongodb.FetchCurrentCoffeeMovements: %w", err)
	}
	return coffeeDocs(docs), nil
}

// FetchHistoricalCoffeeMovements movimientos de café archivados para periodKey (YYYY-MM).
func (r *ExtractRepo) FetchHistoricalCoffeeMovements(ctx context.Context, periodKey string) ([]entity.CoffeeMovementDoc, error) {
	docs, err := r.find(ctx, r.store.collections.CoffeeHistory, bson.M{"periodMonth": periodKey})
	if err != nil {
		return nil, fmt.Errorf("mongodb.FetchHistoricalCoffeeMovements: %w", err)
	}
	return coffeeDocs(docs), nil
}

// FetchCatalogItems devuelve el catálogo completo.
func (r *ExtractRepo) FetchCatalogItems(ctx context.Context) ([]entity.PrizeItem, error) {
	docs, err := r.find(ctx, r.store.collections.Catalog, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongodb.FetchCatalogItems: %w", err)
	}
	out := make([]entity.PrizeItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, prizeFromDocument(d))
	}
	return out, nil
}

// FetchLatestCatalogTimestamp toma el scrapedAt más reciente de los movimientos vivos,
// que es la última corrida completa del scraper. nil si no hay ninguno legible.
func (r *ExtractRepo) FetchLatestCatalogTimestamp(ctx context.Context) (*time.Time, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "scrapedAt", Value: -1}}).
		SetProjection(bson.M{"scrapedAt": 1})

	var raw bson.M
	err := r.store.collection(r.store.collections.Movements).
		FindOne(ctx, bson.M{"scrapedAt": bson.M{"$exists": true}}, opts).
		Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongodb.FetchLatestCatalogTimestamp: %w", err)
	}
	t, ok := normalize.ParseDate(toPlain(raw["scrapedAt"]))
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *ExtractRepo) find(ctx context.Context, name string, filter bson.M) ([]entity.Document, error) {
	cursor, err := r.store.collection(name).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, err
	}
	out := make([]entity.Document, 0, len(raws))
	for _, raw := range raws {
		out = append(out, toDocument(raw))
	}
	return out, nil
}

func coffeeDocs(docs []entity.Document) []entity.CoffeeMovementDoc {
	out := make([]entity.CoffeeMovementDoc, 0, len(docs))
	for _, d := range docs {
		out = append(out, coffeeFromDocument(d))
	}
	return out
}
