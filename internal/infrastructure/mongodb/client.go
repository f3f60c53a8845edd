// Package mongodb lee la base de extracción que llena el scraper de premios.
// Es de sólo lectura: este servicio nunca escribe en estas colecciones.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/grupogen/premios-api/pkg/config"
)

// defaultDatabase la que usa el driver de Node cuando la URI no trae base.
const defaultDatabase = "test"

// Collections nombres de las colecciones del scraper.
type Collections struct {
	Movements       string // movimientos del período en curso
	MovementHistory string // envoltorios históricos de movimientos
	Coffee          string // movimientos de café del mes en curso
	CoffeeHistory   string // movimientos de café de meses anteriores (periodMonth)
	Catalog         string // catálogo de premios con stock por depósito
}

// DefaultCollections nombres usados por el scraper en producción.
func DefaultCollections() Collections {
	return Collections{
		Movements:       "otheritems",
		MovementHistory: "otheritemhistories",
		Coffee:          "coffeemovements",
		CoffeeHistory:   "coffeemovementhistories",
		Catalog:         "agritems",
	}
}

// Store conexión a la base de extracción. Se abre una vez en main y se comparte.
type Store struct {
	client      *mongo.Client
	db          *mongo.Database
	collections Collections
}

// Connect abre el cliente, verifica la conexión con un ping y selecciona la base.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	dbName := cfg.Database
	if dbName == "" {
		cs, err := connstring.ParseAndValidate(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("mongodb: URI inválida: %w", err)
		}
		dbName = cs.Database
	}
	if dbName == "" {
		dbName = defaultDatabase
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("premios-api").
		SetReadPreference(readpref.SecondaryPreferred()).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: conectar: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}
	return &Store{
		client:      client,
		db:          client.Database(dbName),
		collections: DefaultCollections(),
	}, nil
}

// Ping verifica que el cluster responda.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.SecondaryPreferred())
}

// Close cierra el cliente.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}
