package db

import (
	"context"
	"log"
	"time"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect abre la conexión a Mongo y devuelve el handle de la base.
// El cliente es de larga vida y compartido: lo construye el composition
// root (cmd/api, cmd/relevanced) y se inyecta a cada componente, nada de
// singletons de paquete.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
	return client.Database(cfg.MongoDB), nil
}

// Disconnect cierra el cliente subyacente (para el shutdown del main).
func Disconnect(ctx context.Context, database *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return database.Client().Disconnect(ctx)
}
