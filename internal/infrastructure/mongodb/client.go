// Package mongodb implementa los puertos de persistencia sobre MongoDB.
// Los IDs expuestos al dominio son ObjectID en formato hexadecimal; la
// traducción string <-> ObjectID es manual en cada repo.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/violetta-moda/violetta-api/pkg/config"
)

// Nombres de colecciones.
const (
	ColProductos     = "productos"
	ColClientes      = "clientes"
	ColTransacciones = "transacciones"
	ColUsuarios      = "usuarios"
	ColEventos       = "eventos"
)

// Connect abre el cliente, verifica la conexión con ping y devuelve la base
// de datos. El timeout viene de la configuración (5s por defecto); si la
// conexión falla aquí, la aplicación arranca con el backend en memoria y no
// vuelve a intentarlo.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, client.Database(cfg.DBName), nil
}
