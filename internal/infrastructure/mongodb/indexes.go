package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes crea los índices de todas las colecciones. CreateMany es
// idempotente: se puede llamar en cada arranque. El índice único de
// usuarios.email es el que garantiza la unicidad bajo altas concurrentes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		ColProductos: {
			{Keys: bson.D{{Key: "codigo", Value: 1}}},
			{Keys: bson.D{{Key: "nombre", Value: 1}}},
			{Keys: bson.D{{Key: "categoria", Value: 1}}},
		},
		ColClientes: {
			{Keys: bson.D{{Key: "nombre", Value: 1}}},
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		ColTransacciones: {
			{Keys: bson.D{{Key: "tipo", Value: 1}}},
			{Keys: bson.D{{Key: "estado", Value: 1}}},
			{Keys: bson.D{{Key: "cliente_id", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		ColUsuarios: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColEventos: {
			{Keys: bson.D{{Key: "usuario_id", Value: 1}}},
			{Keys: bson.D{{Key: "entidad_tipo", Value: 1}, {Key: "entidad_id", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
	}
	for col, models := range specs {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("crear índices de %s: %w", col, err)
		}
	}
	return nil
}
