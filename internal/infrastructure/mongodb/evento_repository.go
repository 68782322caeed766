package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
)

var _ repository.EventoRepository = (*EventoRepo)(nil)

// eventoDoc es la forma BSON de entity.Evento.
type eventoDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Tipo        string             `bson:"tipo"`
	UsuarioID   string             `bson:"usuario_id"`
	Descripcion string             `bson:"descripcion"`
	EntidadTipo string             `bson:"entidad_tipo"`
	EntidadID   string             `bson:"entidad_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *eventoDoc) aEntidad() *entity.Evento {
	return &entity.Evento{
		ID:          d.ID.Hex(),
		Tipo:        d.Tipo,
		UsuarioID:   d.UsuarioID,
		Descripcion: d.Descripcion,
		EntidadTipo: d.EntidadTipo,
		EntidadID:   d.EntidadID,
		CreatedAt:   d.CreatedAt,
	}
}

// EventoRepo implementación de EventoRepository sobre MongoDB (append-only).
type EventoRepo struct {
	col *mongo.Collection
}

// NewEventoRepository construye el adaptador de persistencia para eventos.
func NewEventoRepository(db *mongo.Database) *EventoRepo {
	return &EventoRepo{col: db.Collection(ColEventos)}
}

// GetAll devuelve todos los eventos, más recientes primero.
func (r *EventoRepo) GetAll(ctx context.Context) ([]*entity.Evento, error) {
	return r.find(ctx, bson.M{})
}

// GetByID devuelve el evento o (nil, nil) si no existe.
func (r *EventoRepo) GetByID(ctx context.Context, id string) (*entity.Evento, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc eventoDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evento: %w", err)
	}
	return doc.aEntidad(), nil
}

// Create inserta el evento y copia el ObjectID generado a la entidad.
func (r *EventoRepo) Create(ctx context.Context, e *entity.Evento) error {
	doc := &eventoDoc{
		Tipo:        e.Tipo,
		UsuarioID:   e.UsuarioID,
		Descripcion: e.Descripcion,
		EntidadTipo: e.EntidadTipo,
		EntidadID:   e.EntidadID,
		CreatedAt:   e.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert evento: %w", err)
	}
	e.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// ListByUsuario filtra por usuario actor.
func (r *EventoRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]*entity.Evento, error) {
	return r.find(ctx, bson.M{"usuario_id": usuarioID})
}

// ListByEntidad filtra por entidad objetivo (tipo + id).
func (r *EventoRepo) ListByEntidad(ctx context.Context, entidadTipo, entidadID string) ([]*entity.Evento, error) {
	return r.find(ctx, bson.M{"entidad_tipo": entidadTipo, "entidad_id": entidadID})
}

func (r *EventoRepo) find(ctx context.Context, filter bson.M) ([]*entity.Evento, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list eventos: %w", err)
	}
	defer cursor.Close(ctx)
	var list []*entity.Evento
	for cursor.Next(ctx) {
		var doc eventoDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode evento: %w", err)
		}
		list = append(list, doc.aEntidad())
	}
	return list, cursor.Err()
}
