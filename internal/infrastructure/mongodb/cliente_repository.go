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

	"github.com/violetta-moda/violetta-api/internal/domain"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// clienteDoc es la forma BSON de entity.Cliente.
type clienteDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Nombre     string             `bson:"nombre"`
	Email      string             `bson:"email"`
	Telefono   string             `bson:"telefono"`
	Direccion  string             `bson:"direccion"`
	Ciudad     string             `bson:"ciudad"`
	Compras    []string           `bson:"compras"`
	Alquileres []string           `bson:"alquileres"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d *clienteDoc) aEntidad() *entity.Cliente {
	return &entity.Cliente{
		ID:         d.ID.Hex(),
		Nombre:     d.Nombre,
		Email:      d.Email,
		Telefono:   d.Telefono,
		Direccion:  d.Direccion,
		Ciudad:     d.Ciudad,
		Compras:    d.Compras,
		Alquileres: d.Alquileres,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func aClienteDoc(c *entity.Cliente) *clienteDoc {
	return &clienteDoc{
		Nombre:     c.Nombre,
		Email:      c.Email,
		Telefono:   c.Telefono,
		Direccion:  c.Direccion,
		Ciudad:     c.Ciudad,
		Compras:    c.Compras,
		Alquileres: c.Alquileres,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ClienteRepo implementación de ClienteRepository sobre MongoDB.
type ClienteRepo struct {
	col *mongo.Collection
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
func NewClienteRepository(db *mongo.Database) *ClienteRepo {
	return &ClienteRepo{col: db.Collection(ColClientes)}
}

// GetAll devuelve todos los clientes ordenados por fecha de creación.
func (r *ClienteRepo) GetAll(ctx context.Context) ([]*entity.Cliente, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer cursor.Close(ctx)
	var list []*entity.Cliente
	for cursor.Next(ctx) {
		var doc clienteDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode cliente: %w", err)
		}
		list = append(list, doc.aEntidad())
	}
	return list, cursor.Err()
}

// GetByID devuelve el cliente o (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc clienteDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return doc.aEntidad(), nil
}

// Create inserta el cliente y copia el ObjectID generado a la entidad.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	res, err := r.col.InsertOne(ctx, aClienteDoc(c))
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// Update reemplaza los campos del cliente existente.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil
	}
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": aClienteDoc(c)})
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina el cliente. Devuelve false si no existía.
func (r *ClienteRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete cliente: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// AgregarTransaccion añade el ID al historial con $push.
func (r *ClienteRepo) AgregarTransaccion(ctx context.Context, clienteID, transaccionID, tipo string) error {
	return r.modificarHistorial(ctx, clienteID, tipo, bson.M{"$push": bson.M{campoHistorial(tipo): transaccionID}})
}

// QuitarTransaccion elimina el ID del historial con $pull.
func (r *ClienteRepo) QuitarTransaccion(ctx context.Context, clienteID, transaccionID, tipo string) error {
	return r.modificarHistorial(ctx, clienteID, tipo, bson.M{"$pull": bson.M{campoHistorial(tipo): transaccionID}})
}

func (r *ClienteRepo) modificarHistorial(ctx context.Context, clienteID, tipo string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(clienteID)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("historial cliente: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func campoHistorial(tipo string) string {
	if tipo == entity.TipoAlquiler {
		return "alquileres"
	}
	return "compras"
}
