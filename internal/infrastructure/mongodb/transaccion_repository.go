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

var _ repository.TransaccionRepository = (*TransaccionRepo)(nil)

// itemDoc es la forma BSON de una línea de transacción.
type itemDoc struct {
	ProductoID string               `bson:"producto_id"`
	Cantidad   int                  `bson:"cantidad"`
	Precio     primitive.Decimal128 `bson:"precio"`
}

// transaccionDoc es la forma BSON de entity.Transaccion.
type transaccionDoc struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	Tipo            string               `bson:"tipo"`
	ClienteID       string               `bson:"cliente_id"`
	Items           []itemDoc            `bson:"items"`
	Total           primitive.Decimal128 `bson:"total"`
	Estado          string               `bson:"estado"`
	MetodoPago      string               `bson:"metodo_pago"`
	FechaDevolucion *time.Time           `bson:"fecha_devolucion,omitempty"`
	CreatedAt       time.Time            `bson:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at"`
}

func (d *transaccionDoc) aEntidad() *entity.Transaccion {
	items := make([]entity.ItemTransaccion, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, entity.ItemTransaccion{
			ProductoID: it.ProductoID,
			Cantidad:   it.Cantidad,
			Precio:     deDecimal128(it.Precio),
		})
	}
	return &entity.Transaccion{
		ID:              d.ID.Hex(),
		Tipo:            d.Tipo,
		ClienteID:       d.ClienteID,
		Items:           items,
		Total:           deDecimal128(d.Total),
		Estado:          d.Estado,
		MetodoPago:      d.MetodoPago,
		FechaDevolucion: d.FechaDevolucion,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func aTransaccionDoc(t *entity.Transaccion) *transaccionDoc {
	items := make([]itemDoc, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, itemDoc{
			ProductoID: it.ProductoID,
			Cantidad:   it.Cantidad,
			Precio:     aDecimal128(it.Precio),
		})
	}
	return &transaccionDoc{
		Tipo:            t.Tipo,
		ClienteID:       t.ClienteID,
		Items:           items,
		Total:           aDecimal128(t.Total),
		Estado:          t.Estado,
		MetodoPago:      t.MetodoPago,
		FechaDevolucion: t.FechaDevolucion,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// TransaccionRepo implementación de TransaccionRepository sobre MongoDB.
type TransaccionRepo struct {
	col *mongo.Collection
}

// NewTransaccionRepository construye el adaptador de persistencia para transacciones.
func NewTransaccionRepository(db *mongo.Database) *TransaccionRepo {
	return &TransaccionRepo{col: db.Collection(ColTransacciones)}
}

// GetAll devuelve todas las transacciones ordenadas por fecha de creación.
func (r *TransaccionRepo) GetAll(ctx context.Context) ([]*entity.Transaccion, error) {
	return r.find(ctx, bson.M{})
}

// GetByID devuelve la transacción o (nil, nil) si no existe.
func (r *TransaccionRepo) GetByID(ctx context.Context, id string) (*entity.Transaccion, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc transaccionDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaccion: %w", err)
	}
	return doc.aEntidad(), nil
}

// Create inserta la transacción y copia el ObjectID generado a la entidad.
func (r *TransaccionRepo) Create(ctx context.Context, t *entity.Transaccion) error {
	res, err := r.col.InsertOne(ctx, aTransaccionDoc(t))
	if err != nil {
		return fmt.Errorf("insert transaccion: %w", err)
	}
	t.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// Update reemplaza los campos de la transacción existente.
func (r *TransaccionRepo) Update(ctx context.Context, t *entity.Transaccion) error {
	oid, err := primitive.ObjectIDFromHex(t.ID)
	if err != nil {
		return nil
	}
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": aTransaccionDoc(t)})
	if err != nil {
		return fmt.Errorf("update transaccion: %w", err)
	}
	return nil
}

// Delete elimina la transacción. Devuelve false si no existía.
func (r *TransaccionRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete transaccion: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// ListByTipo filtra por tipo (venta | alquiler).
func (r *TransaccionRepo) ListByTipo(ctx context.Context, tipo string) ([]*entity.Transaccion, error) {
	return r.find(ctx, bson.M{"tipo": tipo})
}

// ListByCliente filtra por cliente.
func (r *TransaccionRepo) ListByCliente(ctx context.Context, clienteID string) ([]*entity.Transaccion, error) {
	return r.find(ctx, bson.M{"cliente_id": clienteID})
}

func (r *TransaccionRepo) find(ctx context.Context, filter bson.M) ([]*entity.Transaccion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list transacciones: %w", err)
	}
	defer cursor.Close(ctx)
	var list []*entity.Transaccion
	for cursor.Next(ctx) {
		var doc transaccionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode transaccion: %w", err)
		}
		list = append(list, doc.aEntidad())
	}
	return list, cursor.Err()
}
