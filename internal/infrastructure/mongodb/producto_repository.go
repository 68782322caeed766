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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// productoDoc es la forma BSON de entity.Producto.
type productoDoc struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty"`
	Codigo         string                `bson:"codigo"`
	Nombre         string                `bson:"nombre"`
	Descripcion    string                `bson:"descripcion"`
	Categoria      string                `bson:"categoria"`
	Subcategoria   string                `bson:"subcategoria"`
	Precio         primitive.Decimal128  `bson:"precio"`
	PrecioAlquiler *primitive.Decimal128 `bson:"precio_alquiler,omitempty"`
	Stock          int                   `bson:"stock"`
	StockMinimo    int                   `bson:"stock_minimo"`
	Tallas         []string              `bson:"tallas"`
	Colores        []string              `bson:"colores"`
	Imagenes       []string              `bson:"imagenes"`
	Activo         bool                  `bson:"activo"`
	Destacado      bool                  `bson:"destacado"`
	CreatedAt      time.Time             `bson:"created_at"`
	UpdatedAt      time.Time             `bson:"updated_at"`
}

func (d *productoDoc) aEntidad() *entity.Producto {
	return &entity.Producto{
		ID:             d.ID.Hex(),
		Codigo:         d.Codigo,
		Nombre:         d.Nombre,
		Descripcion:    d.Descripcion,
		Categoria:      d.Categoria,
		Subcategoria:   d.Subcategoria,
		Precio:         deDecimal128(d.Precio),
		PrecioAlquiler: deDecimal128Ptr(d.PrecioAlquiler),
		Stock:          d.Stock,
		StockMinimo:    d.StockMinimo,
		Tallas:         d.Tallas,
		Colores:        d.Colores,
		Imagenes:       d.Imagenes,
		Activo:         d.Activo,
		Destacado:      d.Destacado,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func aProductoDoc(p *entity.Producto) *productoDoc {
	return &productoDoc{
		Codigo:         p.Codigo,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		Categoria:      p.Categoria,
		Subcategoria:   p.Subcategoria,
		Precio:         aDecimal128(p.Precio),
		PrecioAlquiler: aDecimal128Ptr(p.PrecioAlquiler),
		Stock:          p.Stock,
		StockMinimo:    p.StockMinimo,
		Tallas:         p.Tallas,
		Colores:        p.Colores,
		Imagenes:       p.Imagenes,
		Activo:         p.Activo,
		Destacado:      p.Destacado,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ProductoRepo implementación de ProductoRepository sobre MongoDB.
type ProductoRepo struct {
	col *mongo.Collection
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(db *mongo.Database) *ProductoRepo {
	return &ProductoRepo{col: db.Collection(ColProductos)}
}

// GetAll devuelve todos los productos ordenados por fecha de creación.
func (r *ProductoRepo) GetAll(ctx context.Context) ([]*entity.Producto, error) {
	return r.find(ctx, bson.M{})
}

// GetByID devuelve el producto o (nil, nil) si no existe. Un ID que no es
// un ObjectID válido cuenta como no encontrado.
func (r *ProductoRepo) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc productoDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return doc.aEntidad(), nil
}

// Create inserta el producto y copia el ObjectID generado a la entidad.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	res, err := r.col.InsertOne(ctx, aProductoDoc(p))
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// Update reemplaza los campos del producto existente.
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil
	}
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": aProductoDoc(p)})
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina el producto. Devuelve false si no existía.
func (r *ProductoRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete producto: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// ListByCategoria filtra por categoría exacta.
func (r *ProductoRepo) ListByCategoria(ctx context.Context, categoria string) ([]*entity.Producto, error) {
	return r.find(ctx, bson.M{"categoria": categoria})
}

// ListBajoStock devuelve los productos con stock <= stock mínimo.
func (r *ProductoRepo) ListBajoStock(ctx context.Context) ([]*entity.Producto, error) {
	filter := bson.M{"$expr": bson.M{"$lte": bson.A{"$stock", "$stock_minimo"}}}
	return r.find(ctx, filter)
}

// AjustarStock suma delta al stock del producto con $inc.
func (r *ProductoRepo) AjustarStock(ctx context.Context, id string, delta int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"stock": delta}})
	if err != nil {
		return fmt.Errorf("ajustar stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductoRepo) find(ctx context.Context, filter bson.M) ([]*entity.Producto, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer cursor.Close(ctx)
	var list []*entity.Producto
	for cursor.Next(ctx) {
		var doc productoDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode producto: %w", err)
		}
		list = append(list, doc.aEntidad())
	}
	return list, cursor.Err()
}
