package repository

import (
	"context"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// GetByID devuelve (nil, nil) si el producto no existe. Create asigna el ID
// según el backend (secuencial en memoria, ObjectID en MongoDB).
type ProductoRepository interface {
	GetAll(ctx context.Context) ([]*entity.Producto, error)
	GetByID(ctx context.Context, id string) (*entity.Producto, error)
	Create(ctx context.Context, p *entity.Producto) error
	Update(ctx context.Context, p *entity.Producto) error
	Delete(ctx context.Context, id string) (bool, error)
	ListByCategoria(ctx context.Context, categoria string) ([]*entity.Producto, error)
	ListBajoStock(ctx context.Context) ([]*entity.Producto, error)
	// AjustarStock suma delta (puede ser negativo) al stock del producto.
	AjustarStock(ctx context.Context, id string, delta int) error
}
