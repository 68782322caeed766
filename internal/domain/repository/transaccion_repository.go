package repository

import (
	"context"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
)

// TransaccionRepository define el puerto de persistencia para Transaccion.
// El descuento y la restauración de stock NO viven aquí: son política del
// caso de uso de ventas, idéntica para ambos backends.
type TransaccionRepository interface {
	GetAll(ctx context.Context) ([]*entity.Transaccion, error)
	GetByID(ctx context.Context, id string) (*entity.Transaccion, error)
	Create(ctx context.Context, t *entity.Transaccion) error
	Update(ctx context.Context, t *entity.Transaccion) error
	Delete(ctx context.Context, id string) (bool, error)
	ListByTipo(ctx context.Context, tipo string) ([]*entity.Transaccion, error)
	ListByCliente(ctx context.Context, clienteID string) ([]*entity.Transaccion, error)
}
