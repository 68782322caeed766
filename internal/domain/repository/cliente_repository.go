package repository

import (
	"context"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	GetAll(ctx context.Context) ([]*entity.Cliente, error)
	GetByID(ctx context.Context, id string) (*entity.Cliente, error)
	Create(ctx context.Context, c *entity.Cliente) error
	Update(ctx context.Context, c *entity.Cliente) error
	Delete(ctx context.Context, id string) (bool, error)
	// AgregarTransaccion añade el ID de la transacción al historial del
	// cliente (Compras o Alquileres según tipo).
	AgregarTransaccion(ctx context.Context, clienteID, transaccionID, tipo string) error
	// QuitarTransaccion elimina el ID del historial (al borrar la transacción).
	QuitarTransaccion(ctx context.Context, clienteID, transaccionID, tipo string) error
}
