package repository

import (
	"context"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
)

// EventoRepository define el puerto de persistencia para Evento.
// Append-only: no hay Update ni Delete.
type EventoRepository interface {
	GetAll(ctx context.Context) ([]*entity.Evento, error)
	GetByID(ctx context.Context, id string) (*entity.Evento, error)
	Create(ctx context.Context, e *entity.Evento) error
	ListByUsuario(ctx context.Context, usuarioID string) ([]*entity.Evento, error)
	ListByEntidad(ctx context.Context, entidadTipo, entidadID string) ([]*entity.Evento, error)
}
