package repository

import (
	"context"
	"time"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario.
// Create debe garantizar la unicidad del email de forma atómica: en memoria
// bajo el lock de escritura, en MongoDB vía índice único. Devuelve
// domain.ErrEmailAlreadyExists en caso de duplicado.
type UsuarioRepository interface {
	GetAll(ctx context.Context) ([]*entity.Usuario, error)
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Create(ctx context.Context, u *entity.Usuario) error
	Update(ctx context.Context, u *entity.Usuario) error
	Delete(ctx context.Context, id string) (bool, error)
	ActualizarUltimoAcceso(ctx context.Context, id string, t time.Time) error
}
