package usecase

import (
	"context"
	"time"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
)

// EventoUseCase casos de uso para la bitácora de auditoría. Los eventos son
// append-only: no exponen actualización ni borrado.
type EventoUseCase struct {
	repo repository.EventoRepository
}

// NewEventoUseCase construye el caso de uso.
func NewEventoUseCase(repo repository.EventoRepository) *EventoUseCase {
	return &EventoUseCase{repo: repo}
}

// Create registra un evento de auditoría.
func (uc *EventoUseCase) Create(ctx context.Context, in dto.CreateEventoRequest) (*dto.EventoResponse, error) {
	e := &entity.Evento{
		Tipo:        in.Tipo,
		UsuarioID:   in.UsuarioID,
		Descripcion: in.Descripcion,
		EntidadTipo: in.EntidadTipo,
		EntidadID:   in.EntidadID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return dto.NewEventoResponse(e), nil
}

// GetByID obtiene un evento por ID. Devuelve (nil, nil) si no existe.
func (uc *EventoUseCase) GetByID(ctx context.Context, id string) (*dto.EventoResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return dto.NewEventoResponse(e), nil
}

// List lista eventos, más recientes primero, filtrables por usuario actor o
// por entidad objetivo (tipo + id).
func (uc *EventoUseCase) List(ctx context.Context, usuarioID, entidadTipo, entidadID string) ([]*dto.EventoResponse, error) {
	var (
		eventos []*entity.Evento
		err     error
	)
	switch {
	case usuarioID != "":
		eventos, err = uc.repo.ListByUsuario(ctx, usuarioID)
	case entidadTipo != "" && entidadID != "":
		eventos, err = uc.repo.ListByEntidad(ctx, entidadTipo, entidadID)
	default:
		eventos, err = uc.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EventoResponse, 0, len(eventos))
	for _, e := range eventos {
		out = append(out, dto.NewEventoResponse(e))
	}
	return out, nil
}
