package memoria

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
)

var _ repository.EventoRepository = (*EventoRepo)(nil)

// EventoRepo implementación en memoria de EventoRepository (append-only).
type EventoRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Evento
	seq   int
}

// NewEventoRepository construye el repo en memoria.
func NewEventoRepository() *EventoRepo {
	return &EventoRepo{items: make(map[string]*entity.Evento)}
}

// GetAll devuelve todos los eventos, más recientes primero.
func (r *EventoRepo) GetAll(ctx context.Context) ([]*entity.Evento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Evento, 0, len(r.items))
	for _, e := range r.items {
		copia := *e
		list = append(list, &copia)
	}
	sortEventos(list)
	return list, nil
}

// GetByID devuelve el evento o (nil, nil) si no existe.
func (r *EventoRepo) GetByID(ctx context.Context, id string) (*entity.Evento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

// Create persiste el evento con ID secuencial EVT_{n}.
func (r *EventoRepo) Create(ctx context.Context, e *entity.Evento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	e.ID = fmt.Sprintf("EVT_%d", r.seq)
	copia := *e
	r.items[e.ID] = &copia
	return nil
}

// ListByUsuario filtra por usuario actor.
func (r *EventoRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]*entity.Evento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Evento
	for _, e := range r.items {
		if e.UsuarioID == usuarioID {
			copia := *e
			list = append(list, &copia)
		}
	}
	sortEventos(list)
	return list, nil
}

// ListByEntidad filtra por entidad objetivo (tipo + id).
func (r *EventoRepo) ListByEntidad(ctx context.Context, entidadTipo, entidadID string) ([]*entity.Evento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Evento
	for _, e := range r.items {
		if e.EntidadTipo == entidadTipo && e.EntidadID == entidadID {
			copia := *e
			list = append(list, &copia)
		}
	}
	sortEventos(list)
	return list, nil
}

func sortEventos(list []*entity.Evento) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
