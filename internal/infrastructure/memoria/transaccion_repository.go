package memoria

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
)

var _ repository.TransaccionRepository = (*TransaccionRepo)(nil)

// TransaccionRepo implementación en memoria de TransaccionRepository.
type TransaccionRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Transaccion
	seq   int
}

// NewTransaccionRepository construye el repo en memoria.
func NewTransaccionRepository() *TransaccionRepo {
	return &TransaccionRepo{items: make(map[string]*entity.Transaccion)}
}

// GetAll devuelve todas las transacciones ordenadas por fecha de creación.
func (r *TransaccionRepo) GetAll(ctx context.Context) ([]*entity.Transaccion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Transaccion, 0, len(r.items))
	for _, t := range r.items {
		list = append(list, cloneTransaccion(t))
	}
	sortTransacciones(list)
	return list, nil
}

// GetByID devuelve la transacción o (nil, nil) si no existe.
func (r *TransaccionRepo) GetByID(ctx context.Context, id string) (*entity.Transaccion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneTransaccion(t), nil
}

// Create persiste la transacción y le asigna un ID secuencial TRX_{n}.
func (r *TransaccionRepo) Create(ctx context.Context, t *entity.Transaccion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t.ID = fmt.Sprintf("TRX_%d", r.seq)
	r.items[t.ID] = cloneTransaccion(t)
	return nil
}

// Update reemplaza la transacción si existe.
func (r *TransaccionRepo) Update(ctx context.Context, t *entity.Transaccion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[t.ID]; !ok {
		return nil
	}
	r.items[t.ID] = cloneTransaccion(t)
	return nil
}

// Delete elimina la transacción. Devuelve false si no existía.
func (r *TransaccionRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// ListByTipo filtra por tipo (venta | alquiler).
func (r *TransaccionRepo) ListByTipo(ctx context.Context, tipo string) ([]*entity.Transaccion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Transaccion
	for _, t := range r.items {
		if t.Tipo == tipo {
			list = append(list, cloneTransaccion(t))
		}
	}
	sortTransacciones(list)
	return list, nil
}

// ListByCliente filtra por cliente.
func (r *TransaccionRepo) ListByCliente(ctx context.Context, clienteID string) ([]*entity.Transaccion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Transaccion
	for _, t := range r.items {
		if t.ClienteID == clienteID {
			list = append(list, cloneTransaccion(t))
		}
	}
	sortTransacciones(list)
	return list, nil
}

func sortTransacciones(list []*entity.Transaccion) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}

func cloneTransaccion(t *entity.Transaccion) *entity.Transaccion {
	c := *t
	c.Items = append([]entity.ItemTransaccion(nil), t.Items...)
	if t.FechaDevolucion != nil {
		fd := *t.FechaDevolucion
		c.FechaDevolucion = &fd
	}
	return &c
}
