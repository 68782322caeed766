package memoria

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/violetta-moda/violetta-api/internal/domain"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación en memoria de ClienteRepository.
type ClienteRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Cliente
	seq   int
}

// NewClienteRepository construye el repo en memoria.
func NewClienteRepository() *ClienteRepo {
	return &ClienteRepo{items: make(map[string]*entity.Cliente)}
}

// GetAll devuelve todos los clientes ordenados por fecha de creación.
func (r *ClienteRepo) GetAll(ctx context.Context) ([]*entity.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Cliente, 0, len(r.items))
	for _, c := range r.items {
		list = append(list, cloneCliente(c))
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

// GetByID devuelve el cliente o (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneCliente(c), nil
}

// Create persiste el cliente y le asigna un ID secuencial CLI_{n}.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c.ID = fmt.Sprintf("CLI_%d", r.seq)
	r.items[c.ID] = cloneCliente(c)
	return nil
}

// Update reemplaza el cliente si existe.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return nil
	}
	r.items[c.ID] = cloneCliente(c)
	return nil
}

// Delete elimina el cliente. Devuelve false si no existía.
func (r *ClienteRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// AgregarTransaccion añade el ID al historial de compras o alquileres.
func (r *ClienteRepo) AgregarTransaccion(ctx context.Context, clienteID, transaccionID, tipo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[clienteID]
	if !ok {
		return domain.ErrNotFound
	}
	if tipo == entity.TipoAlquiler {
		c.Alquileres = append(c.Alquileres, transaccionID)
	} else {
		c.Compras = append(c.Compras, transaccionID)
	}
	return nil
}

// QuitarTransaccion elimina el ID del historial correspondiente.
func (r *ClienteRepo) QuitarTransaccion(ctx context.Context, clienteID, transaccionID, tipo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[clienteID]
	if !ok {
		return domain.ErrNotFound
	}
	if tipo == entity.TipoAlquiler {
		c.Alquileres = quitar(c.Alquileres, transaccionID)
	} else {
		c.Compras = quitar(c.Compras, transaccionID)
	}
	return nil
}

func quitar(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func cloneCliente(c *entity.Cliente) *entity.Cliente {
	cc := *c
	cc.Compras = append([]string(nil), c.Compras...)
	cc.Alquileres = append([]string(nil), c.Alquileres...)
	return &cc
}
