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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación en memoria de ProductoRepository.
type ProductoRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Producto
	seq   int
}

// NewProductoRepository construye el repo en memoria.
func NewProductoRepository() *ProductoRepo {
	return &ProductoRepo{items: make(map[string]*entity.Producto)}
}

// GetAll devuelve todos los productos ordenados por fecha de creación.
func (r *ProductoRepo) GetAll(ctx context.Context) ([]*entity.Producto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Producto, 0, len(r.items))
	for _, p := range r.items {
		list = append(list, cloneProducto(p))
	}
	sortProductos(list)
	return list, nil
}

// GetByID devuelve el producto o (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneProducto(p), nil
}

// Create persiste el producto y le asigna un ID secuencial PROD_{n}.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = fmt.Sprintf("PROD_%d", r.seq)
	r.items[p.ID] = cloneProducto(p)
	return nil
}

// Update reemplaza el producto si existe; si no, no hace nada (el caso de
// uso resuelve el not-found con GetByID previo).
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return nil
	}
	r.items[p.ID] = cloneProducto(p)
	return nil
}

// Delete elimina el producto. Devuelve false si no existía.
func (r *ProductoRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// ListByCategoria filtra por categoría exacta.
func (r *ProductoRepo) ListByCategoria(ctx context.Context, categoria string) ([]*entity.Producto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Producto
	for _, p := range r.items {
		if p.Categoria == categoria {
			list = append(list, cloneProducto(p))
		}
	}
	sortProductos(list)
	return list, nil
}

// ListBajoStock devuelve los productos con stock <= stock mínimo.
func (r *ProductoRepo) ListBajoStock(ctx context.Context) ([]*entity.Producto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Producto
	for _, p := range r.items {
		if p.BajoStock() {
			list = append(list, cloneProducto(p))
		}
	}
	sortProductos(list)
	return list, nil
}

// AjustarStock suma delta al stock del producto.
func (r *ProductoRepo) AjustarStock(ctx context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += delta
	return nil
}

func sortProductos(list []*entity.Producto) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}

func cloneProducto(p *entity.Producto) *entity.Producto {
	c := *p
	c.Tallas = append([]string(nil), p.Tallas...)
	c.Colores = append([]string(nil), p.Colores...)
	c.Imagenes = append([]string(nil), p.Imagenes...)
	if p.PrecioAlquiler != nil {
		pa := *p.PrecioAlquiler
		c.PrecioAlquiler = &pa
	}
	return &c
}
