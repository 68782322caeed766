package memoria

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/violetta-moda/violetta-api/internal/domain"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación en memoria de UsuarioRepository.
// La unicidad del email se verifica dentro de Create bajo el lock de
// escritura, para que dos altas concurrentes con el mismo email no puedan
// pasar ambas.
type UsuarioRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Usuario
	seq   int
}

// NewUsuarioRepository construye el repo en memoria.
func NewUsuarioRepository() *UsuarioRepo {
	return &UsuarioRepo{items: make(map[string]*entity.Usuario)}
}

// GetAll devuelve todos los usuarios ordenados por fecha de creación.
func (r *UsuarioRepo) GetAll(ctx context.Context) ([]*entity.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Usuario, 0, len(r.items))
	for _, u := range r.items {
		list = append(list, cloneUsuario(u))
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

// GetByID devuelve el usuario o (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneUsuario(u), nil
}

// GetByEmail devuelve el usuario con ese email o (nil, nil).
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u := r.buscarPorEmail(email); u != nil {
		return cloneUsuario(u), nil
	}
	return nil, nil
}

// Create persiste el usuario con ID secuencial USR_{n}. Devuelve
// domain.ErrEmailAlreadyExists si el email ya está registrado; la
// comprobación ocurre bajo el mismo lock que la inserción.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.buscarPorEmail(u.Email) != nil {
		return domain.ErrEmailAlreadyExists
	}
	r.seq++
	u.ID = fmt.Sprintf("USR_%d", r.seq)
	r.items[u.ID] = cloneUsuario(u)
	return nil
}

// Update reemplaza el usuario si existe.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[u.ID]; !ok {
		return nil
	}
	if existente := r.buscarPorEmail(u.Email); existente != nil && existente.ID != u.ID {
		return domain.ErrEmailAlreadyExists
	}
	r.items[u.ID] = cloneUsuario(u)
	return nil
}

// Delete elimina el usuario. Devuelve false si no existía.
func (r *UsuarioRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// ActualizarUltimoAcceso registra la fecha del último login.
func (r *UsuarioRepo) ActualizarUltimoAcceso(ctx context.Context, id string, t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.UltimoAcceso = &t
	return nil
}

// buscarPorEmail requiere el lock tomado por el llamador.
func (r *UsuarioRepo) buscarPorEmail(email string) *entity.Usuario {
	for _, u := range r.items {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

func cloneUsuario(u *entity.Usuario) *entity.Usuario {
	c := *u
	if u.UltimoAcceso != nil {
		ua := *u.UltimoAcceso
		c.UltimoAcceso = &ua
	}
	return &c
}
