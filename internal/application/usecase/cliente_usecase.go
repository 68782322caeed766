package usecase

import (
	"context"
	"time"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
	"github.com/violetta-moda/violetta-api/pkg/texto"
)

// ClienteUseCase casos de uso CRUD para clientes. El historial de compras y
// alquileres lo mantiene el caso de uso de transacciones.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente con historial vacío.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	now := time.Now()
	c := &entity.Cliente{
		Nombre:     in.Nombre,
		Email:      in.Email,
		Telefono:   in.Telefono,
		Direccion:  in.Direccion,
		Ciudad:     in.Ciudad,
		Compras:    []string{},
		Alquileres: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return dto.NewClienteResponse(c), nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return dto.NewClienteResponse(c), nil
}

// List lista clientes, con búsqueda opcional insensible a tildes sobre
// nombre, email y ciudad.
func (uc *ClienteUseCase) List(ctx context.Context, buscar string) ([]*dto.ClienteResponse, error) {
	clientes, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		if buscar != "" && !texto.Contiene(c.Nombre, buscar) &&
			!texto.Contiene(c.Email, buscar) && !texto.Contiene(c.Ciudad, buscar) {
			continue
		}
		out = append(out, dto.NewClienteResponse(c))
	}
	return out, nil
}

// Update aplica una actualización parcial. Devuelve (nil, nil) si no existe.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		c.Direccion = *in.Direccion
	}
	if in.Ciudad != nil {
		c.Ciudad = *in.Ciudad
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return dto.NewClienteResponse(c), nil
}

// Delete elimina un cliente. Devuelve false si no existía.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
