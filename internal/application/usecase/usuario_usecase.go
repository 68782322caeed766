package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso CRUD para usuarios del panel. Las contraseñas
// se guardan siempre como hash bcrypt; las respuestas nunca llevan el hash.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create crea un usuario activo. Si no se indica rol se asigna vendedor.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolVendedor
	}
	now := time.Now()
	u := &entity.Usuario{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return dto.NewUsuarioResponse(u), nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return dto.NewUsuarioResponse(u), nil
}

// List lista todos los usuarios.
func (uc *UsuarioUseCase) List(ctx context.Context) ([]*dto.UsuarioResponse, error) {
	usuarios, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, dto.NewUsuarioResponse(u))
	}
	return out, nil
}

// Update aplica una actualización parcial. Si llega password se rehashea.
// Devuelve (nil, nil) si el usuario no existe.
func (uc *UsuarioUseCase) Update(ctx context.Context, id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		u.Nombre = *in.Nombre
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash de contraseña: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if in.Rol != nil {
		u.Rol = *in.Rol
	}
	if in.Activo != nil {
		u.Activo = *in.Activo
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return dto.NewUsuarioResponse(u), nil
}

// Delete elimina un usuario. Devuelve false si no existía.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// EnsureAdmin garantiza que exista un administrador inicial. No hace nada si
// faltan las credenciales de arranque o si el email ya está registrado.
func (uc *UsuarioUseCase) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	existente, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("buscar admin inicial: %w", err)
	}
	if existente != nil {
		return nil
	}
	_, err = uc.Create(ctx, dto.CreateUsuarioRequest{
		Nombre:   "Administrador",
		Email:    email,
		Password: password,
		Rol:      entity.RolAdmin,
	})
	return err
}
