// Package auth implementa el inicio de sesión del panel con bcrypt y JWT
// firmado. Todos los fallos de autenticación responden igual para no
// revelar si el email existe o si la cuenta está inactiva.
package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/domain"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
	"github.com/violetta-moda/violetta-api/pkg/config"
	"github.com/violetta-moda/violetta-api/pkg/jwt"
	"github.com/violetta-moda/violetta-api/pkg/logger"
)

// UseCase caso de uso de autenticación.
type UseCase struct {
	usuarios repository.UsuarioRepository
	eventos  repository.EventoRepository
	jwtCfg   config.JWTConfig
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	usuarios repository.UsuarioRepository,
	eventos repository.EventoRepository,
	jwtCfg config.JWTConfig,
	log *logger.Logger,
) *UseCase {
	return &UseCase{usuarios: usuarios, eventos: eventos, jwtCfg: jwtCfg, log: log}
}

// Login valida credenciales y devuelve un token firmado junto al usuario.
// Email desconocido, contraseña incorrecta y cuenta inactiva devuelven todos
// domain.ErrUnauthorized. Un login correcto sella ultimoAcceso y deja un
// evento de auditoría.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarios.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Activo {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	if err := uc.usuarios.ActualizarUltimoAcceso(ctx, u.ID, now); err != nil {
		return nil, fmt.Errorf("sellar último acceso: %w", err)
	}
	u.UltimoAcceso = &now

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("firmar token: %w", err)
	}

	// La auditoría no debe tumbar un login válido.
	evento := &entity.Evento{
		Tipo:        entity.EventoLogin,
		UsuarioID:   u.ID,
		Descripcion: "inicio de sesión de " + u.Email,
		EntidadTipo: "usuario",
		EntidadID:   u.ID,
		CreatedAt:   now,
	}
	if err := uc.eventos.Create(ctx, evento); err != nil {
		uc.log.Warn().Err(err).Str("usuario_id", u.ID).Msg("no se pudo registrar el evento de login")
	}

	return &dto.LoginResponse{
		Token:   token,
		Usuario: *dto.NewUsuarioResponse(u),
	}, nil
}
