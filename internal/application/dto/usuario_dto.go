package dto

import (
	"net/mail"
	"time"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
)

// CreateUsuarioRequest entrada para crear un usuario. La contraseña llega en
// claro y se guarda solo su hash bcrypt.
type CreateUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"omitempty,oneof=admin vendedor"`
}

// Validar devuelve los errores de campo del payload, vacío si es válido.
func (r *CreateUsuarioRequest) Validar() []CampoError {
	var campos []CampoError
	if r.Nombre == "" {
		campos = append(campos, CampoError{Campo: "nombre", Mensaje: "es requerido"})
	}
	if r.Email == "" {
		campos = append(campos, CampoError{Campo: "email", Mensaje: "es requerido"})
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		campos = append(campos, CampoError{Campo: "email", Mensaje: "no es un email válido"})
	}
	if len(r.Password) < 8 {
		campos = append(campos, CampoError{Campo: "password", Mensaje: "mínimo 8 caracteres"})
	}
	if r.Rol != "" && r.Rol != entity.RolAdmin && r.Rol != entity.RolVendedor {
		campos = append(campos, CampoError{Campo: "rol", Mensaje: "debe ser admin o vendedor"})
	}
	return campos
}

// UpdateUsuarioRequest entrada parcial para actualizar un usuario.
type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Rol      *string `json:"rol"`
	Activo   *bool   `json:"activo"`
}

// UsuarioResponse salida de un usuario. Nunca incluye el hash.
type UsuarioResponse struct {
	ID           string     `json:"id"`
	Nombre       string     `json:"nombre"`
	Email        string     `json:"email"`
	Rol          string     `json:"rol"`
	Activo       bool       `json:"activo"`
	UltimoAcceso *time.Time `json:"ultimoAcceso,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
