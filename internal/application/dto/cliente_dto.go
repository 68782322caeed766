package dto

import (
	"net/mail"
	"time"
)

// CreateClienteRequest entrada para crear un cliente.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Ciudad    string `json:"ciudad"`
}

// Validar devuelve los errores de campo del payload, vacío si es válido.
func (r *CreateClienteRequest) Validar() []CampoError {
	var campos []CampoError
	if r.Nombre == "" {
		campos = append(campos, CampoError{Campo: "nombre", Mensaje: "es requerido"})
	}
	if r.Email == "" {
		campos = append(campos, CampoError{Campo: "email", Mensaje: "es requerido"})
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		campos = append(campos, CampoError{Campo: "email", Mensaje: "no es un email válido"})
	}
	return campos
}

// UpdateClienteRequest entrada parcial para actualizar un cliente.
type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Email     *string `json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	Ciudad    *string `json:"ciudad"`
}

// ClienteResponse salida de un cliente, historial incluido.
type ClienteResponse struct {
	ID         string    `json:"id"`
	Nombre     string    `json:"nombre"`
	Email      string    `json:"email"`
	Telefono   string    `json:"telefono"`
	Direccion  string    `json:"direccion"`
	Ciudad     string    `json:"ciudad"`
	Compras    []string  `json:"compras"`
	Alquileres []string  `json:"alquileres"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
