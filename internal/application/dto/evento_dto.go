package dto

import (
	"time"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
)

// CreateEventoRequest entrada para registrar un evento de auditoría.
// Los eventos son append-only: no hay actualización ni borrado.
type CreateEventoRequest struct {
	Tipo        string `json:"tipo" validate:"required,oneof=login creacion modificacion eliminacion"`
	UsuarioID   string `json:"usuarioId"`
	Descripcion string `json:"descripcion" validate:"required"`
	EntidadTipo string `json:"entidadTipo"`
	EntidadID   string `json:"entidadId"`
}

// Validar devuelve los errores de campo del payload, vacío si es válido.
func (r *CreateEventoRequest) Validar() []CampoError {
	var campos []CampoError
	switch r.Tipo {
	case entity.EventoLogin, entity.EventoCreacion, entity.EventoModificacion, entity.EventoEliminacion:
	default:
		campos = append(campos, CampoError{Campo: "tipo", Mensaje: "tipo de evento desconocido"})
	}
	if r.Descripcion == "" {
		campos = append(campos, CampoError{Campo: "descripcion", Mensaje: "es requerida"})
	}
	return campos
}

// EventoResponse salida de un evento de auditoría.
type EventoResponse struct {
	ID          string    `json:"id"`
	Tipo        string    `json:"tipo"`
	UsuarioID   string    `json:"usuarioId"`
	Descripcion string    `json:"descripcion"`
	EntidadTipo string    `json:"entidadTipo"`
	EntidadID   string    `json:"entidadId"`
	CreatedAt   time.Time `json:"createdAt"`
}
