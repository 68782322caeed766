package entity

import "time"

// Tipos de evento de auditoría más comunes.
const (
	EventoLogin        = "login"
	EventoCreacion     = "creacion"
	EventoModificacion = "modificacion"
	EventoEliminacion  = "eliminacion"
)

// Evento es una entrada de auditoría append-only: quién hizo qué y sobre
// qué entidad. No existe actualización ni borrado de eventos.
type Evento struct {
	ID          string
	Tipo        string
	UsuarioID   string
	Descripcion string
	EntidadTipo string // producto, cliente, transaccion, usuario
	EntidadID   string
	CreatedAt   time.Time
}
