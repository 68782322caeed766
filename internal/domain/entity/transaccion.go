package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TipoVenta    = "venta"
	TipoAlquiler = "alquiler"
)

// Estados de transacción.
const (
	EstadoCompletada = "completada"
	EstadoPendiente  = "pendiente"
	EstadoCancelada  = "cancelada"
)

// ItemTransaccion una línea de la transacción.
type ItemTransaccion struct {
	ProductoID string
	Cantidad   int
	Precio     decimal.Decimal // precio unitario aplicado
}

// Transaccion representa una venta o un alquiler con sus líneas.
// Crearla descuenta stock de cada producto; eliminarla lo restaura
// (política uniforme entre backends, aplicada por el caso de uso).
type Transaccion struct {
	ID              string
	Tipo            string // venta | alquiler
	ClienteID       string
	Items           []ItemTransaccion
	Total           decimal.Decimal
	Estado          string // completada | pendiente | cancelada
	MetodoPago      string
	FechaDevolucion *time.Time // solo alquileres
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
