package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
)

// ItemTransaccionRequest línea de una transacción. Si Precio viene vacío se
// toma el precio vigente del producto.
type ItemTransaccionRequest struct {
	ProductoID string           `json:"productoId" validate:"required"`
	Cantidad   int              `json:"cantidad" validate:"min=1"`
	Precio     *decimal.Decimal `json:"precio,omitempty"`
}

// CreateTransaccionRequest entrada para registrar una venta o alquiler.
type CreateTransaccionRequest struct {
	Tipo            string                   `json:"tipo" validate:"required,oneof=venta alquiler"`
	ClienteID       string                   `json:"clienteId" validate:"required"`
	Items           []ItemTransaccionRequest `json:"items" validate:"required,min=1"`
	MetodoPago      string                   `json:"metodoPago"`
	FechaDevolucion *time.Time               `json:"fechaDevolucion,omitempty"`
}

// Validar devuelve los errores de campo del payload, vacío si es válido.
func (r *CreateTransaccionRequest) Validar() []CampoError {
	var campos []CampoError
	if r.Tipo != entity.TipoVenta && r.Tipo != entity.TipoAlquiler {
		campos = append(campos, CampoError{Campo: "tipo", Mensaje: "debe ser venta o alquiler"})
	}
	if r.ClienteID == "" {
		campos = append(campos, CampoError{Campo: "clienteId", Mensaje: "es requerido"})
	}
	if len(r.Items) == 0 {
		campos = append(campos, CampoError{Campo: "items", Mensaje: "debe incluir al menos una línea"})
	}
	for _, it := range r.Items {
		if it.ProductoID == "" {
			campos = append(campos, CampoError{Campo: "items.productoId", Mensaje: "es requerido"})
			break
		}
		if it.Cantidad <= 0 {
			campos = append(campos, CampoError{Campo: "items.cantidad", Mensaje: "debe ser mayor que cero"})
			break
		}
		if it.Precio != nil && it.Precio.IsNegative() {
			campos = append(campos, CampoError{Campo: "items.precio", Mensaje: "no puede ser negativo"})
			break
		}
	}
	if r.Tipo == entity.TipoAlquiler && r.FechaDevolucion == nil {
		campos = append(campos, CampoError{Campo: "fechaDevolucion", Mensaje: "es requerida para alquileres"})
	}
	return campos
}

// UpdateTransaccionRequest actualización restringida: las líneas no se pueden
// editar después de creadas para no desalinear el stock.
type UpdateTransaccionRequest struct {
	Estado          *string    `json:"estado"`
	MetodoPago      *string    `json:"metodoPago"`
	FechaDevolucion *time.Time `json:"fechaDevolucion"`
}

// ItemTransaccionResponse línea de transacción en respuestas.
type ItemTransaccionResponse struct {
	ProductoID string          `json:"productoId"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
}

// TransaccionResponse salida de una transacción.
type TransaccionResponse struct {
	ID              string                    `json:"id"`
	Tipo            string                    `json:"tipo"`
	ClienteID       string                    `json:"clienteId"`
	Items           []ItemTransaccionResponse `json:"items"`
	Total           decimal.Decimal           `json:"total"`
	Estado          string                    `json:"estado"`
	MetodoPago      string                    `json:"metodoPago"`
	FechaDevolucion *time.Time                `json:"fechaDevolucion,omitempty"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
}
