package ventas

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/violetta-moda/violetta-api/internal/domain/entity"
)

// LineaComprobante línea de transacción ya resuelta (con nombre de producto)
// para el comprobante imprimible.
type LineaComprobante struct {
	NombreProducto string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Subtotal precio unitario por cantidad.
func (l LineaComprobante) Subtotal() decimal.Decimal {
	return l.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// GeneradorComprobante puerto hacia el generador de PDF.
type GeneradorComprobante interface {
	Generar(t *entity.Transaccion, cliente *entity.Cliente, lineas []LineaComprobante) ([]byte, error)
}

// Comprobante genera el PDF del comprobante de una transacción. Devuelve
// (nil, nil) si la transacción no existe. Si el cliente o algún producto ya
// fueron eliminados el comprobante sale con los datos que queden.
func (uc *TransaccionUseCase) Comprobante(ctx context.Context, id string) ([]byte, error) {
	t, err := uc.transacciones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	cliente, err := uc.clientes.GetByID(ctx, t.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		cliente = &entity.Cliente{ID: t.ClienteID, Nombre: "Cliente eliminado"}
	}
	lineas := make([]LineaComprobante, 0, len(t.Items))
	for _, it := range t.Items {
		nombre := it.ProductoID
		p, err := uc.productos.GetByID(ctx, it.ProductoID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			nombre = p.Nombre
		}
		lineas = append(lineas, LineaComprobante{
			NombreProducto: nombre,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.Precio,
		})
	}
	return uc.comprobantes.Generar(t, cliente, lineas)
}
