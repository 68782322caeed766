// Package ventas concentra la política de efectos secundarios de las
// transacciones: descuento y restauración de stock e historial del cliente.
// La política es idéntica con cualquier backend de almacenamiento.
package ventas

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/domain"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
)

// MetodoPagoDefecto se aplica cuando la petición no indica método de pago.
const MetodoPagoDefecto = "efectivo"

// TransaccionUseCase casos de uso de ventas y alquileres.
type TransaccionUseCase struct {
	transacciones repository.TransaccionRepository
	productos     repository.ProductoRepository
	clientes      repository.ClienteRepository
	comprobantes  GeneradorComprobante
}

// NewTransaccionUseCase construye el caso de uso.
func NewTransaccionUseCase(
	transacciones repository.TransaccionRepository,
	productos repository.ProductoRepository,
	clientes repository.ClienteRepository,
	comprobantes GeneradorComprobante,
) *TransaccionUseCase {
	return &TransaccionUseCase{
		transacciones: transacciones,
		productos:     productos,
		clientes:      clientes,
		comprobantes:  comprobantes,
	}
}

// Create registra una venta o alquiler: valida cliente, productos y stock,
// calcula el total, descuenta stock línea a línea y añade la transacción al
// historial del cliente. Los pasos no son atómicos entre sí; el orden
// (validar todo, insertar, luego efectos) minimiza los estados parciales.
func (uc *TransaccionUseCase) Create(ctx context.Context, in dto.CreateTransaccionRequest) (*dto.TransaccionResponse, error) {
	cliente, err := uc.clientes.GetByID(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.ClienteID)
	}

	items := make([]entity.ItemTransaccion, 0, len(in.Items))
	total := decimal.Zero
	for _, linea := range in.Items {
		p, err := uc.productos.GetByID(ctx, linea.ProductoID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, linea.ProductoID)
		}
		if p.Stock < linea.Cantidad {
			return nil, fmt.Errorf("%w: %s (disponible %d, pedido %d)",
				domain.ErrInsufficientStock, p.Nombre, p.Stock, linea.Cantidad)
		}
		precio := precioLinea(in.Tipo, p, linea.Precio)
		items = append(items, entity.ItemTransaccion{
			ProductoID: p.ID,
			Cantidad:   linea.Cantidad,
			Precio:     precio,
		})
		total = total.Add(precio.Mul(decimal.NewFromInt(int64(linea.Cantidad))))
	}

	metodoPago := in.MetodoPago
	if metodoPago == "" {
		metodoPago = MetodoPagoDefecto
	}
	estado := entity.EstadoCompletada
	if in.Tipo == entity.TipoAlquiler {
		estado = entity.EstadoPendiente
	}
	now := time.Now()
	t := &entity.Transaccion{
		Tipo:            in.Tipo,
		ClienteID:       in.ClienteID,
		Items:           items,
		Total:           total,
		Estado:          estado,
		MetodoPago:      metodoPago,
		FechaDevolucion: in.FechaDevolucion,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.transacciones.Create(ctx, t); err != nil {
		return nil, err
	}
	for _, it := range t.Items {
		if err := uc.productos.AjustarStock(ctx, it.ProductoID, -it.Cantidad); err != nil {
			return nil, fmt.Errorf("descontar stock de %s: %w", it.ProductoID, err)
		}
	}
	if err := uc.clientes.AgregarTransaccion(ctx, t.ClienteID, t.ID, t.Tipo); err != nil {
		return nil, fmt.Errorf("historial del cliente %s: %w", t.ClienteID, err)
	}
	return dto.NewTransaccionResponse(t), nil
}

// GetByID obtiene una transacción por ID. Devuelve (nil, nil) si no existe.
func (uc *TransaccionUseCase) GetByID(ctx context.Context, id string) (*dto.TransaccionResponse, error) {
	t, err := uc.transacciones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return dto.NewTransaccionResponse(t), nil
}

// List lista transacciones con filtros opcionales por tipo o por cliente.
func (uc *TransaccionUseCase) List(ctx context.Context, tipo, clienteID string) ([]*dto.TransaccionResponse, error) {
	var (
		transacciones []*entity.Transaccion
		err           error
	)
	switch {
	case tipo != "":
		transacciones, err = uc.transacciones.ListByTipo(ctx, tipo)
	case clienteID != "":
		transacciones, err = uc.transacciones.ListByCliente(ctx, clienteID)
	default:
		transacciones, err = uc.transacciones.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransaccionResponse, 0, len(transacciones))
	for _, t := range transacciones {
		out = append(out, dto.NewTransaccionResponse(t))
	}
	return out, nil
}

// Update solo permite cambiar estado, método de pago y fecha de devolución.
// Las líneas no se editan: el stock descontado quedaría desalineado.
// Devuelve (nil, nil) si la transacción no existe.
func (uc *TransaccionUseCase) Update(ctx context.Context, id string, in dto.UpdateTransaccionRequest) (*dto.TransaccionResponse, error) {
	t, err := uc.transacciones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if in.Estado != nil {
		switch *in.Estado {
		case entity.EstadoCompletada, entity.EstadoPendiente, entity.EstadoCancelada:
			t.Estado = *in.Estado
		default:
			return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, *in.Estado)
		}
	}
	if in.MetodoPago != nil {
		t.MetodoPago = *in.MetodoPago
	}
	if in.FechaDevolucion != nil {
		t.FechaDevolucion = in.FechaDevolucion
	}
	t.UpdatedAt = time.Now()
	if err := uc.transacciones.Update(ctx, t); err != nil {
		return nil, err
	}
	return dto.NewTransaccionResponse(t), nil
}

// Delete elimina una transacción restaurando el stock de cada línea y
// retirándola del historial del cliente. Devuelve false si no existía.
func (uc *TransaccionUseCase) Delete(ctx context.Context, id string) (bool, error) {
	t, err := uc.transacciones.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, nil
	}
	for _, it := range t.Items {
		if err := uc.productos.AjustarStock(ctx, it.ProductoID, it.Cantidad); err != nil &&
			!errors.Is(err, domain.ErrNotFound) {
			return false, fmt.Errorf("restaurar stock de %s: %w", it.ProductoID, err)
		}
	}
	// Si el cliente ya no existe se sigue adelante con el borrado.
	if err := uc.clientes.QuitarTransaccion(ctx, t.ClienteID, t.ID, t.Tipo); err != nil &&
		!errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("historial del cliente %s: %w", t.ClienteID, err)
	}
	return uc.transacciones.Delete(ctx, id)
}

// precioLinea resuelve el precio unitario de una línea: el explícito de la
// petición si viene, si no el de alquiler del producto (para alquileres que
// lo tengan) y en último término el precio de venta.
func precioLinea(tipo string, p *entity.Producto, explicito *decimal.Decimal) decimal.Decimal {
	if explicito != nil {
		return *explicito
	}
	if tipo == entity.TipoAlquiler && p.PrecioAlquiler != nil {
		return *p.PrecioAlquiler
	}
	return p.Precio
}
