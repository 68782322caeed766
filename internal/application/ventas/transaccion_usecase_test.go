package ventas_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/application/ventas"
	"github.com/violetta-moda/violetta-api/internal/domain"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/infrastructure/memoria"
)

// comprobanteFake evita depender del generador PDF real en los tests.
type comprobanteFake struct{}

func (comprobanteFake) Generar(*entity.Transaccion, *entity.Cliente, []ventas.LineaComprobante) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

type fixture struct {
	uc        *ventas.TransaccionUseCase
	productos *memoria.ProductoRepo
	clientes  *memoria.ClienteRepo
	producto  *entity.Producto
	cliente   *entity.Cliente
}

// nuevaFixture monta el caso de uso sobre los repos en memoria con un
// producto (stock 5) y un cliente ya creados.
func nuevaFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	productos := memoria.NewProductoRepository()
	clientes := memoria.NewClienteRepository()
	transacciones := memoria.NewTransaccionRepository()

	precioAlq := decimal.NewFromInt(80000)
	p := &entity.Producto{
		Codigo:         "VES-001",
		Nombre:         "Vestido gala azul",
		Categoria:      "vestidos",
		Precio:         decimal.NewFromInt(250000),
		PrecioAlquiler: &precioAlq,
		Stock:          5,
		StockMinimo:    2,
		Activo:         true,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, productos.Create(ctx, p))

	c := &entity.Cliente{Nombre: "María López", Email: "maria@example.com", CreatedAt: time.Now()}
	require.NoError(t, clientes.Create(ctx, c))

	return &fixture{
		uc:        ventas.NewTransaccionUseCase(transacciones, productos, clientes, comprobanteFake{}),
		productos: productos,
		clientes:  clientes,
		producto:  p,
		cliente:   c,
	}
}

func (f *fixture) stock(t *testing.T) int {
	t.Helper()
	p, err := f.productos.GetByID(context.Background(), f.producto.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func TestTransaccion_CreateVenta_DescuentaStockYRegistraHistorial(t *testing.T) {
	f := nuevaFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Create(ctx, dto.CreateTransaccionRequest{
		Tipo:      entity.TipoVenta,
		ClienteID: f.cliente.ID,
		Items: []dto.ItemTransaccionRequest{
			{ProductoID: f.producto.ID, Cantidad: 2},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.EstadoCompletada, resp.Estado, "una venta nace completada")
	assert.Equal(t, ventas.MetodoPagoDefecto, resp.MetodoPago)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(500000)),
		"total = precio de venta x cantidad, got %s", resp.Total)
	assert.Equal(t, 3, f.stock(t), "la venta de 2 unidades deja el stock en 3")

	cliente, err := f.clientes.GetByID(ctx, f.cliente.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{resp.ID}, cliente.Compras)
	assert.Empty(t, cliente.Alquileres)
}

func TestTransaccion_CreateAlquiler_UsaPrecioAlquilerYQuedaPendiente(t *testing.T) {
	f := nuevaFixture(t)
	ctx := context.Background()

	devolucion := time.Now().AddDate(0, 0, 3)
	resp, err := f.uc.Create(ctx, dto.CreateTransaccionRequest{
		Tipo:            entity.TipoAlquiler,
		ClienteID:       f.cliente.ID,
		Items:           []dto.ItemTransaccionRequest{{ProductoID: f.producto.ID, Cantidad: 1}},
		FechaDevolucion: &devolucion,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoPendiente, resp.Estado, "un alquiler nace pendiente")
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(80000)),
		"el alquiler usa el precio de alquiler del producto, got %s", resp.Total)
	require.NotNil(t, resp.FechaDevolucion)

	cliente, err := f.clientes.GetByID(ctx, f.cliente.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{resp.ID}, cliente.Alquileres)
}

func TestTransaccion_CreatePrecioExplicito_PrevaleceSobreElDelProducto(t *testing.T) {
	f := nuevaFixture(t)

	descuento := decimal.NewFromInt(200000)
	resp, err := f.uc.Create(context.Background(), dto.CreateTransaccionRequest{
		Tipo:      entity.TipoVenta,
		ClienteID: f.cliente.ID,
		Items: []dto.ItemTransaccionRequest{
			{ProductoID: f.producto.ID, Cantidad: 1, Precio: &descuento},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(descuento), "got %s", resp.Total)
}

func TestTransaccion_CreateStockInsuficiente_NoTieneEfectos(t *testing.T) {
	f := nuevaFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, dto.CreateTransaccionRequest{
		Tipo:      entity.TipoVenta,
		ClienteID: f.cliente.ID,
		Items: []dto.ItemTransaccionRequest{
			{ProductoID: f.producto.ID, Cantidad: 6},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 5, f.stock(t), "un intento rechazado no toca el stock")
	cliente, err := f.clientes.GetByID(ctx, f.cliente.ID)
	require.NoError(t, err)
	assert.Empty(t, cliente.Compras, "un intento rechazado no toca el historial")
}

func TestTransaccion_CreateClienteInexistente_RetornaNotFound(t *testing.T) {
	f := nuevaFixture(t)

	_, err := f.uc.Create(context.Background(), dto.CreateTransaccionRequest{
		Tipo:      entity.TipoVenta,
		ClienteID: "CLI_999",
		Items:     []dto.ItemTransaccionRequest{{ProductoID: f.producto.ID, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransaccion_Delete_RestauraStockYQuitaDelHistorial(t *testing.T) {
	f := nuevaFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Create(ctx, dto.CreateTransaccionRequest{
		Tipo:      entity.TipoVenta,
		ClienteID: f.cliente.ID,
		Items:     []dto.ItemTransaccionRequest{{ProductoID: f.producto.ID, Cantidad: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, 3, f.stock(t))

	ok, err := f.uc.Delete(ctx, resp.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 5, f.stock(t), "eliminar la transacción devuelve las 2 unidades")
	cliente, err := f.clientes.GetByID(ctx, f.cliente.ID)
	require.NoError(t, err)
	assert.Empty(t, cliente.Compras)

	borrada, err := f.uc.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Nil(t, borrada)
}

func TestTransaccion_DeleteConClienteYaEliminado_SigueAdelante(t *testing.T) {
	f := nuevaFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Create(ctx, dto.CreateTransaccionRequest{
		Tipo:      entity.TipoVenta,
		ClienteID: f.cliente.ID,
		Items:     []dto.ItemTransaccionRequest{{ProductoID: f.producto.ID, Cantidad: 1}},
	})
	require.NoError(t, err)

	// El cliente desaparece antes de anular la transacción.
	okCli, err := f.clientes.Delete(ctx, f.cliente.ID)
	require.NoError(t, err)
	require.True(t, okCli)

	ok, err := f.uc.Delete(ctx, resp.ID)
	require.NoError(t, err, "el historial de un cliente borrado no bloquea la anulación")
	assert.True(t, ok)
	assert.Equal(t, 5, f.stock(t))
}

func TestTransaccion_DeleteInexistente_RetornaFalse(t *testing.T) {
	f := nuevaFixture(t)
	ok, err := f.uc.Delete(context.Background(), "TRX_999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransaccion_Update_SoloCamposPermitidos(t *testing.T) {
	f := nuevaFixture(t)
	ctx := context.Background()

	devolucion := time.Now().AddDate(0, 0, 3)
	resp, err := f.uc.Create(ctx, dto.CreateTransaccionRequest{
		Tipo:            entity.TipoAlquiler,
		ClienteID:       f.cliente.ID,
		Items:           []dto.ItemTransaccionRequest{{ProductoID: f.producto.ID, Cantidad: 1}},
		FechaDevolucion: &devolucion,
	})
	require.NoError(t, err)

	estado := entity.EstadoCompletada
	pago := "transferencia"
	actualizada, err := f.uc.Update(ctx, resp.ID, dto.UpdateTransaccionRequest{
		Estado:     &estado,
		MetodoPago: &pago,
	})
	require.NoError(t, err)
	require.NotNil(t, actualizada)
	assert.Equal(t, entity.EstadoCompletada, actualizada.Estado)
	assert.Equal(t, "transferencia", actualizada.MetodoPago)
	assert.True(t, actualizada.Total.Equal(resp.Total), "el total no cambia en un update")
}

func TestTransaccion_UpdateEstadoInvalido_RetornaError(t *testing.T) {
	f := nuevaFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Create(ctx, dto.CreateTransaccionRequest{
		Tipo:      entity.TipoVenta,
		ClienteID: f.cliente.ID,
		Items:     []dto.ItemTransaccionRequest{{ProductoID: f.producto.ID, Cantidad: 1}},
	})
	require.NoError(t, err)

	malo := "devuelta"
	_, err = f.uc.Update(ctx, resp.ID, dto.UpdateTransaccionRequest{Estado: &malo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransaccion_UpdateInexistente_RetornaNilNil(t *testing.T) {
	f := nuevaFixture(t)
	estado := entity.EstadoCancelada
	resp, err := f.uc.Update(context.Background(), "TRX_999", dto.UpdateTransaccionRequest{Estado: &estado})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestTransaccion_ListPorTipoYPorCliente(t *testing.T) {
	f := nuevaFixture(t)
	ctx := context.Background()

	devolucion := time.Now().AddDate(0, 0, 3)
	_, err := f.uc.Create(ctx, dto.CreateTransaccionRequest{
		Tipo:      entity.TipoVenta,
		ClienteID: f.cliente.ID,
		Items:     []dto.ItemTransaccionRequest{{ProductoID: f.producto.ID, Cantidad: 1}},
	})
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, dto.CreateTransaccionRequest{
		Tipo:            entity.TipoAlquiler,
		ClienteID:       f.cliente.ID,
		Items:           []dto.ItemTransaccionRequest{{ProductoID: f.producto.ID, Cantidad: 1}},
		FechaDevolucion: &devolucion,
	})
	require.NoError(t, err)

	ventasList, err := f.uc.List(ctx, entity.TipoVenta, "")
	require.NoError(t, err)
	assert.Len(t, ventasList, 1)

	porCliente, err := f.uc.List(ctx, "", f.cliente.ID)
	require.NoError(t, err)
	assert.Len(t, porCliente, 2)

	todas, err := f.uc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}

func TestTransaccion_Comprobante(t *testing.T) {
	f := nuevaFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Create(ctx, dto.CreateTransaccionRequest{
		Tipo:      entity.TipoVenta,
		ClienteID: f.cliente.ID,
		Items:     []dto.ItemTransaccionRequest{{ProductoID: f.producto.ID, Cantidad: 1}},
	})
	require.NoError(t, err)

	pdf, err := f.uc.Comprobante(ctx, resp.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	ninguno, err := f.uc.Comprobante(ctx, "TRX_999")
	require.NoError(t, err)
	assert.Nil(t, ninguno, "transacción inexistente: (nil, nil)")
}
