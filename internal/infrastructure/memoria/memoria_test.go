package memoria_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/violetta-moda/violetta-api/internal/domain"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/infrastructure/memoria"
)

func productoDemo(codigo string) *entity.Producto {
	now := time.Now()
	return &entity.Producto{
		Codigo:      codigo,
		Nombre:      "Vestido gala azul",
		Categoria:   "vestidos",
		Precio:      decimal.NewFromInt(250000),
		Stock:       5,
		StockMinimo: 2,
		Tallas:      []string{"S", "M"},
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductoRepo_CreateAsignaIDSecuencial(t *testing.T) {
	repo := memoria.NewProductoRepository()
	ctx := context.Background()

	p1 := productoDemo("VES-001")
	require.NoError(t, repo.Create(ctx, p1))
	assert.Equal(t, "PROD_1", p1.ID, "el primer producto debe recibir PROD_1")

	p2 := productoDemo("VES-002")
	require.NoError(t, repo.Create(ctx, p2))
	assert.Equal(t, "PROD_2", p2.ID)

	guardado, err := repo.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.Equal(t, "VES-001", guardado.Codigo)
	assert.Equal(t, 5, guardado.Stock)
}

func TestProductoRepo_GetByIDInexistente_DevuelveNilNil(t *testing.T) {
	repo := memoria.NewProductoRepository()
	p, err := repo.GetByID(context.Background(), "PROD_999")
	require.NoError(t, err)
	assert.Nil(t, p, "un ID desconocido devuelve nil sin error")
}

func TestProductoRepo_ElRepoNoCompartePunteros(t *testing.T) {
	repo := memoria.NewProductoRepository()
	ctx := context.Background()

	p := productoDemo("VES-001")
	require.NoError(t, repo.Create(ctx, p))

	// Mutar la copia devuelta no debe afectar lo almacenado.
	leido, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	leido.Stock = 0
	leido.Tallas[0] = "XXL"

	otra, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, otra.Stock)
	assert.Equal(t, "S", otra.Tallas[0])
}

func TestProductoRepo_UpdateInexistente_NoHaceNada(t *testing.T) {
	repo := memoria.NewProductoRepository()
	ctx := context.Background()

	fantasma := productoDemo("VES-009")
	fantasma.ID = "PROD_77"
	require.NoError(t, repo.Update(ctx, fantasma))

	todos, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos, "un update de un ID desconocido no debe insertar nada")
}

func TestProductoRepo_DeleteEsIdempotente(t *testing.T) {
	repo := memoria.NewProductoRepository()
	ctx := context.Background()

	p := productoDemo("VES-001")
	require.NoError(t, repo.Create(ctx, p))

	ok, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok, "el segundo delete del mismo ID devuelve false")
}

func TestProductoRepo_AjustarStock(t *testing.T) {
	repo := memoria.NewProductoRepository()
	ctx := context.Background()

	p := productoDemo("VES-001")
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.AjustarStock(ctx, p.ID, -2))
	require.NoError(t, repo.AjustarStock(ctx, p.ID, 1))

	guardado, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, guardado.Stock)

	err = repo.AjustarStock(ctx, "PROD_999", -1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductoRepo_ListBajoStock(t *testing.T) {
	repo := memoria.NewProductoRepository()
	ctx := context.Background()

	bajo := productoDemo("VES-001")
	bajo.Stock = 2 // igual al mínimo: cuenta como bajo stock
	require.NoError(t, repo.Create(ctx, bajo))

	sano := productoDemo("VES-002")
	sano.Stock = 10
	require.NoError(t, repo.Create(ctx, sano))

	list, err := repo.ListBajoStock(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "VES-001", list[0].Codigo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes — historial de transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestClienteRepo_HistorialAgregarYQuitar(t *testing.T) {
	repo := memoria.NewClienteRepository()
	ctx := context.Background()

	c := &entity.Cliente{Nombre: "María López", Email: "maria@example.com", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.AgregarTransaccion(ctx, c.ID, "TRX_1", entity.TipoVenta))
	require.NoError(t, repo.AgregarTransaccion(ctx, c.ID, "TRX_2", entity.TipoAlquiler))

	guardado, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"TRX_1"}, guardado.Compras)
	assert.Equal(t, []string{"TRX_2"}, guardado.Alquileres)

	require.NoError(t, repo.QuitarTransaccion(ctx, c.ID, "TRX_1", entity.TipoVenta))
	guardado, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, guardado.Compras)
	assert.Equal(t, []string{"TRX_2"}, guardado.Alquileres)
}

func TestClienteRepo_HistorialClienteInexistente(t *testing.T) {
	repo := memoria.NewClienteRepository()
	ctx := context.Background()

	err := repo.AgregarTransaccion(ctx, "CLI_999", "TRX_1", entity.TipoVenta)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.QuitarTransaccion(ctx, "CLI_999", "TRX_1", entity.TipoVenta)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios — unicidad de email
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuarioRepo_EmailDuplicado_RetornaError(t *testing.T) {
	repo := memoria.NewUsuarioRepository()
	ctx := context.Background()

	u := &entity.Usuario{Nombre: "Ana", Email: "ana@violetta.local", Activo: true, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, u))

	// La comparación de emails no distingue mayúsculas.
	dup := &entity.Usuario{Nombre: "Otra Ana", Email: "ANA@violetta.local", CreatedAt: time.Now()}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUsuarioRepo_AltasConcurrentesMismoEmail_SoloUnaGana(t *testing.T) {
	repo := memoria.NewUsuarioRepository()
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := &entity.Usuario{
				Nombre:    fmt.Sprintf("Intento %d", i),
				Email:     "carrera@violetta.local",
				CreatedAt: time.Now(),
			}
			errs[i] = repo.Create(ctx, u)
		}(i)
	}
	wg.Wait()

	exitos := 0
	for _, err := range errs {
		if err == nil {
			exitos++
		} else {
			assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		}
	}
	assert.Equal(t, 1, exitos, "exactamente un alta con el mismo email debe ganar")

	todos, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestUsuarioRepo_ActualizarUltimoAcceso(t *testing.T) {
	repo := memoria.NewUsuarioRepository()
	ctx := context.Background()

	u := &entity.Usuario{Nombre: "Ana", Email: "ana@violetta.local", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, u))

	sello := time.Now()
	require.NoError(t, repo.ActualizarUltimoAcceso(ctx, u.ID, sello))

	guardado, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, guardado.UltimoAcceso)
	assert.True(t, guardado.UltimoAcceso.Equal(sello))

	err = repo.ActualizarUltimoAcceso(ctx, "USR_999", sello)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eventos — append-only
// ──────────────────────────────────────────────────────────────────────────────

func TestEventoRepo_CreateYFiltros(t *testing.T) {
	repo := memoria.NewEventoRepository()
	ctx := context.Background()

	for i, ev := range []*entity.Evento{
		{Tipo: entity.EventoLogin, UsuarioID: "USR_1", Descripcion: "inicio de sesión", EntidadTipo: "usuario", EntidadID: "USR_1"},
		{Tipo: entity.EventoCreacion, UsuarioID: "USR_1", Descripcion: "producto creado", EntidadTipo: "producto", EntidadID: "PROD_1"},
		{Tipo: entity.EventoCreacion, UsuarioID: "USR_2", Descripcion: "cliente creado", EntidadTipo: "cliente", EntidadID: "CLI_1"},
	} {
		ev.CreatedAt = time.Now().Add(time.Duration(i) * time.Millisecond)
		require.NoError(t, repo.Create(ctx, ev))
		assert.NotEmpty(t, ev.ID)
	}

	porUsuario, err := repo.ListByUsuario(ctx, "USR_1")
	require.NoError(t, err)
	assert.Len(t, porUsuario, 2)

	porEntidad, err := repo.ListByEntidad(ctx, "producto", "PROD_1")
	require.NoError(t, err)
	require.Len(t, porEntidad, 1)
	assert.Equal(t, entity.EventoCreacion, porEntidad[0].Tipo)
}
