package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/violetta-moda/violetta-api/internal/application/analytics"
	"github.com/violetta-moda/violetta-api/internal/application/auth"
	"github.com/violetta-moda/violetta-api/internal/application/demo"
	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/application/usecase"
	"github.com/violetta-moda/violetta-api/internal/application/ventas"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/infrastructure/memoria"
	apphttp "github.com/violetta-moda/violetta-api/internal/interfaces/http"
	"github.com/violetta-moda/violetta-api/pkg/config"
	"github.com/violetta-moda/violetta-api/pkg/logger"
)

type comprobanteFake struct{}

func (comprobanteFake) Generar(*entity.Transaccion, *entity.Cliente, []ventas.LineaComprobante) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// buildAPI levanta la API completa sobre los repos en memoria, con un admin y
// un vendedor ya registrados, y devuelve tokens de ambos.
func buildAPI(t *testing.T) (app *fiber.App, adminToken, vendedorToken string) {
	t.Helper()
	ctx := context.Background()

	productos := memoria.NewProductoRepository()
	clientes := memoria.NewClienteRepository()
	transacciones := memoria.NewTransaccionRepository()
	usuarios := memoria.NewUsuarioRepository()
	eventos := memoria.NewEventoRepository()

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	jwtCfg := config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer}

	productoUC := usecase.NewProductoUseCase(productos)
	clienteUC := usecase.NewClienteUseCase(clientes)
	usuarioUC := usecase.NewUsuarioUseCase(usuarios)
	eventoUC := usecase.NewEventoUseCase(eventos)
	transaccionUC := ventas.NewTransaccionUseCase(transacciones, productos, clientes, comprobanteFake{})
	authUC := auth.NewUseCase(usuarios, eventos, jwtCfg, log)
	dashboardUC := analytics.NewDashboardUseCase(productos, clientes, transacciones)

	_, err := usuarioUC.Create(ctx, dto.CreateUsuarioRequest{
		Nombre: "Ana Admin", Email: "ana@violetta.local", Password: "clave-admin-123", Rol: entity.RolAdmin,
	})
	require.NoError(t, err)
	_, err = usuarioUC.Create(ctx, dto.CreateUsuarioRequest{
		Nombre: "Laura Vendedora", Email: "laura@violetta.local", Password: "clave-venta-123", Rol: entity.RolVendedor,
	})
	require.NoError(t, err)

	app = fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductoUC:    productoUC,
		ClienteUC:     clienteUC,
		UsuarioUC:     usuarioUC,
		EventoUC:      eventoUC,
		TransaccionUC: transaccionUC,
		AuthUC:        authUC,
		DashboardUC:   dashboardUC,
		DemoSvc:       demo.NewService(),
		Sistema: apphttp.SistemaInfo{
			Nombre:  "violetta-api",
			Version: "test",
			Storage: "memoria",
			Inicio:  time.Now(),
		},
		JWTSecret: testJWTSecret,
	})

	adminToken = loginToken(t, app, "ana@violetta.local", "clave-admin-123")
	vendedorToken = loginToken(t, app, "laura@violetta.local", "clave-venta-123")
	return app, adminToken, vendedorToken
}

func loginToken(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: email, Password: password})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login de %s debe funcionar", email)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeProducto(t *testing.T, resp *http.Response) dto.ProductoResponse {
	t.Helper()
	defer resp.Body.Close()
	var p dto.ProductoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_LoginCredencialesInvalidas_Retorna401(t *testing.T) {
	app, _, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: "ana@violetta.local", Password: "incorrecta"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: "nadie@violetta.local", Password: "incorrecta"})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode,
		"email desconocido responde igual que contraseña incorrecta")
}

func TestAPI_RutaProtegidaSinToken_Retorna401(t *testing.T) {
	app, _, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/productos", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_SystemStatusEsPublico(t *testing.T) {
	app, _, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/system/status", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SistemaStatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "memoria", out.Storage)
	assert.False(t, out.MongoDBConnected)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos — CRUD por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ProductoCRUD(t *testing.T) {
	app, token, _ := buildAPI(t)

	// Crear
	resp := doJSON(t, app, http.MethodPost, "/api/productos", token, dto.CreateProductoRequest{
		Codigo: "VES-001", Nombre: "Vestido gala azul", Categoria: "vestidos", Stock: 5, StockMinimo: 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	creado := decodeProducto(t, resp)
	assert.Equal(t, "PROD_1", creado.ID, "el backend en memoria asigna IDs PROD_{n}")
	assert.True(t, creado.Activo, "un producto nuevo nace activo")

	// Obtener
	resp = doJSON(t, app, http.MethodGet, "/api/productos/"+creado.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	leido := decodeProducto(t, resp)
	assert.Equal(t, "VES-001", leido.Codigo)

	// Actualizar
	resp = doJSON(t, app, http.MethodPut, "/api/productos/"+creado.ID, token,
		map[string]any{"nombre": "Vestido gala añil"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	actualizado := decodeProducto(t, resp)
	assert.Equal(t, "Vestido gala añil", actualizado.Nombre)
	assert.Equal(t, "VES-001", actualizado.Codigo, "los campos no enviados no cambian")

	// Eliminar
	resp = doJSON(t, app, http.MethodDelete, "/api/productos/"+creado.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Después del borrado: 404
	resp = doJSON(t, app, http.MethodGet, "/api/productos/"+creado.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_ProductoInvalido_Retorna400ConCampos(t *testing.T) {
	app, token, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/productos", token, dto.CreateProductoRequest{
		Nombre: "Sin código ni categoría",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
	require.NotEmpty(t, out.Campos)

	campos := make([]string, 0, len(out.Campos))
	for _, c := range out.Campos {
		campos = append(campos, c.Campo)
	}
	assert.Contains(t, campos, "codigo")
	assert.Contains(t, campos, "categoria")
}

func TestAPI_ProductoBusquedaSinTildes(t *testing.T) {
	app, token, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/productos", token, dto.CreateProductoRequest{
		Codigo: "VES-001", Nombre: "Vestido añil", Categoria: "vestidos",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/productos?buscar=ANIL", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.ProductoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1, "la búsqueda no distingue tildes ni mayúsculas")
}

// ──────────────────────────────────────────────────────────────────────────────
// RBAC — /api/usuarios solo admin
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_UsuariosSoloAdmin(t *testing.T) {
	app, adminToken, vendedorToken := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/usuarios", vendedorToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "vendedor no gestiona usuarios")

	resp = doJSON(t, app, http.MethodGet, "/api/usuarios", adminToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.UsuarioResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 2)
}

func TestAPI_UsuarioEmailDuplicado_Retorna409(t *testing.T) {
	app, adminToken, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/usuarios", adminToken, dto.CreateUsuarioRequest{
		Nombre: "Clon", Email: "ana@violetta.local", Password: "clave-clon-123",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_VentaDescuentaStockYComprobante(t *testing.T) {
	app, token, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/productos", token, dto.CreateProductoRequest{
		Codigo: "VES-001", Nombre: "Vestido gala azul", Categoria: "vestidos",
		Precio: decimal.NewFromInt(250000), Stock: 5, StockMinimo: 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	producto := decodeProducto(t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/clientes", token, dto.CreateClienteRequest{
		Nombre: "María López", Email: "maria@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cliente dto.ClienteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cliente))
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/transacciones", token, dto.CreateTransaccionRequest{
		Tipo:      entity.TipoVenta,
		ClienteID: cliente.ID,
		Items:     []dto.ItemTransaccionRequest{{ProductoID: producto.ID, Cantidad: 2}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var trx dto.TransaccionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&trx))
	resp.Body.Close()
	assert.Equal(t, entity.EstadoCompletada, trx.Estado)

	resp = doJSON(t, app, http.MethodGet, "/api/productos/"+producto.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, decodeProducto(t, resp).Stock, "la venta descuenta stock")

	resp = doJSON(t, app, http.MethodGet, "/api/transacciones/"+trx.ID+"/comprobante", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestAPI_VentaStockInsuficiente_Retorna400(t *testing.T) {
	app, token, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/productos", token, dto.CreateProductoRequest{
		Codigo: "VES-001", Nombre: "Vestido", Categoria: "vestidos", Stock: 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	producto := decodeProducto(t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/clientes", token, dto.CreateClienteRequest{
		Nombre: "María López", Email: "maria@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cliente dto.ClienteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cliente))
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/transacciones", token, dto.CreateTransaccionRequest{
		Tipo:      entity.TipoVenta,
		ClienteID: cliente.ID,
		Items:     []dto.ItemTransaccionRequest{{ProductoID: producto.ID, Cantidad: 3}},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Demo NoSQL hub
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_DemoQueries(t *testing.T) {
	app, token, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/demo/mongo/query", token,
		dto.DemoQueryRequest{Query: "db.productos.find({})"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.DemoQueryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "mongo", out.Fuente)
	assert.Equal(t, "find", out.Operacion)

	resp = doJSON(t, app, http.MethodPost, "/api/demo/neo4j/query", token,
		dto.DemoQueryRequest{Query: "MATCH (c:Cliente)-[:ALQUILO]->(p) RETURN c, p"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out2 dto.DemoQueryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out2))
	assert.Equal(t, "neo4j", out2.Fuente)
	assert.Equal(t, "MATCH", out2.Operacion)
}
