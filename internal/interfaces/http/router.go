package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/violetta-moda/violetta-api/internal/application/analytics"
	"github.com/violetta-moda/violetta-api/internal/application/auth"
	"github.com/violetta-moda/violetta-api/internal/application/demo"
	"github.com/violetta-moda/violetta-api/internal/application/usecase"
	"github.com/violetta-moda/violetta-api/internal/application/ventas"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC    *usecase.ProductoUseCase
	ClienteUC     *usecase.ClienteUseCase
	UsuarioUC     *usecase.UsuarioUseCase
	EventoUC      *usecase.EventoUseCase
	TransaccionUC *ventas.TransaccionUseCase
	AuthUC        *auth.UseCase
	DashboardUC   *analytics.DashboardUseCase
	DemoSvc       *demo.Service
	Sistema       SistemaInfo
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Estado del sistema (público)
	sistemaHandler := NewSistemaHandler(deps.Sistema)
	api.Get("/system/status", sistemaHandler.Status)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Transacciones (protegido)
	transacciones := protected.Group("/transacciones")
	transaccionHandler := NewTransaccionHandler(deps.TransaccionUC)
	transacciones.Post("/", transaccionHandler.Create)
	transacciones.Get("/", transaccionHandler.List)
	transacciones.Get("/:id", transaccionHandler.GetByID)
	transacciones.Get("/:id/comprobante", transaccionHandler.Comprobante)
	transacciones.Put("/:id", transaccionHandler.Update)
	transacciones.Delete("/:id", transaccionHandler.Delete)

	// Usuarios (protegido, solo admin)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RolAdmin))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Eventos de auditoría (protegido, append-only)
	eventos := protected.Group("/eventos")
	eventoHandler := NewEventoHandler(deps.EventoUC)
	eventos.Post("/", eventoHandler.Create)
	eventos.Get("/", eventoHandler.List)
	eventos.Get("/:id", eventoHandler.GetByID)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/productos-bajo-stock", dashboardHandler.ProductosBajoStock)
	dashboard.Get("/ventas-recientes", dashboardHandler.VentasRecientes)
	dashboard.Get("/proximas-devoluciones", dashboardHandler.ProximasDevoluciones)

	// NoSQL Hub de demostración (protegido)
	demoGroup := protected.Group("/demo")
	demoHandler := NewDemoHandler(deps.DemoSvc)
	demoGroup.Post("/mongo/query", demoHandler.QueryMongo)
	demoGroup.Post("/neo4j/query", demoHandler.QueryNeo4j)
}
