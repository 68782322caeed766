package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/violetta-moda/violetta-api/internal/application/analytics"
	"github.com/violetta-moda/violetta-api/internal/application/auth"
	"github.com/violetta-moda/violetta-api/internal/application/demo"
	"github.com/violetta-moda/violetta-api/internal/application/usecase"
	"github.com/violetta-moda/violetta-api/internal/application/ventas"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
	"github.com/violetta-moda/violetta-api/internal/infrastructure/memoria"
	"github.com/violetta-moda/violetta-api/internal/infrastructure/mongodb"
	infrapdf "github.com/violetta-moda/violetta-api/internal/infrastructure/pdf"
	httpRouter "github.com/violetta-moda/violetta-api/internal/interfaces/http"
	"github.com/violetta-moda/violetta-api/pkg/config"
	"github.com/violetta-moda/violetta-api/pkg/logger"
)

// repos agrupa los cinco puertos de persistencia, vengan del backend que vengan.
type repos struct {
	productos     repository.ProductoRepository
	clientes      repository.ClienteRepository
	transacciones repository.TransaccionRepository
	usuarios      repository.UsuarioRepository
	eventos       repository.EventoRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// El backend se decide UNA sola vez aquí: si MongoDB no responde dentro
	// del timeout se arranca con el backend en memoria, sin reintentos.
	var (
		r           repos
		storage     = "memoria"
		mongoOK     bool
		mongoClient *mongo.Client
	)
	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Warn().Err(err).Msg("MongoDB no disponible, usando almacenamiento en memoria")
		r = repos{
			productos:     memoria.NewProductoRepository(),
			clientes:      memoria.NewClienteRepository(),
			transacciones: memoria.NewTransaccionRepository(),
			usuarios:      memoria.NewUsuarioRepository(),
			eventos:       memoria.NewEventoRepository(),
		}
	} else {
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("crear índices de MongoDB")
		}
		r = repos{
			productos:     mongodb.NewProductoRepository(db),
			clientes:      mongodb.NewClienteRepository(db),
			transacciones: mongodb.NewTransaccionRepository(db),
			usuarios:      mongodb.NewUsuarioRepository(db),
			eventos:       mongodb.NewEventoRepository(db),
		}
		storage = "mongodb"
		mongoOK = true
		mongoClient = client
	}
	log.Info().Str("storage", storage).Msg("backend de almacenamiento seleccionado")

	productoUC := usecase.NewProductoUseCase(r.productos)
	clienteUC := usecase.NewClienteUseCase(r.clientes)
	usuarioUC := usecase.NewUsuarioUseCase(r.usuarios)
	eventoUC := usecase.NewEventoUseCase(r.eventos)
	comprobantes := infrapdf.NewComprobanteGenerator("Violetta Moda")
	transaccionUC := ventas.NewTransaccionUseCase(r.transacciones, r.productos, r.clientes, comprobantes)
	authUC := auth.NewUseCase(r.usuarios, r.eventos, cfg.JWT, log)
	dashboardUC := analytics.NewDashboardUseCase(r.productos, r.clientes, r.transacciones)
	demoSvc := demo.NewService()

	// Usuario administrador inicial (si hay credenciales configuradas).
	if err := usuarioUC.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("crear usuario administrador inicial")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Violetta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:    productoUC,
		ClienteUC:     clienteUC,
		UsuarioUC:     usuarioUC,
		EventoUC:      eventoUC,
		TransaccionUC: transaccionUC,
		AuthUC:        authUC,
		DashboardUC:   dashboardUC,
		DemoSvc:       demoSvc,
		Sistema: httpRouter.SistemaInfo{
			Nombre:         cfg.App.Name,
			Version:        cfg.App.Version,
			Storage:        storage,
			MongoConectado: mongoOK,
			Inicio:         time.Now(),
		},
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}

	log.Info().Msg("aplicación detenida")
}
