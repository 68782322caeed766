// seed puebla el backend configurado con datos de demostración: productos,
// clientes, usuarios y un par de transacciones, pasando por los casos de uso
// para que se apliquen los mismos efectos (stock, historial) que en la API.
//
// Uso: go run ./cmd/seed
// Respeta las mismas variables de entorno que cmd/api (MONGO_URI, etc.); si
// MongoDB no responde siembra el backend en memoria, lo que solo sirve para
// probar que el seed en sí funciona.
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/application/usecase"
	"github.com/violetta-moda/violetta-api/internal/application/ventas"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
	"github.com/violetta-moda/violetta-api/internal/infrastructure/memoria"
	"github.com/violetta-moda/violetta-api/internal/infrastructure/mongodb"
	infrapdf "github.com/violetta-moda/violetta-api/internal/infrastructure/pdf"
	"github.com/violetta-moda/violetta-api/pkg/config"
	"github.com/violetta-moda/violetta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	ctx := context.Background()

	var (
		productos     repository.ProductoRepository
		clientes      repository.ClienteRepository
		transacciones repository.TransaccionRepository
		usuarios      repository.UsuarioRepository
	)
	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Warn().Err(err).Msg("MongoDB no disponible, sembrando el backend en memoria")
		productos = memoria.NewProductoRepository()
		clientes = memoria.NewClienteRepository()
		transacciones = memoria.NewTransaccionRepository()
		usuarios = memoria.NewUsuarioRepository()
	} else {
		defer client.Disconnect(ctx)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("crear índices de MongoDB")
		}
		productos = mongodb.NewProductoRepository(db)
		clientes = mongodb.NewClienteRepository(db)
		transacciones = mongodb.NewTransaccionRepository(db)
		usuarios = mongodb.NewUsuarioRepository(db)
	}

	productoUC := usecase.NewProductoUseCase(productos)
	clienteUC := usecase.NewClienteUseCase(clientes)
	usuarioUC := usecase.NewUsuarioUseCase(usuarios)
	transaccionUC := ventas.NewTransaccionUseCase(
		transacciones, productos, clientes,
		infrapdf.NewComprobanteGenerator("Violetta Moda"),
	)

	if err := usuarioUC.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("crear usuario administrador")
	}
	if _, err := usuarioUC.Create(ctx, dto.CreateUsuarioRequest{
		Nombre:   "Laura Vendedora",
		Email:    "laura@violetta.local",
		Password: "cambiar-ya-12345",
		Rol:      entity.RolVendedor,
	}); err != nil {
		log.Warn().Err(err).Msg("usuario vendedora no creado (¿ya existe?)")
	}

	precio := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	precioAlq := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	var productoIDs []string
	for _, in := range []dto.CreateProductoRequest{
		{
			Codigo: "VES-001", Nombre: "Vestido gala azul", Categoria: "vestidos",
			Subcategoria: "gala", Precio: precio(250000), PrecioAlquiler: precioAlq(80000),
			Stock: 5, StockMinimo: 2, Tallas: []string{"S", "M", "L"},
			Colores: []string{"azul"}, Destacado: true,
		},
		{
			Codigo: "TRA-001", Nombre: "Traje ejecutivo gris", Categoria: "trajes",
			Precio: precio(380000), PrecioAlquiler: precioAlq(120000),
			Stock: 3, StockMinimo: 1, Tallas: []string{"M", "L", "XL"},
			Colores: []string{"gris"},
		},
		{
			Codigo: "BLU-001", Nombre: "Blusa seda blanca", Categoria: "blusas",
			Precio: precio(95000), Stock: 12, StockMinimo: 4,
			Tallas: []string{"XS", "S", "M"}, Colores: []string{"blanco", "crema"},
		},
	} {
		p, err := productoUC.Create(ctx, in)
		if err != nil {
			log.Fatal().Err(err).Str("codigo", in.Codigo).Msg("crear producto")
		}
		productoIDs = append(productoIDs, p.ID)
	}

	var clienteIDs []string
	for _, in := range []dto.CreateClienteRequest{
		{Nombre: "María Fernanda López", Email: "maria.lopez@example.com", Telefono: "3001234567", Ciudad: "Bogotá"},
		{Nombre: "Carlos Andrés Ruiz", Email: "carlos.ruiz@example.com", Telefono: "3109876543", Ciudad: "Medellín"},
	} {
		c, err := clienteUC.Create(ctx, in)
		if err != nil {
			log.Fatal().Err(err).Str("email", in.Email).Msg("crear cliente")
		}
		clienteIDs = append(clienteIDs, c.ID)
	}

	devolucion := time.Now().AddDate(0, 0, 3)
	for _, in := range []dto.CreateTransaccionRequest{
		{
			Tipo:      entity.TipoVenta,
			ClienteID: clienteIDs[1],
			Items: []dto.ItemTransaccionRequest{
				{ProductoID: productoIDs[1], Cantidad: 1},
			},
			MetodoPago: "tarjeta",
		},
		{
			Tipo:      entity.TipoAlquiler,
			ClienteID: clienteIDs[0],
			Items: []dto.ItemTransaccionRequest{
				{ProductoID: productoIDs[0], Cantidad: 1},
			},
			FechaDevolucion: &devolucion,
		},
	} {
		if _, err := transaccionUC.Create(ctx, in); err != nil {
			log.Fatal().Err(err).Str("tipo", in.Tipo).Msg("crear transacción")
		}
	}

	log.Info().
		Int("productos", len(productoIDs)).
		Int("clientes", len(clienteIDs)).
		Msg("datos de demostración sembrados")
}
