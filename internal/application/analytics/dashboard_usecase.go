// Package analytics calcula los agregados del panel de administración a
// partir de los repositorios, sin almacenamiento propio.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
)

// VentanaDevoluciones alcance de "próximas devoluciones" en días.
const VentanaDevoluciones = 7

// ventasRecientesDefecto cuántas ventas devuelve VentasRecientes si no se pide otro límite.
const ventasRecientesDefecto = 10

// DashboardUseCase agregados del panel.
type DashboardUseCase struct {
	productos     repository.ProductoRepository
	clientes      repository.ClienteRepository
	transacciones repository.TransaccionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productos repository.ProductoRepository,
	clientes repository.ClienteRepository,
	transacciones repository.TransaccionRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productos:     productos,
		clientes:      clientes,
		transacciones: transacciones,
	}
}

// Stats calcula los KPIs del día y los totales del sistema.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	// Las tres colecciones se consultan en paralelo (llamadas independientes)
	type productosResult struct {
		rows []*entity.Producto
		err  error
	}
	type clientesResult struct {
		rows []*entity.Cliente
		err  error
	}
	type transaccionesResult struct {
		rows []*entity.Transaccion
		err  error
	}

	prodChan := make(chan productosResult, 1)
	cliChan := make(chan clientesResult, 1)
	trxChan := make(chan transaccionesResult, 1)

	go func() {
		rows, err := uc.productos.GetAll(ctx)
		prodChan <- productosResult{rows, err}
	}()
	go func() {
		rows, err := uc.clientes.GetAll(ctx)
		cliChan <- clientesResult{rows, err}
	}()
	go func() {
		rows, err := uc.transacciones.GetAll(ctx)
		trxChan <- transaccionesResult{rows, err}
	}()

	prodRes := <-prodChan
	cliRes := <-cliChan
	trxRes := <-trxChan

	if prodRes.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", prodRes.err)
	}
	if cliRes.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", cliRes.err)
	}
	if trxRes.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones: %w", trxRes.err)
	}

	stats := &dto.DashboardStatsResponse{
		VentasHoy:      decimal.Zero,
		TotalProductos: len(prodRes.rows),
		TotalClientes:  len(cliRes.rows),
	}
	for _, p := range prodRes.rows {
		if p.BajoStock() {
			stats.ProductosBajoStock++
		}
	}

	hoy := inicioDelDia(time.Now())
	stats.TotalTransacciones = len(trxRes.rows)
	for _, t := range trxRes.rows {
		if t.Estado == entity.EstadoCancelada {
			continue
		}
		esHoy := !t.CreatedAt.Before(hoy)
		switch t.Tipo {
		case entity.TipoVenta:
			if esHoy {
				stats.VentasHoy = stats.VentasHoy.Add(t.Total)
				stats.NumVentasHoy++
			}
		case entity.TipoAlquiler:
			if esHoy {
				stats.NumAlquileresHoy++
			}
			if t.Estado == entity.EstadoPendiente {
				stats.AlquileresActivos++
			}
		}
	}
	return stats, nil
}

// ProductosBajoStock lista los productos con stock en o bajo el mínimo.
func (uc *DashboardUseCase) ProductosBajoStock(ctx context.Context) ([]*dto.ProductoResponse, error) {
	productos, err := uc.productos.ListBajoStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.NewProductoResponse(p))
	}
	return out, nil
}

// VentasRecientes devuelve las últimas ventas, más recientes primero.
func (uc *DashboardUseCase) VentasRecientes(ctx context.Context, limite int) ([]*dto.TransaccionResponse, error) {
	if limite <= 0 {
		limite = ventasRecientesDefecto
	}
	ventas, err := uc.transacciones.ListByTipo(ctx, entity.TipoVenta)
	if err != nil {
		return nil, err
	}
	sort.Slice(ventas, func(i, j int) bool {
		return ventas[i].CreatedAt.After(ventas[j].CreatedAt)
	})
	if len(ventas) > limite {
		ventas = ventas[:limite]
	}
	out := make([]*dto.TransaccionResponse, 0, len(ventas))
	for _, t := range ventas {
		out = append(out, dto.NewTransaccionResponse(t))
	}
	return out, nil
}

// ProximasDevoluciones lista los alquileres pendientes cuya devolución vence
// dentro de la ventana, ordenados por fecha de devolución ascendente.
func (uc *DashboardUseCase) ProximasDevoluciones(ctx context.Context) ([]*dto.DevolucionProximaDTO, error) {
	alquileres, err := uc.transacciones.ListByTipo(ctx, entity.TipoAlquiler)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	limite := now.AddDate(0, 0, VentanaDevoluciones)

	var proximas []*dto.DevolucionProximaDTO
	for _, t := range alquileres {
		if t.Estado != entity.EstadoPendiente || t.FechaDevolucion == nil {
			continue
		}
		f := *t.FechaDevolucion
		if f.Before(now) || f.After(limite) {
			continue
		}
		proximas = append(proximas, &dto.DevolucionProximaDTO{
			Transaccion:   *dto.NewTransaccionResponse(t),
			DiasRestantes: int(f.Sub(now).Hours() / 24),
		})
	}
	sort.Slice(proximas, func(i, j int) bool {
		fi := proximas[i].Transaccion.FechaDevolucion
		fj := proximas[j].Transaccion.FechaDevolucion
		return fi.Before(*fj)
	})
	return proximas, nil
}

func inicioDelDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
