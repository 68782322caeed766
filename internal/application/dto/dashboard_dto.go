package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse respuesta de GET /api/dashboard/stats.
// KPIs principales del día para el panel de administración.
type DashboardStatsResponse struct {
	// Métricas del día actual (00:00 – 23:59)
	VentasHoy        decimal.Decimal `json:"ventasHoy"` // ingresos brutos de hoy
	NumVentasHoy     int             `json:"numVentasHoy"`
	NumAlquileresHoy int             `json:"numAlquileresHoy"`

	// Totales del sistema
	TotalProductos     int `json:"totalProductos"`
	TotalClientes      int `json:"totalClientes"`
	TotalTransacciones int `json:"totalTransacciones"`
	ProductosBajoStock int `json:"productosBajoStock"`
	AlquileresActivos  int `json:"alquileresActivos"` // alquileres pendientes de devolución
}

// DevolucionProximaDTO alquiler con devolución dentro de la ventana próxima.
type DevolucionProximaDTO struct {
	Transaccion   TransaccionResponse `json:"transaccion"`
	DiasRestantes int                 `json:"diasRestantes"`
}
