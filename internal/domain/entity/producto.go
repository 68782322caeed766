package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del catálogo (venta y/o alquiler).
// Stock es global (tienda única); StockMinimo define el umbral de alerta
// del dashboard.
type Producto struct {
	ID             string
	Codigo         string // código interno, ej. "VES-001"
	Nombre         string
	Descripcion    string
	Categoria      string // vestido, accesorio, calzado...
	Subcategoria   string
	Precio         decimal.Decimal  // precio de venta
	PrecioAlquiler *decimal.Decimal // nil si no se alquila
	Stock          int
	StockMinimo    int
	Tallas         []string
	Colores        []string
	Imagenes       []string
	Activo         bool
	Destacado      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BajoStock indica si el producto está en o por debajo del umbral mínimo.
func (p *Producto) BajoStock() bool {
	return p.Stock <= p.StockMinimo
}
