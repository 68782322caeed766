package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Codigo         string           `json:"codigo" validate:"required,min=1,max=50"`
	Nombre         string           `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion    string           `json:"descripcion"`
	Categoria      string           `json:"categoria" validate:"required"`
	Subcategoria   string           `json:"subcategoria"`
	Precio         decimal.Decimal  `json:"precio"`
	PrecioAlquiler *decimal.Decimal `json:"precioAlquiler,omitempty"`
	Stock          int              `json:"stock" validate:"min=0"`
	StockMinimo    int              `json:"stockMinimo" validate:"min=0"`
	Tallas         []string         `json:"tallas"`
	Colores        []string         `json:"colores"`
	Imagenes       []string         `json:"imagenes"`
	Destacado      bool             `json:"destacado"`
}

// Validar devuelve los errores de campo del payload, vacío si es válido.
func (r *CreateProductoRequest) Validar() []CampoError {
	var campos []CampoError
	if r.Codigo == "" {
		campos = append(campos, CampoError{Campo: "codigo", Mensaje: "es requerido"})
	}
	if r.Nombre == "" {
		campos = append(campos, CampoError{Campo: "nombre", Mensaje: "es requerido"})
	}
	if r.Categoria == "" {
		campos = append(campos, CampoError{Campo: "categoria", Mensaje: "es requerida"})
	}
	if r.Precio.IsNegative() {
		campos = append(campos, CampoError{Campo: "precio", Mensaje: "no puede ser negativo"})
	}
	if r.PrecioAlquiler != nil && r.PrecioAlquiler.IsNegative() {
		campos = append(campos, CampoError{Campo: "precioAlquiler", Mensaje: "no puede ser negativo"})
	}
	if r.Stock < 0 {
		campos = append(campos, CampoError{Campo: "stock", Mensaje: "no puede ser negativo"})
	}
	if r.StockMinimo < 0 {
		campos = append(campos, CampoError{Campo: "stockMinimo", Mensaje: "no puede ser negativo"})
	}
	return campos
}

// UpdateProductoRequest entrada parcial para actualizar un producto.
type UpdateProductoRequest struct {
	Codigo         *string          `json:"codigo"`
	Nombre         *string          `json:"nombre"`
	Descripcion    *string          `json:"descripcion"`
	Categoria      *string          `json:"categoria"`
	Subcategoria   *string          `json:"subcategoria"`
	Precio         *decimal.Decimal `json:"precio"`
	PrecioAlquiler *decimal.Decimal `json:"precioAlquiler"`
	Stock          *int             `json:"stock"`
	StockMinimo    *int             `json:"stockMinimo"`
	Tallas         []string         `json:"tallas"`
	Colores        []string         `json:"colores"`
	Imagenes       []string         `json:"imagenes"`
	Activo         *bool            `json:"activo"`
	Destacado      *bool            `json:"destacado"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID             string           `json:"id"`
	Codigo         string           `json:"codigo"`
	Nombre         string           `json:"nombre"`
	Descripcion    string           `json:"descripcion"`
	Categoria      string           `json:"categoria"`
	Subcategoria   string           `json:"subcategoria"`
	Precio         decimal.Decimal  `json:"precio"`
	PrecioAlquiler *decimal.Decimal `json:"precioAlquiler,omitempty"`
	Stock          int              `json:"stock"`
	StockMinimo    int              `json:"stockMinimo"`
	BajoStock      bool             `json:"bajoStock"`
	Tallas         []string         `json:"tallas"`
	Colores        []string         `json:"colores"`
	Imagenes       []string         `json:"imagenes"`
	Activo         bool             `json:"activo"`
	Destacado      bool             `json:"destacado"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
