package dto

import "github.com/violetta-moda/violetta-api/internal/domain/entity"

// Constructores entidad → respuesta compartidos por los casos de uso.

// NewProductoResponse construye la respuesta de un producto.
func NewProductoResponse(p *entity.Producto) *ProductoResponse {
	return &ProductoResponse{
		ID:             p.ID,
		Codigo:         p.Codigo,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		Categoria:      p.Categoria,
		Subcategoria:   p.Subcategoria,
		Precio:         p.Precio,
		PrecioAlquiler: p.PrecioAlquiler,
		Stock:          p.Stock,
		StockMinimo:    p.StockMinimo,
		BajoStock:      p.BajoStock(),
		Tallas:         p.Tallas,
		Colores:        p.Colores,
		Imagenes:       p.Imagenes,
		Activo:         p.Activo,
		Destacado:      p.Destacado,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// NewClienteResponse construye la respuesta de un cliente.
func NewClienteResponse(c *entity.Cliente) *ClienteResponse {
	compras := c.Compras
	if compras == nil {
		compras = []string{}
	}
	alquileres := c.Alquileres
	if alquileres == nil {
		alquileres = []string{}
	}
	return &ClienteResponse{
		ID:         c.ID,
		Nombre:     c.Nombre,
		Email:      c.Email,
		Telefono:   c.Telefono,
		Direccion:  c.Direccion,
		Ciudad:     c.Ciudad,
		Compras:    compras,
		Alquileres: alquileres,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// NewTransaccionResponse construye la respuesta de una transacción.
func NewTransaccionResponse(t *entity.Transaccion) *TransaccionResponse {
	items := make([]ItemTransaccionResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, ItemTransaccionResponse{
			ProductoID: it.ProductoID,
			Cantidad:   it.Cantidad,
			Precio:     it.Precio,
		})
	}
	return &TransaccionResponse{
		ID:              t.ID,
		Tipo:            t.Tipo,
		ClienteID:       t.ClienteID,
		Items:           items,
		Total:           t.Total,
		Estado:          t.Estado,
		MetodoPago:      t.MetodoPago,
		FechaDevolucion: t.FechaDevolucion,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// NewUsuarioResponse construye la respuesta de un usuario sin exponer el hash.
func NewUsuarioResponse(u *entity.Usuario) *UsuarioResponse {
	return &UsuarioResponse{
		ID:           u.ID,
		Nombre:       u.Nombre,
		Email:        u.Email,
		Rol:          u.Rol,
		Activo:       u.Activo,
		UltimoAcceso: u.UltimoAcceso,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// NewEventoResponse construye la respuesta de un evento.
func NewEventoResponse(e *entity.Evento) *EventoResponse {
	return &EventoResponse{
		ID:          e.ID,
		Tipo:        e.Tipo,
		UsuarioID:   e.UsuarioID,
		Descripcion: e.Descripcion,
		EntidadTipo: e.EntidadTipo,
		EntidadID:   e.EntidadID,
		CreatedAt:   e.CreatedAt,
	}
}
