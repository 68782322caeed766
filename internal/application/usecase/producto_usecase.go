package usecase

import (
	"context"
	"time"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/domain/entity"
	"github.com/violetta-moda/violetta-api/internal/domain/repository"
	"github.com/violetta-moda/violetta-api/pkg/texto"
)

// ProductoUseCase casos de uso CRUD y de consulta para productos.
// El ajuste de stock por ventas/alquileres vive en el caso de uso de
// transacciones, no aquí.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto. El backend de almacenamiento asigna el ID.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	now := time.Now()
	p := &entity.Producto{
		Codigo:         in.Codigo,
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		Categoria:      in.Categoria,
		Subcategoria:   in.Subcategoria,
		Precio:         in.Precio,
		PrecioAlquiler: in.PrecioAlquiler,
		Stock:          in.Stock,
		StockMinimo:    in.StockMinimo,
		Tallas:         in.Tallas,
		Colores:        in.Colores,
		Imagenes:       in.Imagenes,
		Activo:         true,
		Destacado:      in.Destacado,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return dto.NewProductoResponse(p), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return dto.NewProductoResponse(p), nil
}

// List lista productos con filtros opcionales: categoría exacta, solo bajo
// stock, o búsqueda de texto insensible a tildes sobre código/nombre/categoría.
func (uc *ProductoUseCase) List(ctx context.Context, categoria, buscar string, soloBajoStock bool) ([]*dto.ProductoResponse, error) {
	var (
		productos []*entity.Producto
		err       error
	)
	switch {
	case soloBajoStock:
		productos, err = uc.repo.ListBajoStock(ctx)
	case categoria != "":
		productos, err = uc.repo.ListByCategoria(ctx, categoria)
	default:
		productos, err = uc.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		if buscar != "" && !coincideProducto(p, buscar) {
			continue
		}
		out = append(out, dto.NewProductoResponse(p))
	}
	return out, nil
}

// Update aplica una actualización parcial. Devuelve (nil, nil) si no existe.
func (uc *ProductoUseCase) Update(ctx context.Context, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Codigo != nil {
		p.Codigo = *in.Codigo
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if in.Subcategoria != nil {
		p.Subcategoria = *in.Subcategoria
	}
	if in.Precio != nil {
		p.Precio = *in.Precio
	}
	if in.PrecioAlquiler != nil {
		p.PrecioAlquiler = in.PrecioAlquiler
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.StockMinimo != nil {
		p.StockMinimo = *in.StockMinimo
	}
	if in.Tallas != nil {
		p.Tallas = in.Tallas
	}
	if in.Colores != nil {
		p.Colores = in.Colores
	}
	if in.Imagenes != nil {
		p.Imagenes = in.Imagenes
	}
	if in.Activo != nil {
		p.Activo = *in.Activo
	}
	if in.Destacado != nil {
		p.Destacado = *in.Destacado
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return dto.NewProductoResponse(p), nil
}

// Delete elimina un producto. Devuelve false si no existía.
func (uc *ProductoUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func coincideProducto(p *entity.Producto, q string) bool {
	return texto.Contiene(p.Nombre, q) ||
		texto.Contiene(p.Codigo, q) ||
		texto.Contiene(p.Descripcion, q) ||
		texto.Contiene(p.Categoria, q)
}
