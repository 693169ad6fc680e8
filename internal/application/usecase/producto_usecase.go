package usecase

import (
	"time"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// ProductoUseCase CRUD de productos para el dashboard.
// El stock solo se modifica por aquí en operaciones administrativas; el camino de
// venta pasa exclusivamente por el caso de uso de registro de ventas.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto nuevo.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockActual < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Producto{
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		PrecioCompra: in.PrecioCompra,
		PrecioVenta:  in.PrecioVenta,
		StockActual:  in.StockActual,
		Estado:       in.Estado,
		CategoriaID:  in.CategoriaID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID devuelve el producto o nil si no existe.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductoResponse(p), nil
}

// List lista productos paginados.
func (uc *ProductoUseCase) List(page, pageSize int) ([]dto.ProductoResponse, *dto.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 25
	}
	offset := (page - 1) * pageSize
	list, err := uc.repo.List(pageSize, offset)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductoResponse(p))
	}
	return out, dto.NewPagination(page, pageSize, total), nil
}

// Update actualiza los campos presentes en el request. Stock negativo se rechaza.
func (uc *ProductoUseCase) Update(id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.PrecioCompra != nil {
		p.PrecioCompra = *in.PrecioCompra
	}
	if in.PrecioVenta != nil {
		p.PrecioVenta = *in.PrecioVenta
	}
	if in.StockActual != nil {
		if *in.StockActual < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.StockActual = *in.StockActual
	}
	if in.Estado != nil {
		p.Estado = *in.Estado
	}
	if in.CategoriaID != nil {
		p.CategoriaID = in.CategoriaID
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// Delete elimina un producto por ID.
func (uc *ProductoUseCase) Delete(id int64) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		PrecioCompra: p.PrecioCompra,
		PrecioVenta:  p.PrecioVenta,
		StockActual:  p.StockActual,
		Estado:       p.Estado,
		CategoriaID:  p.CategoriaID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
