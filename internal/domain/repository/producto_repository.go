package repository

import "github.com/jhoicas/ventapos-api/internal/domain/entity"

// ProductoRepository puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id int64) (*entity.Producto, error)
	// UpdateStock fija el stock_actual del producto (usado por el registro de ventas).
	UpdateStock(id int64, stock int64) error
	Update(producto *entity.Producto) error
	List(limit, offset int) ([]*entity.Producto, error)
	Count() (int, error)
	Delete(id int64) error
}
