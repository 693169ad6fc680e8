package repository

import "github.com/jhoicas/ventapos-api/internal/domain/entity"

// MovimientoRepository puerto de persistencia para el log de movimientos (append-only).
type MovimientoRepository interface {
	Create(movimiento *entity.MovimientoInventario) error
	ListByProducto(productoID int64, limit, offset int) ([]*entity.MovimientoInventario, error)
	List(limit, offset int) ([]*entity.MovimientoInventario, error)
}
