package repository

import "github.com/jhoicas/ventapos-api/internal/domain/entity"

// VentaRepository puerto de persistencia para Venta y DetalleVenta (append-only).
type VentaRepository interface {
	// Create persiste la cabecera y asigna venta.ID (RETURNING id).
	Create(venta *entity.Venta) error
	CreateDetalle(detalle *entity.DetalleVenta) error
	GetByID(id int64) (*entity.Venta, error)
	ListDetalles(ventaID int64) ([]*entity.DetalleVenta, error)
	List(limit, offset int) ([]*entity.Venta, error)
	Count() (int, error)
}
