package venta

import (
	"context"

	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el registro de ventas: o se aplican la
// cabecera, todos los detalles, los descuentos de stock y los movimientos, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		ventaRepo repository.VentaRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}

// DetalleParaRecibo línea de venta enriquecida con el nombre del producto (para el PDF).
type DetalleParaRecibo struct {
	Detalle        *entity.DetalleVenta
	NombreProducto string
}

// ReciboPDFGenerator genera la representación PDF (ticket) de una venta.
type ReciboPDFGenerator interface {
	GenerateReciboPDF(ctx context.Context, venta *entity.Venta, detalles []DetalleParaRecibo) ([]byte, error)
}
