package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta representa la cabecera de una venta registrada.
// Se crea exactamente una vez por registro exitoso y es inmutable después.
type Venta struct {
	ID        int64
	UsuarioID int64
	Total     decimal.Decimal // suma de los subtotales de los detalles
	Fecha     time.Time
	CreatedAt time.Time
}

// DetalleVenta representa una línea de una venta.
// PrecioUnitario es el precio de venta del producto capturado al momento de la
// transacción; cambios de precio posteriores no afectan ventas históricas.
type DetalleVenta struct {
	ID             int64
	VentaID        int64
	ProductoID     int64
	Cantidad       int64
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}
