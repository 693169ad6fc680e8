package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del inventario.
// StockActual es la cantidad disponible autoritativa para la validación de ventas;
// solo muta vía registro de ventas o vía CRUD administrativo, nunca queda negativo.
type Producto struct {
	ID           int64
	Nombre       string
	Descripcion  string
	PrecioCompra decimal.Decimal
	PrecioVenta  decimal.Decimal // precio usado al vender (snapshot en DetalleVenta)
	StockActual  int64
	Estado       bool // activo/inactivo
	CategoriaID  *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
