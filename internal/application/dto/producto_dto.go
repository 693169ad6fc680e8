package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre       string          `json:"Nombre"`
	Descripcion  string          `json:"descripcion"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	StockActual  int64           `json:"stock_actual"`
	Estado       bool            `json:"estado"`
	CategoriaID  *int64          `json:"categoria,omitempty"`
}

// UpdateProductoRequest entrada para actualizar un producto (campos opcionales).
// El stock no se toca por aquí cuando el cambio viene de una venta; ese camino
// es exclusivo del registro de ventas.
type UpdateProductoRequest struct {
	Nombre       *string          `json:"Nombre"`
	Descripcion  *string          `json:"descripcion"`
	PrecioCompra *decimal.Decimal `json:"precio_compra"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta"`
	StockActual  *int64           `json:"stock_actual"`
	Estado       *bool            `json:"estado"`
	CategoriaID  *int64           `json:"categoria"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID           int64           `json:"id"`
	Nombre       string          `json:"Nombre"`
	Descripcion  string          `json:"descripcion"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	StockActual  int64           `json:"stock_actual"`
	Estado       bool            `json:"estado"`
	CategoriaID  *int64          `json:"categoria,omitempty"`
	CreatedAt    time.Time       `json:"fecha_creacion"`
	UpdatedAt    time.Time       `json:"fecha_actualizacion"`
}
