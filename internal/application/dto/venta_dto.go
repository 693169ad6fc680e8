package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoVendidoRequest una línea solicitada dentro de la venta.
type ProductoVendidoRequest struct {
	ID       int64 `json:"id"`
	Cantidad int64 `json:"cantidad"`
}

// RegistrarVentaRequest body para POST /api/registrar-venta.
type RegistrarVentaRequest struct {
	UsuarioID         int64                    `json:"usuarioId"`
	ProductosVendidos []ProductoVendidoRequest `json:"productosVendidos"`
}

// DetalleVentaResponse una línea de la venta registrada.
type DetalleVentaResponse struct {
	ID             int64           `json:"id"`
	ProductoID     int64           `json:"producto"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse salida de una venta (cabecera + detalles).
type VentaResponse struct {
	ID       int64                  `json:"id"`
	Usuario  int64                  `json:"usuario"`
	Total    decimal.Decimal        `json:"total"`
	Fecha    time.Time              `json:"fecha"`
	Detalles []DetalleVentaResponse `json:"detalle_ventas,omitempty"`
}
