package dto

import "github.com/shopspring/decimal"

// EstadisticasResponse indicadores del dashboard de inventario.
type EstadisticasResponse struct {
	TotalProductos int             `json:"totalProductos"`
	StockBajo      int             `json:"stockBajo"`
	ValorTotal     decimal.Decimal `json:"valorTotal"`
	Categorias     int             `json:"categorias"`
}
