package repository

import "github.com/shopspring/decimal"

// EstadisticasInventario agrega los indicadores del dashboard.
type EstadisticasInventario struct {
	TotalProductos int
	StockBajo      int             // productos con stock_actual < umbral
	ValorTotal     decimal.Decimal // sum(precio_compra * stock_actual)
	Categorias     int
}

// AnalyticsRepository consultas agregadas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	EstadisticasInventario(umbralStockBajo int64) (*EstadisticasInventario, error)
}
