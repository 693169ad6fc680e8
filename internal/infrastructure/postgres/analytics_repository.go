package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas para el dashboard. Solo lectura.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// EstadisticasInventario resuelve todos los indicadores en una sola consulta.
func (r *AnalyticsRepo) EstadisticasInventario(umbralStockBajo int64) (*repository.EstadisticasInventario, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM productos),
			(SELECT COUNT(*) FROM productos WHERE stock_actual < $1),
			(SELECT COALESCE(SUM(precio_compra * stock_actual), 0) FROM productos),
			(SELECT COUNT(*) FROM categorias)`
	var stats repository.EstadisticasInventario
	var valor decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, umbralStockBajo).
		Scan(&stats.TotalProductos, &stats.StockBajo, &valor, &stats.Categorias)
	if err != nil {
		return nil, fmt.Errorf("estadisticas inventario: %w", err)
	}
	stats.ValorTotal = valor
	return &stats, nil
}
