package usecase

import (
	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// Umbral por debajo del cual un producto cuenta como "stock bajo" en el dashboard.
const umbralStockBajo = 10

// DashboardUseCase indicadores agregados del inventario.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Estadisticas devuelve los indicadores del dashboard (totales, stock bajo, valor).
func (uc *DashboardUseCase) Estadisticas() (*dto.EstadisticasResponse, error) {
	stats, err := uc.repo.EstadisticasInventario(umbralStockBajo)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasResponse{
		TotalProductos: stats.TotalProductos,
		StockBajo:      stats.StockBajo,
		ValorTotal:     stats.ValorTotal,
		Categorias:     stats.Categorias,
	}, nil
}
