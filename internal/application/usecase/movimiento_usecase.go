package usecase

import (
	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// MovimientoUseCase lecturas del log de movimientos de inventario.
// El log es append-only: ningún caso de uso lo modifica ni lo borra.
type MovimientoUseCase struct {
	repo repository.MovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(repo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{repo: repo}
}

// List lista movimientos, opcionalmente filtrados por producto.
func (uc *MovimientoUseCase) List(productoID int64, page, pageSize int) ([]dto.MovimientoResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 25
	}
	offset := (page - 1) * pageSize

	var list []*entity.MovimientoInventario
	var err error
	if productoID > 0 {
		list, err = uc.repo.ListByProducto(productoID, pageSize, offset)
	} else {
		list, err = uc.repo.List(pageSize, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovimientoResponse{
			ID:              m.ID,
			ProductoID:      m.ProductoID,
			CantidadMovida:  m.CantidadMovida,
			FechaMovimiento: m.FechaMovimiento,
			DescripcionMov:  m.DescripcionMov,
		})
	}
	return out, nil
}
