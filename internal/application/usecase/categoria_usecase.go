package usecase

import (
	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// CategoriaUseCase lecturas de categorías (el alta/edición se hace por fuera del API).
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// GetByID devuelve la categoría o nil si no existe.
func (uc *CategoriaUseCase) GetByID(id int64) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCategoriaResponse(c), nil
}

// List lista categorías paginadas.
func (uc *CategoriaUseCase) List(page, pageSize int) ([]dto.CategoriaResponse, *dto.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 1000 {
		pageSize = 25
	}
	offset := (page - 1) * pageSize
	list, err := uc.repo.List(pageSize, offset)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoriaResponse(c))
	}
	return out, dto.NewPagination(page, pageSize, total), nil
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion}
}
