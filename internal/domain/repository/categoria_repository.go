package repository

import "github.com/jhoicas/ventapos-api/internal/domain/entity"

// CategoriaRepository puerto de persistencia para Categoria.
type CategoriaRepository interface {
	GetByID(id int64) (*entity.Categoria, error)
	List(limit, offset int) ([]*entity.Categoria, error)
	Count() (int, error)
}
