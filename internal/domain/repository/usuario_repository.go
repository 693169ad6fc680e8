package repository

import "github.com/jhoicas/ventapos-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia para Usuario.
type UsuarioRepository interface {
	// GetByIdentifier busca por username o email (login estilo identifier).
	GetByIdentifier(identifier string) (*entity.Usuario, error)
	GetByID(id int64) (*entity.Usuario, error)
}
