package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación PostgreSQL del puerto de usuarios.
type UsuarioRepo struct {
	q Querier
}

func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// GetByIdentifier busca por username o por email, indistintamente.
func (r *UsuarioRepo) GetByIdentifier(identifier string) (*entity.Usuario, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM usuarios WHERE username = $1 OR email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, identifier))
}

func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *UsuarioRepo) scanOne(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
