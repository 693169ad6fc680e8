package entity

import "time"

// Usuario representa un usuario del sistema (acceso al dashboard).
type Usuario struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
