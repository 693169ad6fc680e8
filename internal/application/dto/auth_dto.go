package dto

// LoginRequest body para POST /api/auth/local. Identifier acepta username o email.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse respuesta del login: token firmado + usuario.
type AuthResponse struct {
	JWT  string       `json:"jwt"`
	User UserResponse `json:"user"`
}
