package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
	"github.com/jhoicas/ventapos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y consulta del usuario actual.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login autentica por identifier (username o email) + password y emite un JWT.
// Devuelve ErrCredencialesInvalidas tanto para usuario inexistente como para
// password incorrecto, sin distinguir el caso.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Identifier == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.usuarioRepo.GetByIdentifier(in.Identifier)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		JWT:  token,
		User: dto.UserResponse{ID: u.ID, Username: u.Username, Email: u.Email},
	}, nil
}

// Me devuelve el usuario autenticado, o ErrNotFound si fue eliminado.
func (uc *AuthUseCase) Me(userID int64) (*dto.UserResponse, error) {
	u, err := uc.usuarioRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}, nil
}
