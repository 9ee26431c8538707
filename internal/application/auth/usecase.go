package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
)

// Esquemas de almacenamiento de contraseñas.
const (
	SchemePlain  = "plain"  // la contraseña se guarda y compara en texto plano
	SchemeBcrypt = "bcrypt" // se guarda el hash; al comparar se aceptan registros planos heredados
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	scheme   string
}

// NewAuthUseCase construye el caso de uso de auth. Un esquema vacío equivale a SchemePlain.
func NewAuthUseCase(userRepo repository.UserRepository, scheme string) *AuthUseCase {
	if scheme == "" {
		scheme = SchemePlain
	}
	return &AuthUseCase{userRepo: userRepo, scheme: scheme}
}

// RegisterUser crea la cuenta. Las validaciones se evalúan en este orden:
// usuario existente, contraseñas distintas, campos vacíos.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	confirm := strings.TrimSpace(in.Confirm)

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if password != confirm {
		return nil, domain.ErrPasswordMismatch
	}
	if username == "" || password == "" {
		return nil, domain.ErrEmptyFields
	}

	stored := password
	if uc.scheme == SchemeBcrypt {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		stored = string(hash)
	}
	user := &entity.User{Username: username, Password: stored}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{Username: username}, nil
}

// Login verifica usuario y contraseña. La comparación distingue mayúsculas y no recorta
// más allá del recorte inicial del formulario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.passwordMatches(user.Password, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return &dto.UserResponse{Username: user.Username}, nil
}

func (uc *AuthUseCase) passwordMatches(stored, submitted string) bool {
	if uc.scheme == SchemeBcrypt && isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
	}
	return stored == submitted
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
