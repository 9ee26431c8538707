package repository

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// GetByUsername devuelve (nil, nil) si el usuario no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create devuelve domain.ErrUserAlreadyExists si el nombre ya está registrado.
	Create(ctx context.Context, user *entity.User) error
}
