package jsonstore

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
	"github.com/jhoicas/tienda-admin/pkg/logger"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// userRecord forma persistida: {"<username>": {"password": "..."}}.
type userRecord struct {
	Password string `json:"password"`
}

type userDocument = map[string]userRecord

// UserRepo implementación del puerto UserRepository sobre users.json.
type UserRepo struct {
	doc *Document[userDocument]
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(path string, log *logger.Logger) *UserRepo {
	return &UserRepo{
		doc: NewDocument(path, 2, func() userDocument { return userDocument{} }, log),
	}
}

// GetByUsername obtiene un usuario por nombre; (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	users, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := users[username]
	if !ok {
		return nil, nil
	}
	return &entity.User{Username: username, Password: rec.Password}, nil
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	return r.doc.Update(ctx, func(users *userDocument) error {
		if *users == nil {
			*users = userDocument{}
		}
		if _, exists := (*users)[user.Username]; exists {
			return domain.ErrUserAlreadyExists
		}
		(*users)[user.Username] = userRecord{Password: user.Password}
		return nil
	})
}
