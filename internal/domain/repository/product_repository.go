package repository

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	// Update aplica fn sobre el registro dentro de la misma escritura del documento.
	// Devuelve domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, id string, fn func(*entity.Product) error) (*entity.Product, error)
	// Delete elimina el registro y lo devuelve. Devuelve domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id string) (*entity.Product, error)
}
