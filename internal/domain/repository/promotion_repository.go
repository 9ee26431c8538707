package repository

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// PromotionRepository define el puerto de persistencia para Promotion (DIP).
type PromotionRepository interface {
	List(ctx context.Context) ([]*entity.Promotion, error)
	// Create asigna promotion.ID = len(actuales)+1 y agrega el registro al final.
	Create(ctx context.Context, promotion *entity.Promotion) error
}
