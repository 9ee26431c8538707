package jsonstore

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
	"github.com/jhoicas/tienda-admin/pkg/logger"
)

var _ repository.PromotionRepository = (*PromotionRepo)(nil)

// promotionRecord admite números escritos como texto al leer un documento editado a mano.
type promotionRecord struct {
	ID          integer `json:"id"`
	Name        string  `json:"name"`
	Price       number  `json:"price"`
	Saving      number  `json:"saving"`
	Quantity    integer `json:"quantity"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

type promotionDocument = []promotionRecord

// PromotionRepo implementación del puerto PromotionRepository sobre promotions.json.
type PromotionRepo struct {
	doc *Document[promotionDocument]
}

// NewPromotionRepository construye el adaptador de persistencia para promociones.
func NewPromotionRepository(path string, log *logger.Logger) *PromotionRepo {
	return &PromotionRepo{
		doc: NewDocument(path, 4, func() promotionDocument { return promotionDocument{} }, log),
	}
}

// List devuelve todas las promociones en el orden del documento.
func (r *PromotionRepo) List(ctx context.Context) ([]*entity.Promotion, error) {
	records, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Promotion, 0, len(records))
	for _, rec := range records {
		out = append(out, &entity.Promotion{
			ID:          int(rec.ID),
			Name:        rec.Name,
			Price:       float64(rec.Price),
			Saving:      float64(rec.Saving),
			Quantity:    int(rec.Quantity),
			Description: rec.Description,
			Image:       rec.Image,
		})
	}
	return out, nil
}

// Create asigna el ID (cantidad actual + 1) y agrega la promoción al final.
func (r *PromotionRepo) Create(ctx context.Context, promotion *entity.Promotion) error {
	return r.doc.Update(ctx, func(records *promotionDocument) error {
		promotion.ID = len(*records) + 1
		*records = append(*records, promotionRecord{
			ID:          integer(promotion.ID),
			Name:        promotion.Name,
			Price:       number(promotion.Price),
			Saving:      number(promotion.Saving),
			Quantity:    integer(promotion.Quantity),
			Description: promotion.Description,
			Image:       promotion.Image,
		})
		return nil
	})
}
