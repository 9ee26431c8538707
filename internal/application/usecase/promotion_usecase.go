package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
	"github.com/jhoicas/tienda-admin/pkg/logger"
)

// PromotionUseCase listado y alta de promociones.
type PromotionUseCase struct {
	repo   repository.PromotionRepository
	images ports.ImageStore
	log    *logger.Logger
}

// NewPromotionUseCase construye el caso de uso.
func NewPromotionUseCase(repo repository.PromotionRepository, images ports.ImageStore, log *logger.Logger) *PromotionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PromotionUseCase{repo: repo, images: images, log: log}
}

// List devuelve todas las promociones en el orden del documento.
func (uc *PromotionUseCase) List(ctx context.Context) ([]dto.PromotionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromotionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPromotionResponse(p))
	}
	return out, nil
}

// Create da de alta una promoción. El campo de imagen es obligatorio: image == nil devuelve
// domain.ErrImageRequired; un campo sin archivo seleccionado deja Image en null.
func (uc *PromotionUseCase) Create(ctx context.Context, in dto.PromotionForm, image *dto.ImageUpload) (*dto.PromotionResponse, error) {
	if image == nil {
		return nil, domain.ErrImageRequired
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	price, err := parseDecimalField("price", in.Price)
	if err != nil {
		return nil, err
	}
	saving, err := parseDecimalField("saving", in.Saving)
	if err != nil {
		return nil, err
	}
	quantity, err := parseIntField("quantity", in.Quantity)
	if err != nil {
		return nil, err
	}

	promotion := &entity.Promotion{
		Name:        in.Name,
		Price:       price,
		Saving:      saving,
		Quantity:    quantity,
		Description: in.Description,
	}
	if image.HasFile() {
		rel, err := uc.images.Save(image.Filename, image.Content)
		if err != nil {
			return nil, fmt.Errorf("guardar imagen: %w", err)
		}
		promotion.Image = &rel
	}
	if err := uc.repo.Create(ctx, promotion); err != nil {
		return nil, err
	}
	uc.log.Info().Int("promotion_id", promotion.ID).Str("image", promotion.ImagePath()).Msg("promoción creada")
	out := toPromotionResponse(promotion)
	return &out, nil
}

func toPromotionResponse(p *entity.Promotion) dto.PromotionResponse {
	return dto.PromotionResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Saving:       p.Saving,
		RegularPrice: decimal.NewFromFloat(p.Price).Add(decimal.NewFromFloat(p.Saving)).InexactFloat64(),
		Quantity:     p.Quantity,
		Description:  p.Description,
		Image:        p.Image,
	}
}
