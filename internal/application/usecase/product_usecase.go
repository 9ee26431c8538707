package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
	"github.com/jhoicas/tienda-admin/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos con imagen opcional.
type ProductUseCase struct {
	repo   repository.ProductRepository
	images ports.ImageStore
	log    *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, images ports.ImageStore, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, images: images, log: log}
}

// List devuelve todos los productos en el orden del documento.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

// Create da de alta un producto con un UUID nuevo. Sin imagen, Image queda vacío.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductForm, image *dto.ImageUpload) (*dto.ProductResponse, error) {
	price, err := parsePrice(in)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Price:       price,
		Description: in.Description,
	}
	if image.HasFile() {
		rel, err := uc.images.Save(image.Filename, image.Content)
		if err != nil {
			return nil, fmt.Errorf("guardar imagen: %w", err)
		}
		product.Image = rel
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("image", product.Image).Msg("producto creado")
	out := toProductResponse(product)
	return &out, nil
}

// Update sobrescribe nombre, precio y descripción. La imagen solo cambia si llega un archivo
// nuevo; la imagen anterior no se elimina del disco.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductForm, image *dto.ImageUpload) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	price, err := parsePrice(in)
	if err != nil {
		return nil, err
	}
	var newImage string
	if image.HasFile() {
		newImage, err = uc.images.Save(image.Filename, image.Content)
		if err != nil {
			return nil, fmt.Errorf("guardar imagen: %w", err)
		}
	}
	updated, err := uc.repo.Update(ctx, id, func(p *entity.Product) error {
		p.Name = in.Name
		p.Price = price
		p.Description = in.Description
		if newImage != "" {
			p.Image = newImage
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", id).Msg("producto actualizado")
	out := toProductResponse(updated)
	return &out, nil
}

// Delete elimina el producto y su imagen si todavía existe en disco.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed.HasImage() {
		deleted, err := uc.images.Remove(removed.Image)
		if err != nil {
			// El registro ya no existe; un fallo al borrar el archivo solo se registra.
			uc.log.Warn().Err(err).Str("product_id", id).Str("image", removed.Image).Msg("no se pudo eliminar la imagen")
		} else if deleted {
			uc.log.Debug().Str("image", removed.Image).Msg("imagen eliminada")
		}
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

func parsePrice(in dto.ProductForm) (float64, error) {
	if err := dto.Validate(in); err != nil {
		return 0, err
	}
	price, err := parseDecimalField("price", in.Price)
	if err != nil {
		return 0, err
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: price", domain.ErrInvalidInput)
	}
	return price, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
	}
}
