package jsonstore

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
	"github.com/jhoicas/tienda-admin/pkg/logger"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

type productRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       number `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type productDocument = []productRecord

// ProductRepo implementación del puerto ProductRepository sobre products.json.
type ProductRepo struct {
	doc *Document[productDocument]
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(path string, log *logger.Logger) *ProductRepo {
	return &ProductRepo{
		doc: NewDocument(path, 4, func() productDocument { return productDocument{} }, log),
	}
}

// List devuelve todos los productos en el orden del documento.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	records, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(records))
	for i := range records {
		out = append(out, toProduct(records[i]))
	}
	return out, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	records, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOfProduct(records, id); i >= 0 {
		return toProduct(records[i]), nil
	}
	return nil, nil
}

// Create agrega el producto al final del documento.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return r.doc.Update(ctx, func(records *productDocument) error {
		*records = append(*records, fromProduct(product))
		return nil
	})
}

// Update modifica el producto in situ.
func (r *ProductRepo) Update(ctx context.Context, id string, fn func(*entity.Product) error) (*entity.Product, error) {
	var updated *entity.Product
	err := r.doc.Update(ctx, func(records *productDocument) error {
		i := indexOfProduct(*records, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		p := toProduct((*records)[i])
		if err := fn(p); err != nil {
			return err
		}
		p.ID = id
		(*records)[i] = fromProduct(p)
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete elimina el producto y devuelve el registro eliminado.
func (r *ProductRepo) Delete(ctx context.Context, id string) (*entity.Product, error) {
	var removed *entity.Product
	err := r.doc.Update(ctx, func(records *productDocument) error {
		i := indexOfProduct(*records, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		removed = toProduct((*records)[i])
		kept := make(productDocument, 0, len(*records)-1)
		for _, rec := range *records {
			if rec.ID != id {
				kept = append(kept, rec)
			}
		}
		*records = kept
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func indexOfProduct(records productDocument, id string) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}

func toProduct(rec productRecord) *entity.Product {
	return &entity.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Price:       float64(rec.Price),
		Description: rec.Description,
		Image:       rec.Image,
	}
}

func fromProduct(p *entity.Product) productRecord {
	return productRecord{
		ID:          p.ID,
		Name:        p.Name,
		Price:       number(p.Price),
		Description: p.Description,
		Image:       p.Image,
	}
}
