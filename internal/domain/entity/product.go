package entity

// Product representa un producto del catálogo. El orden en el documento es el de inserción.
type Product struct {
	ID          string // UUID v4
	Name        string
	Price       float64
	Description string
	Image       string // ruta relativa bajo el directorio estático ("images/x.png") o vacío
}

// HasImage indica si el producto tiene una imagen asociada.
func (p *Product) HasImage() bool {
	return p != nil && p.Image != ""
}
