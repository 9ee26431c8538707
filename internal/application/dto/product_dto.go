package dto

// ProductForm formulario de alta/edición de producto.
// Price llega como texto y el caso de uso decide si es un número válido.
type ProductForm struct {
	Name        string `form:"name" validate:"required"`
	Price       string `form:"price" validate:"required"`
	Description string `form:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// ImageURL ruta pública de la imagen o "" si no tiene.
func (p ProductResponse) ImageURL() string {
	if p.Image == "" {
		return ""
	}
	return "/static/" + p.Image
}
