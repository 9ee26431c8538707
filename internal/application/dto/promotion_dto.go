package dto

// PromotionForm formulario de alta de promoción.
type PromotionForm struct {
	Name        string `form:"name" validate:"required"`
	Price       string `form:"price" validate:"required"`
	Saving      string `form:"saving" validate:"required"`
	Quantity    string `form:"quantity" validate:"required"`
	Description string `form:"description"`
}

// PromotionResponse salida de una promoción.
type PromotionResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Saving       float64 `json:"saving"`
	RegularPrice float64 `json:"regular_price"` // price + saving
	Quantity     int     `json:"quantity"`
	Description  string  `json:"description"`
	Image        *string `json:"image"`
}

// ImageURL ruta pública de la imagen o "" si no tiene.
func (p PromotionResponse) ImageURL() string {
	if p.Image == nil || *p.Image == "" {
		return ""
	}
	return "/static/" + *p.Image
}
