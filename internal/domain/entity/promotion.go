package entity

// Promotion representa una promoción publicada.
// ID se asigna como cantidad_actual+1; no es estable si se eliminan registros fuera de la app.
type Promotion struct {
	ID          int
	Name        string
	Price       float64
	Saving      float64
	Quantity    int
	Description string
	Image       *string // ruta relativa ("uploads/x.png"); nil si no se guardó archivo
}

// ImagePath devuelve la ruta de la imagen o "" si no tiene.
func (p *Promotion) ImagePath() string {
	if p == nil || p.Image == nil {
		return ""
	}
	return *p.Image
}
