package dto

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/tienda-admin/internal/domain"
)

var validate = validator.New()

// Validate aplica las etiquetas `validate` del DTO. Los fallos se devuelven envueltos en
// domain.ErrInvalidInput con la lista de campos afectados.
func Validate(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field())+" ("+fe.Tag()+")")
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

// ImageUpload archivo recibido en un formulario multipart. Filename vacío indica que el
// campo llegó sin archivo seleccionado.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// HasFile indica si hay un archivo que guardar.
func (u *ImageUpload) HasFile() bool {
	return u != nil && u.Filename != "" && u.Content != nil
}

// Flash mensaje de un solo uso que sobrevive a una redirección.
type Flash struct {
	Category string `json:"category"` // success | error
	Message  string `json:"message"`
}

// SuccessResponse cuerpo de las respuestas JSON de acuse ({success, error?}).
type SuccessResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
