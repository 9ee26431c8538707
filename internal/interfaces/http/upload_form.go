package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
)

// imageFromForm lee el campo de archivo del formulario.
//   - nil: el campo no vino en la petición.
//   - ImageUpload vacío: el campo vino sin archivo seleccionado.
//   - ImageUpload con contenido: archivo a guardar; el llamador debe invocar release.
func imageFromForm(c *fiber.Ctx, field string) (*dto.ImageUpload, func(), error) {
	release := func() {}
	fh, err := c.FormFile(field)
	if err != nil {
		form, ferr := c.MultipartForm()
		if ferr != nil {
			return nil, release, nil
		}
		if _, present := form.Value[field]; present {
			return &dto.ImageUpload{}, release, nil
		}
		return nil, release, nil
	}
	if fh.Filename == "" {
		return &dto.ImageUpload{}, release, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, release, err
	}
	return &dto.ImageUpload{Filename: fh.Filename, Content: f}, func() { f.Close() }, nil
}
