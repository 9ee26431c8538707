package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/usecase"
	"github.com/jhoicas/tienda-admin/internal/domain"
)

const msgProductNotFound = "Product not found"

// ProductHandler maneja el listado y el CRUD de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List GET /products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, "products", fiber.Map{"Title": "Products", "Products": products})
}

// NewForm GET /add_product
func (h *ProductHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "add_product", fiber.Map{"Title": "Add product"})
}

// Create POST /add_product
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	image, release, err := imageFromForm(c, "image")
	if err != nil {
		return err
	}
	defer release()

	if _, err := h.uc.Create(c.UserContext(), in, image); err != nil {
		return formError(err)
	}
	return c.Redirect("/products", fiber.StatusFound)
}

// EditForm GET /edit_product/:id
func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString(msgProductNotFound)
		}
		return err
	}
	return render(c, "edit_product", fiber.Map{"Title": "Edit product", "Product": product})
}

// Update POST /edit_product/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		// Un id desconocido responde 404 aunque el formulario sea inválido.
		if _, gerr := h.uc.GetByID(c.UserContext(), id); errors.Is(gerr, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString(msgProductNotFound)
		}
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	image, release, err := imageFromForm(c, "image")
	if err != nil {
		return err
	}
	defer release()

	if _, err := h.uc.Update(c.UserContext(), id, in, image); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString(msgProductNotFound)
		}
		return formError(err)
	}
	return c.Redirect("/products", fiber.StatusFound)
}

// Delete POST /delete_product/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.SuccessResponse{Success: false, Error: msgProductNotFound})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.SuccessResponse{Success: false, Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// formError convierte errores de validación de formularios en 400 y deja pasar el resto.
func formError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidFilename),
		errors.Is(err, domain.ErrImageRequired):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}
