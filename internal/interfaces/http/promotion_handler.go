package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/usecase"
)

// PromotionHandler maneja el listado y el alta de promociones.
type PromotionHandler struct {
	uc *usecase.PromotionUseCase
}

// NewPromotionHandler construye el handler.
func NewPromotionHandler(uc *usecase.PromotionUseCase) *PromotionHandler {
	return &PromotionHandler{uc: uc}
}

// List GET /promotions
func (h *PromotionHandler) List(c *fiber.Ctx) error {
	promotions, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, "promotions", fiber.Map{"Title": "Promotions", "Promotions": promotions})
}

// NewForm GET /add_promotion
func (h *PromotionHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "add_promotion", fiber.Map{"Title": "Add promotion"})
}

// Create POST /add_promotion. Sin campo "image" responde 400.
func (h *PromotionHandler) Create(c *fiber.Ctx) error {
	var in dto.PromotionForm
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
	return c.Redirect("/promotions", fiber.StatusFound)
}
