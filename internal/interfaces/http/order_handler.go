package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/usecase"
)

// OrderHandler resumen del pedido y líneas pendientes en sesión.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Summary POST /order_summary (campo de formulario order_data con la lista JSON).
func (h *OrderHandler) Summary(c *fiber.Ctx) error {
	summary := h.uc.Summarize(c.FormValue("order_data"))
	return render(c, "order_summary", fiber.Map{
		"Title":      "Order summary",
		"Items":      summary.Items,
		"TotalPrice": summary.TotalPrice,
	})
}

// SaveChanges POST /save_order_changes (cuerpo JSON {items: [...]}). Reemplaza las líneas
// pendientes de la sesión sin validarlas.
func (h *OrderHandler) SaveChanges(c *fiber.Ctx) error {
	in := h.uc.DecodeSaveRequest(c.Body())

	sess, err := GetSession(c)
	if err != nil {
		return err
	}
	sess.Set(sessionKeyOrderItems, string(h.uc.PendingItems(in)))
	if err := sess.Save(); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Confirm POST /confirm_order. Vacía las líneas pendientes.
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	sess, err := GetSession(c)
	if err != nil {
		return err
	}
	sess.Delete(sessionKeyOrderItems)
	if err := sess.Save(); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Pending GET /order_items devuelve las líneas pendientes guardadas en sesión.
func (h *OrderHandler) Pending(c *fiber.Ctx) error {
	sess, err := GetSession(c)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(OrderItems(sess))
}
