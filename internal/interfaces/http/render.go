package http

import (
	"github.com/gofiber/fiber/v2"
)

const layoutMain = "layouts/main"

// render vacía los mensajes flash en la vista y guarda la sesión antes de responder.
func render(c *fiber.Ctx, view string, data fiber.Map) error {
	sess, err := GetSession(c)
	if err != nil {
		return err
	}
	if data == nil {
		data = fiber.Map{}
	}
	data["Flashes"] = PopFlashes(sess)
	data["Username"] = Username(sess)
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Render(view, data, layoutMain)
}

// redirectWithFlash agrega un mensaje flash, guarda la sesión y redirige (302).
func redirectWithFlash(c *fiber.Ctx, category, message, location string) error {
	sess, err := GetSession(c)
	if err != nil {
		return err
	}
	AddFlash(sess, category, message)
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect(location, fiber.StatusFound)
}
