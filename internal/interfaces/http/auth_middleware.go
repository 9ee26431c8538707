package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Locals keys para la sesión y el usuario en Fiber.
const (
	LocalSession  = "session"
	LocalUsername = "username"
)

// SessionUserMiddleware carga la sesión en c.Locals y, si hay usuario autenticado, también
// su nombre. No bloquea la petición: las rutas del sitio son accesibles sin sesión.
func SessionUserMiddleware(sessions *Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessions.Get(c)
		if err != nil {
			return err
		}
		c.Locals(LocalSession, sess)
		if username := Username(sess); username != "" {
			c.Locals(LocalUsername, username)
		}
		return c.Next()
	}
}

// GetUsername devuelve el usuario del contexto (después del middleware de sesión).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetSession devuelve la sesión cargada por SessionUserMiddleware.
func GetSession(c *fiber.Ctx) (*session.Session, error) {
	sess, ok := c.Locals(LocalSession).(*session.Session)
	if !ok || sess == nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "sesión no inicializada")
	}
	return sess, nil
}
