package http

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
)

// Claves de la sesión del servidor.
const (
	sessionKeyUsername   = "username"
	sessionKeyOrderItems = "order_items"
	sessionKeyFlashes    = "_flashes"
)

// Categorías de mensajes flash.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// SessionConfig configuración de la cookie de sesión.
type SessionConfig struct {
	CookieName string
	Expiration time.Duration
	Secure     bool
}

// Sessions estado por navegador guardado en el servidor (memoria) y referenciado por cookie.
type Sessions struct {
	store *session.Store
}

// NewSessions construye el almacén de sesiones.
func NewSessions(cfg SessionConfig) *Sessions {
	if cfg.CookieName == "" {
		cfg.CookieName = "session_id"
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = 24 * time.Hour
	}
	return &Sessions{store: session.New(session.Config{
		Expiration:     cfg.Expiration,
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Secure,
		CookieSameSite: "Lax",
	})}
}

// Get devuelve la sesión de la petición (nueva si no hay cookie válida).
func (s *Sessions) Get(c *fiber.Ctx) (*session.Session, error) {
	return s.store.Get(c)
}

// Username devuelve el usuario autenticado o "".
func Username(sess *session.Session) string {
	v, _ := sess.Get(sessionKeyUsername).(string)
	return v
}

// OrderItems devuelve las líneas pendientes guardadas en sesión (JSON) o "[]".
func OrderItems(sess *session.Session) json.RawMessage {
	v, _ := sess.Get(sessionKeyOrderItems).(string)
	if v == "" {
		return json.RawMessage("[]")
	}
	return json.RawMessage(v)
}

// AddFlash encola un mensaje para la siguiente página renderizada.
func AddFlash(sess *session.Session, category, message string) {
	flashes := peekFlashes(sess)
	flashes = append(flashes, dto.Flash{Category: category, Message: message})
	raw, _ := json.Marshal(flashes)
	sess.Set(sessionKeyFlashes, string(raw))
}

// PopFlashes devuelve y elimina los mensajes pendientes.
func PopFlashes(sess *session.Session) []dto.Flash {
	flashes := peekFlashes(sess)
	sess.Delete(sessionKeyFlashes)
	return flashes
}

func peekFlashes(sess *session.Session) []dto.Flash {
	raw, _ := sess.Get(sessionKeyFlashes).(string)
	if raw == "" {
		return nil
	}
	var flashes []dto.Flash
	if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
		return nil
	}
	return flashes
}
