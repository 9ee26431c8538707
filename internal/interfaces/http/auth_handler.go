package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-admin/internal/application/auth"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain"
)

// Mensajes visibles para el usuario.
const (
	msgUsernameExists     = "Username already exists."
	msgPasswordMismatch   = "Passwords do not match."
	msgFillAllFields      = "Please fill all fields."
	msgRegistered         = "Registration successful. Please login."
	msgInvalidCredentials = "Invalid username or password."
	msgLoginSuccessful    = "Login successful."
	msgLoggedOut          = "Logged out successfully."
)

// AuthHandler maneja registro, login y logout sobre la sesión del servidor.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterForm GET /register
func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Title": "Register"})
}

// Register POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	in := dto.RegisterRequest{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
		Confirm:  c.FormValue("confirm"),
	}
	if _, err := h.uc.RegisterUser(c.UserContext(), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return redirectWithFlash(c, FlashError, msgUsernameExists, "/register")
		case errors.Is(err, domain.ErrPasswordMismatch):
			return redirectWithFlash(c, FlashError, msgPasswordMismatch, "/register")
		case errors.Is(err, domain.ErrEmptyFields):
			return redirectWithFlash(c, FlashError, msgFillAllFields, "/register")
		}
		return err
	}
	return redirectWithFlash(c, FlashSuccess, msgRegistered, "/login")
}

// LoginForm GET /login
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Title": "Login"})
}

// Login POST /login. Al autenticarse se regenera el identificador de sesión.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	in := dto.LoginRequest{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}
	user, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return redirectWithFlash(c, FlashError, msgInvalidCredentials, "/login")
		}
		return err
	}
	sess, err := GetSession(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionKeyUsername, user.Username)
	return redirectWithFlash(c, FlashSuccess, msgLoginSuccessful, "/products")
}

// Logout GET /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := GetSession(c)
	if err != nil {
		return err
	}
	sess.Delete(sessionKeyUsername)
	return redirectWithFlash(c, FlashSuccess, msgLoggedOut, "/login")
}
