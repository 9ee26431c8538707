package dto

// RegisterRequest formulario de registro. Los valores llegan sin recortar.
type RegisterRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Confirm  string `form:"confirm"`
}

// LoginRequest formulario de inicio de sesión.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	Username string `json:"username"`
}
