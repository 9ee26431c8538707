package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserAlreadyExists  = errors.New("el usuario ya existe")
	ErrPasswordMismatch   = errors.New("las contraseñas no coinciden")
	ErrEmptyFields        = errors.New("campos obligatorios vacíos")
	ErrInvalidCredentials = errors.New("usuario o contraseña inválidos")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrImageRequired      = errors.New("la imagen es obligatoria")
	ErrInvalidFilename    = errors.New("nombre de archivo inválido")
)
