package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está en uso")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrWeakPassword       = errors.New("la contraseña no cumple los requisitos")
	ErrTokenInvalid       = errors.New("token inválido")
	ErrTokenUsed          = errors.New("el token ya ha sido utilizado")
	ErrTokenExpired       = errors.New("el token ha expirado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)
