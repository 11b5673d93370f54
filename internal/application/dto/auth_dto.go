package dto

// RegisterRequest entrada del registro público de socios.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest entrada del login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más los datos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AvailabilityResponse respuesta de los checks de username/email.
type AvailabilityResponse struct {
	Exists bool `json:"exists"`
}

// RequestPasswordResetRequest entrada para solicitar restablecimiento.
// Identifier acepta username o email.
type RequestPasswordResetRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

// RequestPasswordResetResponse token opaco de un solo uso.
// En producción el token viaja por email; la API lo devuelve para que la capa
// de notificaciones (externa) lo envíe.
type RequestPasswordResetResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// ResetPasswordRequest entrada para consumar el restablecimiento.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}
