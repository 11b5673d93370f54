package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un socio o administrador del club.
// La eliminación es lógica (Active = false).
type User struct {
	ID           string
	FullName     string
	Email        string
	Phone        string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
