package entity

import "time"

// PasswordResetToken token de un solo uso para restablecimiento de contraseña.
// El valor del token es opaco (random hex); expira a la hora de emitido.
type PasswordResetToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// Valid indica si el token puede usarse en el instante dado.
func (t *PasswordResetToken) Valid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
