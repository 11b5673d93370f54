package repository

import "github.com/clubtenis/tienda-api/internal/domain/entity"

// PasswordResetRepository define el puerto de persistencia para tokens de
// restablecimiento de contraseña.
type PasswordResetRepository interface {
	Create(token *entity.PasswordResetToken) error
	GetByToken(token string) (*entity.PasswordResetToken, error)
	// InvalidateUnusedByUser elimina los tokens pendientes del usuario
	// (al emitir uno nuevo, los anteriores dejan de valer).
	InvalidateUnusedByUser(userID string) error
	MarkUsed(token string) error
}
