package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

var _ repository.PasswordResetRepository = (*PasswordResetRepo)(nil)

// PasswordResetRepo implementación del puerto PasswordResetRepository sobre PostgreSQL.
type PasswordResetRepo struct {
	q Querier
}

// NewPasswordResetRepository construye el adaptador de tokens de restablecimiento.
func NewPasswordResetRepository(q Querier) *PasswordResetRepo {
	return &PasswordResetRepo{q: q}
}

// Create persiste un nuevo token.
func (r *PasswordResetRepo) Create(token *entity.PasswordResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (id, user_id, token, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		token.ID, token.UserID, token.Token, token.ExpiresAt, token.Used, token.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reset token: %w", err)
	}
	return nil
}

// GetByToken obtiene un token por su valor. Devuelve (nil, nil) si no existe.
func (r *PasswordResetRepo) GetByToken(token string) (*entity.PasswordResetToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, used, created_at
		FROM password_reset_tokens WHERE token = $1`
	var t entity.PasswordResetToken
	err := r.q.QueryRow(context.Background(), query, token).Scan(
		&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.Used, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reset token: %w", err)
	}
	return &t, nil
}

// InvalidateUnusedByUser elimina los tokens pendientes del usuario.
func (r *PasswordResetRepo) InvalidateUnusedByUser(userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM password_reset_tokens WHERE user_id = $1 AND used = false`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("invalidate reset tokens: %w", err)
	}
	return nil
}

// MarkUsed marca el token como consumido.
func (r *PasswordResetRepo) MarkUsed(token string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE password_reset_tokens SET used = true WHERE token = $1`,
		token,
	)
	if err != nil {
		return fmt.Errorf("mark reset token used: %w", err)
	}
	return nil
}
