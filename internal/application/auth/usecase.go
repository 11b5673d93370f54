// Package auth implementa registro de socios, login con JWT y el flujo de
// restablecimiento de contraseña con tokens de un solo uso.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
	"github.com/clubtenis/tienda-api/pkg/jwt"
)

const resetTokenTTL = time.Hour // vigencia del token de restablecimiento

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y reset de contraseña.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.PasswordResetRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokenRepo repository.PasswordResetRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokenRepo: tokenRepo, jwtCfg: jwtCfg}
}

// Register crea un socio: valida campos y unicidad, hashea password con bcrypt
// y persiste con rol "user".
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(in.FullName) == "" || strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if taken, err := uc.userRepo.UsernameExists(in.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}
	if exists, err := uc.userRepo.EmailExists(in.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Usuarios inactivos no pueden autenticarse.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// UsernameExists check de disponibilidad para el formulario de registro.
func (uc *AuthUseCase) UsernameExists(username string) (bool, error) {
	return uc.userRepo.UsernameExists(username)
}

// EmailExists check de disponibilidad para el formulario de registro.
func (uc *AuthUseCase) EmailExists(email string) (bool, error) {
	return uc.userRepo.EmailExists(email)
}

// RequestPasswordReset genera un token opaco de un solo uso (1 hora de vigencia)
// para el usuario identificado por username o email. Los tokens pendientes
// anteriores del mismo usuario quedan invalidados.
func (uc *AuthUseCase) RequestPasswordReset(in dto.RequestPasswordResetRequest) (*dto.RequestPasswordResetResponse, error) {
	identifier := strings.TrimSpace(in.Identifier)
	if identifier == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsernameOrEmail(identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	token := hex.EncodeToString(raw)

	if err := uc.tokenRepo.InvalidateUnusedByUser(user.ID); err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.tokenRepo.Create(&entity.PasswordResetToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: now.Add(resetTokenTTL),
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}
	return &dto.RequestPasswordResetResponse{
		Token:   token,
		Message: "Token de restablecimiento generado exitosamente",
	}, nil
}

// ResetPassword consume un token válido y actualiza la contraseña del usuario.
// La nueva contraseña debe cumplir los requisitos de fortaleza.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	token := strings.TrimSpace(in.Token)
	if token == "" || in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	if !strongPassword(in.NewPassword) {
		return domain.ErrWeakPassword
	}

	record, err := uc.tokenRepo.GetByToken(token)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrTokenInvalid
	}
	if record.Used {
		return domain.ErrTokenUsed
	}
	if !record.Valid(time.Now()) {
		return domain.ErrTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(record.UserID, string(hash)); err != nil {
		return err
	}
	return uc.tokenRepo.MarkUsed(token)
}

// strongPassword exige mínimo 8 caracteres con dígito, mayúscula y carácter especial.
func strongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var digit, upper, special bool
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case strings.ContainsRune("!@#$%^&*()_+-=[]{};':\"\\|,.<>/?", r):
			special = true
		}
	}
	return digit && upper && special
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Username:  u.Username,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
