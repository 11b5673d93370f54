package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubtenis/tienda-api/internal/application/auth"
	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsernameOrEmail(identifier string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UsernameExists(username string) (bool, error) {
	u, _ := r.GetByUsername(username)
	return u != nil, nil
}

func (r *fakeUserRepo) EmailExists(email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) List(bool) ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) UpdatePassword(id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) SoftDelete(id string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = false
	return nil
}

type fakeResetRepo struct {
	tokens map[string]*entity.PasswordResetToken // por token
}

var _ repository.PasswordResetRepository = (*fakeResetRepo)(nil)

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: make(map[string]*entity.PasswordResetToken)}
}

func (r *fakeResetRepo) Create(t *entity.PasswordResetToken) error {
	r.tokens[t.Token] = t
	return nil
}

func (r *fakeResetRepo) GetByToken(token string) (*entity.PasswordResetToken, error) {
	return r.tokens[token], nil
}

func (r *fakeResetRepo) InvalidateUnusedByUser(userID string) error {
	for k, t := range r.tokens {
		if t.UserID == userID && !t.Used {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeResetRepo) MarkUsed(token string) error {
	t, ok := r.tokens[token]
	if !ok {
		return domain.ErrTokenInvalid
	}
	t.Used = true
	return nil
}

var testJWT = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "tienda-club-test"}

func registroValido() dto.RegisterRequest {
	return dto.RegisterRequest{
		FullName: "María Gómez",
		Email:    "maria@club.test",
		Phone:    "3001234567",
		Username: "mgomez",
		Password: "Secreta#2025",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaSocioConRolUser(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), newFakeResetRepo(), testJWT)

	out, err := uc.Register(registroValido())
	require.NoError(t, err)
	assert.Equal(t, "mgomez", out.Username)
	assert.Equal(t, entity.RoleUser, out.Role, "el registro público siempre crea rol user")
	assert.True(t, out.Active)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), newFakeResetRepo(), testJWT)

	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	in := registroValido()
	in.Email = "otra@club.test"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), newFakeResetRepo(), testJWT)

	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	in := registroValido()
	in.Username = "otrouser"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EmailInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), newFakeResetRepo(), testJWT)

	in := registroValido()
	in.Email = "no-es-un-email"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), newFakeResetRepo(), testJWT)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "mgomez", Password: "Secreta#2025"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "mgomez", out.User.Username)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), newFakeResetRepo(), testJWT)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "mgomez", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(userRepo, newFakeResetRepo(), testJWT)
	out, err := uc.Register(registroValido())
	require.NoError(t, err)

	require.NoError(t, userRepo.SoftDelete(out.ID))

	_, err = uc.Login(dto.LoginRequest{Username: "mgomez", Password: "Secreta#2025"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Restablecimiento de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_FlujoCompleto(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), newFakeResetRepo(), testJWT)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	// Solicitud por email
	req, err := uc.RequestPasswordReset(dto.RequestPasswordResetRequest{Identifier: "maria@club.test"})
	require.NoError(t, err)
	require.Len(t, req.Token, 64, "el token es hex de 32 bytes")

	// Consumo del token
	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: req.Token, NewPassword: "NuevaClave#9"})
	require.NoError(t, err)

	// La nueva contraseña funciona, la vieja no
	_, err = uc.Login(dto.LoginRequest{Username: "mgomez", Password: "NuevaClave#9"})
	assert.NoError(t, err)
	_, err = uc.Login(dto.LoginRequest{Username: "mgomez", Password: "Secreta#2025"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResetPassword_TokenDeUnSoloUso(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), newFakeResetRepo(), testJWT)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	req, err := uc.RequestPasswordReset(dto.RequestPasswordResetRequest{Identifier: "mgomez"})
	require.NoError(t, err)

	require.NoError(t, uc.ResetPassword(dto.ResetPasswordRequest{Token: req.Token, NewPassword: "NuevaClave#9"}))

	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: req.Token, NewPassword: "OtraClave#7"})
	assert.ErrorIs(t, err, domain.ErrTokenUsed)
}

func TestResetPassword_SolicitarNuevoInvalidaAnterior(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), newFakeResetRepo(), testJWT)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	primero, err := uc.RequestPasswordReset(dto.RequestPasswordResetRequest{Identifier: "mgomez"})
	require.NoError(t, err)
	segundo, err := uc.RequestPasswordReset(dto.RequestPasswordResetRequest{Identifier: "mgomez"})
	require.NoError(t, err)

	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: primero.Token, NewPassword: "NuevaClave#9"})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid, "el token anterior debe quedar invalidado")

	assert.NoError(t, uc.ResetPassword(dto.ResetPasswordRequest{Token: segundo.Token, NewPassword: "NuevaClave#9"}))
}

func TestResetPassword_TokenExpirado(t *testing.T) {
	userRepo := newFakeUserRepo()
	resetRepo := newFakeResetRepo()
	uc := auth.NewAuthUseCase(userRepo, resetRepo, testJWT)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	req, err := uc.RequestPasswordReset(dto.RequestPasswordResetRequest{Identifier: "mgomez"})
	require.NoError(t, err)

	// Forzar la expiración
	resetRepo.tokens[req.Token].ExpiresAt = time.Now().Add(-time.Minute)

	err = uc.ResetPassword(dto.ResetPasswordRequest{Token: req.Token, NewPassword: "NuevaClave#9"})
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestResetPassword_PasswordDebil(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), newFakeResetRepo(), testJWT)
	_, err := uc.Register(registroValido())
	require.NoError(t, err)

	req, err := uc.RequestPasswordReset(dto.RequestPasswordResetRequest{Identifier: "mgomez"})
	require.NoError(t, err)

	casos := []string{
		"sinnumeros#A",   // sin dígito
		"sinmayuscula#1", // sin mayúscula
		"SinEspecial123", // sin carácter especial
		"Corta#1",        // menos de 8
	}
	for _, pw := range casos {
		err = uc.ResetPassword(dto.ResetPasswordRequest{Token: req.Token, NewPassword: pw})
		assert.ErrorIs(t, err, domain.ErrWeakPassword, "password %q debe rechazarse", pw)
	}
}

func TestRequestPasswordReset_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), newFakeResetRepo(), testJWT)

	_, err := uc.RequestPasswordReset(dto.RequestPasswordResetRequest{Identifier: "nadie"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
