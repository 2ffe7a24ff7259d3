package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/storefront-backend/internal/application/auth"
	"github.com/jhoicas/storefront-backend/internal/application/dto"
	"github.com/jhoicas/storefront-backend/internal/domain"
	pkgjwt "github.com/jhoicas/storefront-backend/pkg/jwt"
)

func newUseCase(t *testing.T, password string) *auth.AdminAuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewAdminAuthUseCase(auth.Config{
		AdminEmail:        "Admin@Example.com",
		AdminPasswordHash: string(hash),
		JWTSecret:         "jwt-secret",
		CookieSecret:      "cookie-secret",
		ExpMinutes:        60,
		Issuer:            "storefront-test",
	})
}

func TestLogin_Correcto(t *testing.T) {
	uc := newUseCase(t, "s3cret-pass")

	out, err := uc.Login(dto.AdminLoginRequest{Email: " admin@example.com ", Password: "s3cret-pass"})
	require.NoError(t, err)

	subject, role, err := pkgjwt.Parse("jwt-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", subject)
	assert.Equal(t, auth.RoleAdmin, role)

	_, _, err = pkgjwt.Parse("cookie-secret", out.SessionToken)
	assert.NoError(t, err, "la sesión se firma con COOKIE_SECRET")
	_, _, err = pkgjwt.Parse("jwt-secret", out.SessionToken)
	assert.Error(t, err)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newUseCase(t, "s3cret-pass")

	_, err := uc.Login(dto.AdminLoginRequest{Email: "admin@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.AdminLoginRequest{Email: "otro@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SinHashConfigurado(t *testing.T) {
	uc := auth.NewAdminAuthUseCase(auth.Config{AdminEmail: "admin@example.com", JWTSecret: "x", CookieSecret: "y"})
	_, err := uc.Login(dto.AdminLoginRequest{Email: "admin@example.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
